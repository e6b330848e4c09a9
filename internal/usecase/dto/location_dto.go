package dto

// CreateLocationRequest - form fields; an optional image file rides along
// in the same multipart request and is stored by the handler.
type CreateLocationRequest struct {
	Name        string  `json:"name" form:"name" validate:"required"`
	Lat         float64 `json:"lat" form:"lat" validate:"min=-90,max=90"`
	Lon         float64 `json:"lon" form:"lon" validate:"min=-180,max=180"`
	Country     string  `json:"country" form:"country" validate:"required"`
	Description *string `json:"description" form:"description"`

	ImageURL *string `json:"-" form:"-"`
}

// UpdateLocationRequest - unset fields keep their stored values.
type UpdateLocationRequest struct {
	Name        *string  `json:"name" form:"name"`
	Lat         *float64 `json:"lat" form:"lat" validate:"omitempty,min=-90,max=90"`
	Lon         *float64 `json:"lon" form:"lon" validate:"omitempty,min=-180,max=180"`
	Country     *string  `json:"country" form:"country"`
	Description *string  `json:"description" form:"description"`

	ImageURL *string `json:"-" form:"-"`
}
