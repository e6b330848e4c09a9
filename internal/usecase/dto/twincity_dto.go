package dto

// CreateTwinCityRequest - both cities of the pair are mandatory.
type CreateTwinCityRequest struct {
	CityAName   string  `json:"cityA_name" validate:"required"`
	CityALat    float64 `json:"cityA_lat" validate:"min=-90,max=90"`
	CityALon    float64 `json:"cityA_lon" validate:"min=-180,max=180"`
	CityBName   string  `json:"cityB_name" validate:"required"`
	CityBLat    float64 `json:"cityB_lat" validate:"min=-90,max=90"`
	CityBLon    float64 `json:"cityB_lon" validate:"min=-180,max=180"`
	Description *string `json:"description"`
}

// UpdateTwinCityRequest - unset fields keep their stored values.
type UpdateTwinCityRequest struct {
	CityAName   *string  `json:"cityA_name"`
	CityALat    *float64 `json:"cityA_lat" validate:"omitempty,min=-90,max=90"`
	CityALon    *float64 `json:"cityA_lon" validate:"omitempty,min=-180,max=180"`
	CityBName   *string  `json:"cityB_name"`
	CityBLat    *float64 `json:"cityB_lat" validate:"omitempty,min=-90,max=90"`
	CityBLon    *float64 `json:"cityB_lon" validate:"omitempty,min=-180,max=180"`
	Description *string  `json:"description"`
}
