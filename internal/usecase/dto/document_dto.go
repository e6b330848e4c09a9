package dto

// DocumentPayload is the write shape shared by create and update: document
// updates replace the whole row and its tag set, they never merge.
type DocumentPayload struct {
	Title           string   `json:"title" form:"title" validate:"required"`
	Author          string   `json:"author" form:"author" validate:"required"`
	PublicationYear *int     `json:"publication_year" form:"publication_year" validate:"omitempty,min=1000,max=2100"`
	Category        string   `json:"category" form:"category" validate:"required,oneof=books articles theses reports legislation maps"`
	Kind            string   `json:"kind" form:"kind" validate:"required,oneof=internal external"`
	ExternalURL     string   `json:"external_url" form:"external_url" validate:"omitempty,url"`
	TwinCityID      int64    `json:"twin_city_id" form:"twin_city_id" validate:"required"`
	LocationID      *int64   `json:"location_id" form:"location_id"`
	Tags            []string `json:"tags" form:"tags" validate:"dive,required"`

	// File attributes are filled by the handler after storing an uploaded
	// file; they are never taken from the raw client payload directly.
	FileURL  string `json:"-" form:"-"`
	FileType string `json:"-" form:"-"`
	FileSize int64  `json:"-" form:"-"`
}

// ListDocumentsQuery carries the optional AND-combined list filters.
type ListDocumentsQuery struct {
	Category   string `query:"category" validate:"omitempty,oneof=books articles theses reports legislation maps"`
	TwinCityID int64  `query:"twin_city_id" validate:"omitempty,min=1"`
	LocationID int64  `query:"location_id" validate:"omitempty,min=1"`
	Search     string `query:"search"`
	Page       int    `query:"page" validate:"omitempty,min=1"`
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=100"`
}
