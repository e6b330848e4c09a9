package dto

import "time"

// CreateIndicatorRequest - a comparison metric between the two cities of a
// pair. Category values are the platform's Portuguese canon.
type CreateIndicatorRequest struct {
	TwinCityID  int64      `json:"twin_city_id" validate:"required"`
	Category    string     `json:"category" validate:"required,oneof=Saúde População Comércio Educação 'Meio Ambiente'"`
	Title       string     `json:"title" validate:"required"`
	StudyStart  *time.Time `json:"study_start"`
	StudyEnd    *time.Time `json:"study_end"`
	SourceTitle string     `json:"source_title" validate:"required"`
	SourceLink  string     `json:"source_link" validate:"omitempty,url"`
	CityAValue  float64    `json:"city_a_value"`
	CityBValue  float64    `json:"city_b_value"`
	Unit        string     `json:"unit" validate:"required"`
	Icon        *string    `json:"icon"`
}

// UpdateIndicatorRequest - unset fields keep their stored values.
type UpdateIndicatorRequest struct {
	TwinCityID  *int64     `json:"twin_city_id"`
	Category    *string    `json:"category" validate:"omitempty,oneof=Saúde População Comércio Educação 'Meio Ambiente'"`
	Title       *string    `json:"title"`
	StudyStart  *time.Time `json:"study_start"`
	StudyEnd    *time.Time `json:"study_end"`
	SourceTitle *string    `json:"source_title"`
	SourceLink  *string    `json:"source_link" validate:"omitempty,url"`
	CityAValue  *float64   `json:"city_a_value"`
	CityBValue  *float64   `json:"city_b_value"`
	Unit        *string    `json:"unit"`
	Icon        *string    `json:"icon"`
}
