package domain

import "time"

// IndicatorCategories is the fixed set accepted for Indicator.Category.
// The platform publishes in Portuguese, so the canonical values are too.
var IndicatorCategories = []string{
	"Saúde",
	"População",
	"Comércio",
	"Educação",
	"Meio Ambiente",
}

// Indicator is a comparison metric between the two cities of a pair.
type Indicator struct {
	ID          int64      `json:"id" db:"id"`
	TwinCityID  int64      `json:"twin_city_id" db:"twin_city_id"`
	Category    string     `json:"category" db:"category"`
	Title       string     `json:"title" db:"title"`
	StudyStart  *time.Time `json:"study_start,omitempty" db:"study_start"`
	StudyEnd    *time.Time `json:"study_end,omitempty" db:"study_end"`
	SourceTitle string     `json:"source_title" db:"source_title"`
	SourceLink  string     `json:"source_link" db:"source_link"`
	CityAValue  float64    `json:"city_a_value" db:"city_a_value"`
	CityBValue  float64    `json:"city_b_value" db:"city_b_value"`
	Unit        string     `json:"unit" db:"unit"`
	Icon        *string    `json:"icon,omitempty" db:"icon"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
