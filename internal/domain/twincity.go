package domain

import "time"

// TwinCity is a cross-border pair of named points treated as one unit for
// comparative indicators and document tagging.
type TwinCity struct {
	ID          int64     `json:"id" db:"id"`
	CityAName   string    `json:"cityA_name" db:"city_a_name"`
	CityALat    float64   `json:"cityA_lat" db:"city_a_lat"`
	CityALon    float64   `json:"cityA_lon" db:"city_a_lon"`
	CityBName   string    `json:"cityB_name" db:"city_b_name"`
	CityBLat    float64   `json:"cityB_lat" db:"city_b_lat"`
	CityBLon    float64   `json:"cityB_lon" db:"city_b_lon"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
