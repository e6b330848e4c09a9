package domain

import "time"

// Location is a named point of interest shown on the globe.
type Location struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Lat         float64   `json:"lat" db:"lat"`
	Lon         float64   `json:"lon" db:"lon"`
	Country     string    `json:"country" db:"country"`
	ImageURL    *string   `json:"image_url,omitempty" db:"image_url"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
