package domain

import "time"

const (
	GalleryTypePhoto = "photo"
	GalleryTypeVideo = "video"
)

// Gallery is a named media collection attached to a location. Items carry
// the same type as their gallery.
type Gallery struct {
	ID         int64         `json:"id" db:"id"`
	Name       string        `json:"name" db:"name"`
	Type       string        `json:"type" db:"type"`
	LocationID int64         `json:"location_id" db:"location_id"`
	Items      []GalleryItem `json:"items"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" db:"updated_at"`
}

// GalleryItem is one ordered entry of a gallery.
type GalleryItem struct {
	ID        int64  `json:"id" db:"id"`
	GalleryID int64  `json:"gallery_id" db:"gallery_id"`
	URL       string `json:"url" db:"url"`
	Type      string `json:"type" db:"type"`
	Position  int    `json:"position" db:"position"`
}
