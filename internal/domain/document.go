package domain

import "time"

// DocumentKind discriminates where a document's content lives: internal
// documents are stored and served by this system, external ones are links.
const (
	DocumentKindInternal = "internal"
	DocumentKindExternal = "external"
)

// DocumentCategories is the fixed set accepted for Document.Category.
var DocumentCategories = []string{
	"books",
	"articles",
	"theses",
	"reports",
	"legislation",
	"maps",
}

// Document is a digital-collection entry tied to a twin-city pair.
// Exactly one of the file attribute group (internal) or ExternalURL
// (external) is populated; the columns themselves stay nullable, the
// discriminant is enforced in the usecase layer.
type Document struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Author          string    `json:"author" db:"author"`
	PublicationYear *int      `json:"publication_year,omitempty" db:"publication_year"`
	Category        string    `json:"category" db:"category"`
	Kind            string    `json:"kind" db:"kind"`
	FileURL         string    `json:"file_url" db:"file_url"`
	FileType        string    `json:"file_type" db:"file_type"`
	FileSize        int64     `json:"file_size" db:"file_size"`
	ExternalURL     string    `json:"external_url" db:"external_url"`
	TwinCityID      int64     `json:"twin_city_id" db:"twin_city_id"`
	TwinCityName    string    `json:"twin_city_name" db:"twin_city_name"`
	LocationID      *int64    `json:"location_id,omitempty" db:"location_id"`
	Tags            []string  `json:"tags"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Tag is a shared label linked to documents many-to-many. Tags are created
// lazily by exact-name lookup and never deleted.
type Tag struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// DocumentFilter holds the optional, AND-combined list filters.
type DocumentFilter struct {
	Category   string
	TwinCityID int64
	LocationID int64
	Search     string
	Page       int
	Limit      int
}
