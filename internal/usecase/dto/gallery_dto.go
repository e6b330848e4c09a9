package dto

// GalleryItemPayload is one ordered entry; its type must match the gallery.
type GalleryItemPayload struct {
	URL  string `json:"url" validate:"required"`
	Type string `json:"type" validate:"required,oneof=photo video"`
}

type CreateGalleryRequest struct {
	Name       string               `json:"name" validate:"required"`
	Type       string               `json:"type" validate:"required,oneof=photo video"`
	LocationID int64                `json:"location_id" validate:"required"`
	Items      []GalleryItemPayload `json:"items" validate:"dive"`
}

// UpdateGalleryRequest - unset fields keep their stored values; a non-nil
// Items slice replaces the whole item set.
type UpdateGalleryRequest struct {
	Name       *string               `json:"name"`
	Type       *string               `json:"type" validate:"omitempty,oneof=photo video"`
	LocationID *int64                `json:"location_id"`
	Items      *[]GalleryItemPayload `json:"items" validate:"omitempty,dive"`
}
