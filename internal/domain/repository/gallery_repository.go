package repository

import (
	"context"

	"github.com/twincities-service/internal/domain"
)

// GalleryRepository persists galleries and their ordered items.
type GalleryRepository interface {
	List(ctx context.Context) ([]*domain.Gallery, error)
	GetByID(ctx context.Context, id int64) (*domain.Gallery, error)
	Create(ctx context.Context, g *domain.Gallery) (*domain.Gallery, error)

	// Update rewrites the gallery row; when replaceItems is true the item
	// set is deleted and re-inserted from g.Items.
	Update(ctx context.Context, g *domain.Gallery, replaceItems bool) (*domain.Gallery, error)
	Delete(ctx context.Context, id int64) error

	// CountByLocation reports how many galleries reference a location.
	CountByLocation(ctx context.Context, locationID int64) (int, error)
}
