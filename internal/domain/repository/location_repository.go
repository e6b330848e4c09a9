package repository

import (
	"context"

	"github.com/twincities-service/internal/domain"
)

// LocationRepository persists points of interest.
type LocationRepository interface {
	List(ctx context.Context) ([]*domain.Location, error)
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
	Create(ctx context.Context, loc *domain.Location) (*domain.Location, error)
	Update(ctx context.Context, loc *domain.Location) (*domain.Location, error)
	Delete(ctx context.Context, id int64) error
}
