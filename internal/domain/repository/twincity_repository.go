package repository

import (
	"context"

	"github.com/twincities-service/internal/domain"
)

// TwinCityRepository persists twin-city pairs.
type TwinCityRepository interface {
	List(ctx context.Context) ([]*domain.TwinCity, error)
	GetByID(ctx context.Context, id int64) (*domain.TwinCity, error)
	Create(ctx context.Context, tc *domain.TwinCity) (*domain.TwinCity, error)
	Update(ctx context.Context, tc *domain.TwinCity) (*domain.TwinCity, error)
	Delete(ctx context.Context, id int64) error
}
