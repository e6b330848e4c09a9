package repository

import (
	"context"

	"github.com/twincities-service/internal/domain"
)

// IndicatorRepository persists comparison indicators.
type IndicatorRepository interface {
	// List returns all indicators, optionally filtered by twin-city pair
	// (twinCityID == 0 means no filter).
	List(ctx context.Context, twinCityID int64) ([]*domain.Indicator, error)
	GetByID(ctx context.Context, id int64) (*domain.Indicator, error)
	Create(ctx context.Context, ind *domain.Indicator) (*domain.Indicator, error)
	Update(ctx context.Context, ind *domain.Indicator) (*domain.Indicator, error)
	Delete(ctx context.Context, id int64) error

	// CountByTwinCity reports how many indicators reference a pair.
	CountByTwinCity(ctx context.Context, twinCityID int64) (int, error)
}
