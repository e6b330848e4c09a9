package mysql

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/twincities-service/internal/domain"
	"github.com/twincities-service/internal/domain/repository"
	"github.com/twincities-service/internal/pkg/errors"
)

type locationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewLocationRepository(db *DB) repository.LocationRepository {
	return &locationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const selectLocation = `
	SELECT id, name, lat, lon, country, image_url, description,
	       created_at, updated_at
	FROM locations
`

func (r *locationRepository) List(ctx context.Context) ([]*domain.Location, error) {
	locs := make([]*domain.Location, 0)
	err := r.db.SelectContext(ctx, &locs, selectLocation+` ORDER BY name`)
	if err != nil {
		r.logger.Error("Failed to list locations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return locs, nil
}

func (r *locationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	var loc domain.Location
	err := r.db.GetContext(ctx, &loc, selectLocation+` WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrLocationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get location", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &loc, nil
}

func (r *locationRepository) Create(ctx context.Context, loc *domain.Location) (*domain.Location, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO locations (name, lat, lon, country, image_url, description)
		VALUES (?, ?, ?, ?, ?, ?)`,
		loc.Name, loc.Lat, loc.Lon, loc.Country, loc.ImageURL, loc.Description,
	)
	if err != nil {
		r.logger.Error("Failed to insert location", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.ErrDatabaseError
	}
	return r.GetByID(ctx, id)
}

func (r *locationRepository) Update(ctx context.Context, loc *domain.Location) (*domain.Location, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE locations SET
			name = ?, lat = ?, lon = ?, country = ?,
			image_url = ?, description = ?
		WHERE id = ?`,
		loc.Name, loc.Lat, loc.Lon, loc.Country,
		loc.ImageURL, loc.Description, loc.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update location", zap.Int64("id", loc.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return r.GetByID(ctx, loc.ID)
}

func (r *locationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("Failed to delete location", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrLocationNotFound
	}
	return nil
}
