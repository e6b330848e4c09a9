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

type twinCityRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTwinCityRepository(db *DB) repository.TwinCityRepository {
	return &twinCityRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const selectTwinCity = `
	SELECT id, city_a_name, city_a_lat, city_a_lon,
	       city_b_name, city_b_lat, city_b_lon,
	       description, created_at, updated_at
	FROM twin_cities
`

func (r *twinCityRepository) List(ctx context.Context) ([]*domain.TwinCity, error) {
	pairs := make([]*domain.TwinCity, 0)
	err := r.db.SelectContext(ctx, &pairs, selectTwinCity+` ORDER BY city_a_name`)
	if err != nil {
		r.logger.Error("Failed to list twin cities", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return pairs, nil
}

func (r *twinCityRepository) GetByID(ctx context.Context, id int64) (*domain.TwinCity, error) {
	var tc domain.TwinCity
	err := r.db.GetContext(ctx, &tc, selectTwinCity+` WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTwinCityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get twin city", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &tc, nil
}

func (r *twinCityRepository) Create(ctx context.Context, tc *domain.TwinCity) (*domain.TwinCity, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO twin_cities
			(city_a_name, city_a_lat, city_a_lon,
			 city_b_name, city_b_lat, city_b_lon, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		tc.CityAName, tc.CityALat, tc.CityALon,
		tc.CityBName, tc.CityBLat, tc.CityBLon, tc.Description,
	)
	if err != nil {
		r.logger.Error("Failed to insert twin city", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.ErrDatabaseError
	}
	return r.GetByID(ctx, id)
}

func (r *twinCityRepository) Update(ctx context.Context, tc *domain.TwinCity) (*domain.TwinCity, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE twin_cities SET
			city_a_name = ?, city_a_lat = ?, city_a_lon = ?,
			city_b_name = ?, city_b_lat = ?, city_b_lon = ?,
			description = ?
		WHERE id = ?`,
		tc.CityAName, tc.CityALat, tc.CityALon,
		tc.CityBName, tc.CityBLat, tc.CityBLon,
		tc.Description, tc.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update twin city", zap.Int64("id", tc.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return r.GetByID(ctx, tc.ID)
}

func (r *twinCityRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM twin_cities WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("Failed to delete twin city", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrTwinCityNotFound
	}
	return nil
}
