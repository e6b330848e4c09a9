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

type indicatorRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewIndicatorRepository(db *DB) repository.IndicatorRepository {
	return &indicatorRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const selectIndicator = `
	SELECT id, twin_city_id, category, title, study_start, study_end,
	       source_title, source_link, city_a_value, city_b_value,
	       unit, icon, created_at, updated_at
	FROM indicators
`

func (r *indicatorRepository) List(ctx context.Context, twinCityID int64) ([]*domain.Indicator, error) {
	query := selectIndicator
	args := []interface{}{}
	if twinCityID != 0 {
		query += ` WHERE twin_city_id = ?`
		args = append(args, twinCityID)
	}
	query += ` ORDER BY category, title`

	inds := make([]*domain.Indicator, 0)
	if err := r.db.SelectContext(ctx, &inds, query, args...); err != nil {
		r.logger.Error("Failed to list indicators", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return inds, nil
}

func (r *indicatorRepository) GetByID(ctx context.Context, id int64) (*domain.Indicator, error) {
	var ind domain.Indicator
	err := r.db.GetContext(ctx, &ind, selectIndicator+` WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrIndicatorNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get indicator", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &ind, nil
}

func (r *indicatorRepository) Create(ctx context.Context, ind *domain.Indicator) (*domain.Indicator, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO indicators
			(twin_city_id, category, title, study_start, study_end,
			 source_title, source_link, city_a_value, city_b_value, unit, icon)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ind.TwinCityID, ind.Category, ind.Title, ind.StudyStart, ind.StudyEnd,
		ind.SourceTitle, ind.SourceLink, ind.CityAValue, ind.CityBValue,
		ind.Unit, ind.Icon,
	)
	if err != nil {
		r.logger.Error("Failed to insert indicator", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.ErrDatabaseError
	}
	return r.GetByID(ctx, id)
}

func (r *indicatorRepository) Update(ctx context.Context, ind *domain.Indicator) (*domain.Indicator, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE indicators SET
			twin_city_id = ?, category = ?, title = ?,
			study_start = ?, study_end = ?,
			source_title = ?, source_link = ?,
			city_a_value = ?, city_b_value = ?, unit = ?, icon = ?
		WHERE id = ?`,
		ind.TwinCityID, ind.Category, ind.Title,
		ind.StudyStart, ind.StudyEnd,
		ind.SourceTitle, ind.SourceLink,
		ind.CityAValue, ind.CityBValue, ind.Unit, ind.Icon, ind.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update indicator", zap.Int64("id", ind.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return r.GetByID(ctx, ind.ID)
}

func (r *indicatorRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM indicators WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("Failed to delete indicator", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrIndicatorNotFound
	}
	return nil
}

func (r *indicatorRepository) CountByTwinCity(ctx context.Context, twinCityID int64) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM indicators WHERE twin_city_id = ?`, twinCityID)
	if err != nil {
		r.logger.Error("Failed to count indicators by twin city", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return n, nil
}
