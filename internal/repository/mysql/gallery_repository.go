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

type galleryRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewGalleryRepository(db *DB) repository.GalleryRepository {
	return &galleryRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const selectGallery = `
	SELECT id, name, type, location_id, created_at, updated_at
	FROM galleries
`

func (r *galleryRepository) List(ctx context.Context) ([]*domain.Gallery, error) {
	galleries := make([]*domain.Gallery, 0)
	err := r.db.SelectContext(ctx, &galleries, selectGallery+` ORDER BY name`)
	if err != nil {
		r.logger.Error("Failed to list galleries", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	for _, g := range galleries {
		items, err := r.itemsFor(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		g.Items = items
	}
	return galleries, nil
}

func (r *galleryRepository) GetByID(ctx context.Context, id int64) (*domain.Gallery, error) {
	var g domain.Gallery
	err := r.db.GetContext(ctx, &g, selectGallery+` WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrGalleryNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get gallery", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	items, err := r.itemsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	g.Items = items
	return &g, nil
}

func (r *galleryRepository) Create(ctx context.Context, g *domain.Gallery) (*domain.Gallery, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO galleries (name, type, location_id) VALUES (?, ?, ?)`,
		g.Name, g.Type, g.LocationID,
	)
	if err != nil {
		r.logger.Error("Failed to insert gallery", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.ErrDatabaseError
	}

	if err := r.insertItems(ctx, id, g.Items); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *galleryRepository) Update(
	ctx context.Context,
	g *domain.Gallery,
	replaceItems bool,
) (*domain.Gallery, error) {
	_, err := r.db.ExecContext(ctx,
		`UPDATE galleries SET name = ?, type = ?, location_id = ? WHERE id = ?`,
		g.Name, g.Type, g.LocationID, g.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update gallery", zap.Int64("id", g.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if replaceItems {
		if _, err := r.db.ExecContext(ctx,
			`DELETE FROM gallery_items WHERE gallery_id = ?`, g.ID); err != nil {
			r.logger.Error("Failed to clear gallery items", zap.Int64("id", g.ID), zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		if err := r.insertItems(ctx, g.ID, g.Items); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, g.ID)
}

func (r *galleryRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM gallery_items WHERE gallery_id = ?`, id); err != nil {
		r.logger.Error("Failed to delete gallery items", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM galleries WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("Failed to delete gallery", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrGalleryNotFound
	}
	return nil
}

func (r *galleryRepository) CountByLocation(ctx context.Context, locationID int64) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM galleries WHERE location_id = ?`, locationID)
	if err != nil {
		r.logger.Error("Failed to count galleries by location", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return n, nil
}

func (r *galleryRepository) itemsFor(ctx context.Context, galleryID int64) ([]domain.GalleryItem, error) {
	items := make([]domain.GalleryItem, 0)
	err := r.db.SelectContext(ctx, &items, `
		SELECT id, gallery_id, url, type, position
		FROM gallery_items
		WHERE gallery_id = ?
		ORDER BY position`, galleryID)
	if err != nil {
		r.logger.Error("Failed to load gallery items", zap.Int64("gallery_id", galleryID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return items, nil
}

func (r *galleryRepository) insertItems(ctx context.Context, galleryID int64, items []domain.GalleryItem) error {
	for i, item := range items {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO gallery_items (gallery_id, url, type, position) VALUES (?, ?, ?, ?)`,
			galleryID, item.URL, item.Type, i,
		); err != nil {
			r.logger.Error("Failed to insert gallery item",
				zap.Int64("gallery_id", galleryID), zap.Error(err))
			return errors.ErrDatabaseError
		}
	}
	return nil
}
