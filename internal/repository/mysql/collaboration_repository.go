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

type collaborationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCollaborationRepository(db *DB) repository.CollaborationRepository {
	return &collaborationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const selectCollaboration = `
	SELECT id, name, email, phone, subject, message, status,
	       created_at, updated_at
	FROM collaborations
`

func (r *collaborationRepository) List(
	ctx context.Context,
	status string,
	page, limit int,
) ([]*domain.Collaboration, int, error) {
	where := ""
	args := []interface{}{}
	if status != "" {
		where = ` WHERE status = ?`
		args = append(args, status)
	}

	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM collaborations`+where, args...); err != nil {
		r.logger.Error("Failed to count collaborations", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := selectCollaboration + where + ` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, limit, (page-1)*limit)

	collabs := make([]*domain.Collaboration, 0)
	if err := r.db.SelectContext(ctx, &collabs, query, args...); err != nil {
		r.logger.Error("Failed to list collaborations", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	for _, c := range collabs {
		files, err := r.filesFor(ctx, c.ID)
		if err != nil {
			return nil, 0, err
		}
		c.Files = files
	}
	return collabs, total, nil
}

func (r *collaborationRepository) GetByID(ctx context.Context, id int64) (*domain.Collaboration, error) {
	var c domain.Collaboration
	err := r.db.GetContext(ctx, &c, selectCollaboration+` WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrCollaborationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get collaboration", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	files, err := r.filesFor(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Files = files
	return &c, nil
}

func (r *collaborationRepository) GetFile(
	ctx context.Context,
	collaborationID, fileID int64,
) (*domain.CollaborationFile, error) {
	var f domain.CollaborationFile
	err := r.db.GetContext(ctx, &f, `
		SELECT id, collaboration_id, file_name, file_path, file_size, mime_type
		FROM collaboration_files
		WHERE id = ? AND collaboration_id = ?`, fileID, collaborationID)
	if err == sql.ErrNoRows {
		return nil, errors.ErrFileNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get collaboration file",
			zap.Int64("collaboration_id", collaborationID),
			zap.Int64("file_id", fileID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &f, nil
}

func (r *collaborationRepository) Create(ctx context.Context, c *domain.Collaboration) (*domain.Collaboration, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO collaborations (name, email, phone, subject, message, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.Name, c.Email, c.Phone, c.Subject, c.Message, c.Status,
	)
	if err != nil {
		r.logger.Error("Failed to insert collaboration", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.ErrDatabaseError
	}
	return r.GetByID(ctx, id)
}

func (r *collaborationRepository) AddFile(
	ctx context.Context,
	f *domain.CollaborationFile,
) (*domain.CollaborationFile, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO collaboration_files
			(collaboration_id, file_name, file_path, file_size, mime_type)
		VALUES (?, ?, ?, ?, ?)`,
		f.CollaborationID, f.FileName, f.FilePath, f.FileSize, f.MimeType,
	)
	if err != nil {
		r.logger.Error("Failed to insert collaboration file", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.ErrDatabaseError
	}
	stored := *f
	stored.ID = id
	return &stored, nil
}

func (r *collaborationRepository) Update(ctx context.Context, c *domain.Collaboration) (*domain.Collaboration, error) {
	_, err := r.db.ExecContext(ctx, `
		UPDATE collaborations SET
			name = ?, email = ?, phone = ?, subject = ?, message = ?, status = ?
		WHERE id = ?`,
		c.Name, c.Email, c.Phone, c.Subject, c.Message, c.Status, c.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update collaboration", zap.Int64("id", c.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return r.GetByID(ctx, c.ID)
}

func (r *collaborationRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM collaboration_files WHERE collaboration_id = ?`, id); err != nil {
		r.logger.Error("Failed to delete collaboration files", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM collaborations WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("Failed to delete collaboration", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrCollaborationNotFound
	}
	return nil
}

func (r *collaborationRepository) filesFor(ctx context.Context, collaborationID int64) ([]domain.CollaborationFile, error) {
	files := make([]domain.CollaborationFile, 0)
	err := r.db.SelectContext(ctx, &files, `
		SELECT id, collaboration_id, file_name, file_path, file_size, mime_type
		FROM collaboration_files
		WHERE collaboration_id = ?
		ORDER BY id`, collaborationID)
	if err != nil {
		r.logger.Error("Failed to load collaboration files",
			zap.Int64("collaboration_id", collaborationID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return files, nil
}
