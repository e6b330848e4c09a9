package repository

import (
	"context"

	"github.com/twincities-service/internal/domain"
)

// CollaborationRepository persists public submissions and their attachment
// records. The files themselves live on disk behind the file store.
type CollaborationRepository interface {
	// List returns one page plus the total count over the same predicate
	// (status == "" means no filter).
	List(ctx context.Context, status string, page, limit int) ([]*domain.Collaboration, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Collaboration, error)
	GetFile(ctx context.Context, collaborationID, fileID int64) (*domain.CollaborationFile, error)
	Create(ctx context.Context, c *domain.Collaboration) (*domain.Collaboration, error)
	AddFile(ctx context.Context, f *domain.CollaborationFile) (*domain.CollaborationFile, error)
	Update(ctx context.Context, c *domain.Collaboration) (*domain.Collaboration, error)
	Delete(ctx context.Context, id int64) error
}
