package repository

import (
	"context"

	"github.com/twincities-service/internal/domain"
)

// DocumentRepository persists digital-collection documents and their tag
// links. Create and Update are the only multi-statement writes in the
// system and run inside a single transaction.
type DocumentRepository interface {
	// Create inserts the document and its tag links atomically, then
	// re-fetches and returns the stored document.
	Create(ctx context.Context, doc *domain.Document, tags []string) (*domain.Document, error)

	// Update rewrites the document row and fully replaces its tag set
	// atomically, then re-fetches and returns the stored document.
	Update(ctx context.Context, doc *domain.Document, tags []string) (*domain.Document, error)

	// GetByID returns the document with joined twin-city name and
	// aggregated tags, or ErrDocumentNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Document, error)

	// List returns one page of documents matching the filter plus the
	// total count over the same predicate.
	List(ctx context.Context, filter domain.DocumentFilter) ([]*domain.Document, int, error)

	// GetByTwinCity returns all documents of one twin-city pair.
	GetByTwinCity(ctx context.Context, twinCityID int64) ([]*domain.Document, error)

	// GetByLocation returns all documents attached to one location.
	GetByLocation(ctx context.Context, locationID int64) ([]*domain.Document, error)

	// Delete removes the document and its tag links.
	Delete(ctx context.Context, id int64) error

	// CountByTwinCity reports how many documents reference a pair.
	CountByTwinCity(ctx context.Context, twinCityID int64) (int, error)

	// CountByLocation reports how many documents reference a location.
	CountByLocation(ctx context.Context, locationID int64) (int, error)
}
