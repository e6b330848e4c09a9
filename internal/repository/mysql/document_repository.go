package mysql

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/twincities-service/internal/domain"
	"github.com/twincities-service/internal/domain/repository"
	"github.com/twincities-service/internal/pkg/errors"
)

type documentRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewDocumentRepository(db *DB) repository.DocumentRepository {
	return &documentRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// selectDocument is the shared read shape: twin-city name joined in,
// tag names aggregated into one comma-separated string.
const selectDocument = `
	SELECT
		d.id, d.title, d.author, d.publication_year, d.category, d.kind,
		d.file_url, d.file_type, d.file_size, d.external_url,
		d.twin_city_id,
		CONCAT(tc.city_a_name, ' - ', tc.city_b_name) AS twin_city_name,
		d.location_id, d.created_at, d.updated_at,
		GROUP_CONCAT(DISTINCT t.name ORDER BY t.name SEPARATOR ',') AS tag_names
	FROM documents d
	JOIN twin_cities tc ON tc.id = d.twin_city_id
	LEFT JOIN document_tags dt ON dt.document_id = d.id
	LEFT JOIN tags t ON t.id = dt.tag_id
`

func (r *documentRepository) Create(
	ctx context.Context,
	doc *domain.Document,
	tags []string,
) (*domain.Document, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	if err := r.twinCityExists(ctx, tx, doc.TwinCityID); err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO documents
			(title, author, publication_year, category, kind,
			 file_url, file_type, file_size, external_url,
			 twin_city_id, location_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.Title, doc.Author, doc.PublicationYear, doc.Category, doc.Kind,
		doc.FileURL, doc.FileType, doc.FileSize, doc.ExternalURL,
		doc.TwinCityID, doc.LocationID,
	)
	if err != nil {
		r.logger.Error("Failed to insert document", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.ErrDatabaseError
	}

	if err := r.linkTags(ctx, tx, id, tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit document create", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return r.GetByID(ctx, id)
}

func (r *documentRepository) Update(
	ctx context.Context,
	doc *domain.Document,
	tags []string,
) (*domain.Document, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	if err := r.twinCityExists(ctx, tx, doc.TwinCityID); err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE documents SET
			title = ?, author = ?, publication_year = ?, category = ?, kind = ?,
			file_url = ?, file_type = ?, file_size = ?, external_url = ?,
			twin_city_id = ?, location_id = ?
		WHERE id = ?`,
		doc.Title, doc.Author, doc.PublicationYear, doc.Category, doc.Kind,
		doc.FileURL, doc.FileType, doc.FileSize, doc.ExternalURL,
		doc.TwinCityID, doc.LocationID, doc.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update document", zap.Int64("id", doc.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// The row may exist with identical values; distinguish via lookup.
		var exists int64
		if err := tx.GetContext(ctx, &exists,
			`SELECT id FROM documents WHERE id = ?`, doc.ID); err == sql.ErrNoRows {
			return nil, errors.ErrDocumentNotFound
		} else if err != nil {
			return nil, errors.ErrDatabaseError
		}
	}

	// The tag set is replaced wholesale, never merged.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM document_tags WHERE document_id = ?`, doc.ID); err != nil {
		r.logger.Error("Failed to clear tag links", zap.Int64("id", doc.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := r.linkTags(ctx, tx, doc.ID, tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit document update", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return r.GetByID(ctx, doc.ID)
}

func (r *documentRepository) twinCityExists(ctx context.Context, tx *sqlx.Tx, id int64) error {
	var found int64
	err := tx.GetContext(ctx, &found, `SELECT id FROM twin_cities WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return errors.ErrTwinCityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to check twin city", zap.Int64("twin_city_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

// linkTags looks each name up by exact match, inserts it when absent, and
// links it to the document. Runs inside the caller's transaction.
func (r *documentRepository) linkTags(
	ctx context.Context,
	tx *sqlx.Tx,
	documentID int64,
	tags []string,
) error {
	for _, name := range tags {
		var tagID int64
		err := tx.GetContext(ctx, &tagID,
			`SELECT id FROM tags WHERE name = ?`, name)
		if err == sql.ErrNoRows {
			res, insErr := tx.ExecContext(ctx,
				`INSERT INTO tags (name) VALUES (?)`, name)
			if insErr != nil {
				r.logger.Error("Failed to insert tag", zap.String("name", name), zap.Error(insErr))
				return errors.ErrDatabaseError
			}
			tagID, insErr = res.LastInsertId()
			if insErr != nil {
				return errors.ErrDatabaseError
			}
		} else if err != nil {
			r.logger.Error("Failed to look up tag", zap.String("name", name), zap.Error(err))
			return errors.ErrDatabaseError
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO document_tags (document_id, tag_id) VALUES (?, ?)`,
			documentID, tagID); err != nil {
			r.logger.Error("Failed to link tag",
				zap.Int64("document_id", documentID),
				zap.Int64("tag_id", tagID),
				zap.Error(err))
			return errors.ErrDatabaseError
		}
	}
	return nil
}

func (r *documentRepository) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	query := selectDocument + ` WHERE d.id = ? GROUP BY d.id`

	row := r.db.QueryRowContext(ctx, query, id)
	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrDocumentNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get document", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return doc, nil
}

func (r *documentRepository) List(
	ctx context.Context,
	filter domain.DocumentFilter,
) ([]*domain.Document, int, error) {
	where, args := buildDocumentFilter(filter)

	// Total over the same predicate, independent of the page window.
	countQuery := `SELECT COUNT(*) FROM documents d JOIN twin_cities tc ON tc.id = d.twin_city_id` + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		r.logger.Error("Failed to count documents", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := selectDocument + where +
		` GROUP BY d.id ORDER BY d.created_at DESC, d.id DESC LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	docs, err := r.queryDocuments(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func (r *documentRepository) GetByTwinCity(ctx context.Context, twinCityID int64) ([]*domain.Document, error) {
	query := selectDocument +
		` WHERE d.twin_city_id = ? GROUP BY d.id ORDER BY d.created_at DESC, d.id DESC`
	return r.queryDocuments(ctx, query, twinCityID)
}

func (r *documentRepository) GetByLocation(ctx context.Context, locationID int64) ([]*domain.Document, error) {
	query := selectDocument +
		` WHERE d.location_id = ? GROUP BY d.id ORDER BY d.created_at DESC, d.id DESC`
	return r.queryDocuments(ctx, query, locationID)
}

func (r *documentRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM document_tags WHERE document_id = ?`, id); err != nil {
		r.logger.Error("Failed to delete tag links", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("Failed to delete document", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrDocumentNotFound
	}

	if err := tx.Commit(); err != nil {
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *documentRepository) CountByTwinCity(ctx context.Context, twinCityID int64) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM documents WHERE twin_city_id = ?`, twinCityID)
	if err != nil {
		r.logger.Error("Failed to count documents by twin city", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return n, nil
}

func (r *documentRepository) CountByLocation(ctx context.Context, locationID int64) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM documents WHERE location_id = ?`, locationID)
	if err != nil {
		r.logger.Error("Failed to count documents by location", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return n, nil
}

func (r *documentRepository) queryDocuments(
	ctx context.Context,
	query string,
	args ...interface{},
) ([]*domain.Document, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query documents", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	docs := make([]*domain.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			r.logger.Error("Failed to scan document", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError
	}
	return docs, nil
}

// buildDocumentFilter renders the AND-combined WHERE clause shared by the
// page query and the COUNT query.
func buildDocumentFilter(f domain.DocumentFilter) (string, []interface{}) {
	conds := make([]string, 0, 4)
	args := make([]interface{}, 0, 6)

	if f.Category != "" {
		conds = append(conds, "d.category = ?")
		args = append(args, f.Category)
	}
	if f.TwinCityID != 0 {
		conds = append(conds, "d.twin_city_id = ?")
		args = append(args, f.TwinCityID)
	}
	if f.LocationID != 0 {
		conds = append(conds, "d.location_id = ?")
		args = append(args, f.LocationID)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		conds = append(conds, `(d.title LIKE ? OR d.author LIKE ? OR EXISTS (
			SELECT 1 FROM document_tags dt2
			JOIN tags t2 ON t2.id = dt2.tag_id
			WHERE dt2.document_id = d.id AND t2.name LIKE ?))`)
		args = append(args, pattern, pattern, pattern)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDocument(row rowScanner) (*domain.Document, error) {
	var doc domain.Document
	var pubYear sql.NullInt64
	var locationID sql.NullInt64
	var tagNames sql.NullString

	err := row.Scan(
		&doc.ID, &doc.Title, &doc.Author, &pubYear, &doc.Category, &doc.Kind,
		&doc.FileURL, &doc.FileType, &doc.FileSize, &doc.ExternalURL,
		&doc.TwinCityID, &doc.TwinCityName, &locationID,
		&doc.CreatedAt, &doc.UpdatedAt, &tagNames,
	)
	if err != nil {
		return nil, err
	}

	if pubYear.Valid {
		y := int(pubYear.Int64)
		doc.PublicationYear = &y
	}
	if locationID.Valid {
		id := locationID.Int64
		doc.LocationID = &id
	}
	doc.Tags = splitTagNames(tagNames.String)

	return &doc, nil
}

// splitTagNames breaks the GROUP_CONCAT aggregate into a flat list.
func splitTagNames(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
