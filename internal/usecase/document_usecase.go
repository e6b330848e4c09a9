package usecase

import (
	"context"
	"mime/multipart"
	"strings"

	"go.uber.org/zap"

	"github.com/twincities-service/internal/domain"
	"github.com/twincities-service/internal/domain/repository"
	"github.com/twincities-service/internal/pkg/errors"
	"github.com/twincities-service/internal/pkg/validator"
	"github.com/twincities-service/internal/repository/filestore"
	"github.com/twincities-service/internal/usecase/dto"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type DocumentUseCase struct {
	documentRepo repository.DocumentRepository
	twinCityRepo repository.TwinCityRepository
	locationRepo repository.LocationRepository
	files        repository.FileStore
	logger       *zap.Logger
}

func NewDocumentUseCase(
	documentRepo repository.DocumentRepository,
	twinCityRepo repository.TwinCityRepository,
	locationRepo repository.LocationRepository,
	files repository.FileStore,
	logger *zap.Logger,
) *DocumentUseCase {
	return &DocumentUseCase{
		documentRepo: documentRepo,
		twinCityRepo: twinCityRepo,
		locationRepo: locationRepo,
		files:        files,
		logger:       logger,
	}
}

// Create stores an optional uploaded file, then runs the transactional
// document+tags write and returns the re-fetched result.
func (uc *DocumentUseCase) Create(
	ctx context.Context,
	req dto.DocumentPayload,
	upload *multipart.FileHeader,
) (*domain.Document, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	if err := uc.attachUpload(&req, upload); err != nil {
		return nil, err
	}
	if err := normalizeKind(&req); err != nil {
		return nil, err
	}

	doc := documentFromPayload(req)
	created, err := uc.documentRepo.Create(ctx, doc, req.Tags)
	if err != nil {
		uc.logger.Error("Failed to create document", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Update rewrites the document and replaces its tag set wholesale; updates
// are the same shape of write as creates, never a field merge.
func (uc *DocumentUseCase) Update(
	ctx context.Context,
	id int64,
	req dto.DocumentPayload,
	upload *multipart.FileHeader,
) (*domain.Document, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	existing, err := uc.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Without a new upload an internal document keeps its stored file.
	if upload == nil && req.Kind == domain.DocumentKindInternal {
		req.FileURL = existing.FileURL
		req.FileType = existing.FileType
		req.FileSize = existing.FileSize
	}
	if err := uc.attachUpload(&req, upload); err != nil {
		return nil, err
	}
	if err := normalizeKind(&req); err != nil {
		return nil, err
	}

	doc := documentFromPayload(req)
	doc.ID = id
	updated, err := uc.documentRepo.Update(ctx, doc, req.Tags)
	if err != nil {
		uc.logger.Error("Failed to update document", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (uc *DocumentUseCase) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	return uc.documentRepo.GetByID(ctx, id)
}

func (uc *DocumentUseCase) List(
	ctx context.Context,
	query dto.ListDocumentsQuery,
) ([]*domain.Document, int, error) {
	if err := validator.Validate(&query); err != nil {
		return nil, 0, err
	}

	filter := domain.DocumentFilter{
		Category:   query.Category,
		TwinCityID: query.TwinCityID,
		LocationID: query.LocationID,
		Search:     query.Search,
		Page:       query.Page,
		Limit:      query.Limit,
	}
	if filter.Page == 0 {
		filter.Page = defaultPage
	}
	if filter.Limit == 0 {
		filter.Limit = defaultLimit
	}

	return uc.documentRepo.List(ctx, filter)
}

func (uc *DocumentUseCase) GetByTwinCity(ctx context.Context, twinCityID int64) ([]*domain.Document, error) {
	if _, err := uc.twinCityRepo.GetByID(ctx, twinCityID); err != nil {
		return nil, err
	}
	return uc.documentRepo.GetByTwinCity(ctx, twinCityID)
}

func (uc *DocumentUseCase) GetByLocation(ctx context.Context, locationID int64) ([]*domain.Document, error) {
	if _, err := uc.locationRepo.GetByID(ctx, locationID); err != nil {
		return nil, err
	}
	return uc.documentRepo.GetByLocation(ctx, locationID)
}

// Download resolves the stored file of an internal document for streaming.
func (uc *DocumentUseCase) Download(ctx context.Context, id int64) (absPath, name string, err error) {
	doc, err := uc.documentRepo.GetByID(ctx, id)
	if err != nil {
		return "", "", err
	}
	if doc.Kind != domain.DocumentKindInternal || doc.FileURL == "" {
		return "", "", errors.ErrNoStoredFile
	}

	abs, err := uc.files.AbsPath(storedPathFromURL(doc.FileURL))
	if err != nil {
		return "", "", err
	}
	return abs, doc.Title, nil
}

func (uc *DocumentUseCase) Delete(ctx context.Context, id int64) error {
	doc, err := uc.documentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.documentRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Best-effort cleanup of the stored file; the record is already gone.
	if doc.Kind == domain.DocumentKindInternal && doc.FileURL != "" {
		if err := uc.files.Remove(storedPathFromURL(doc.FileURL)); err != nil {
			uc.logger.Warn("Failed to remove stored document file",
				zap.Int64("id", id),
				zap.String("file_url", doc.FileURL),
				zap.Error(err))
		}
	}
	return nil
}

func (uc *DocumentUseCase) attachUpload(req *dto.DocumentPayload, upload *multipart.FileHeader) error {
	if upload == nil {
		return nil
	}

	src, err := upload.Open()
	if err != nil {
		uc.logger.Error("Failed to open uploaded file", zap.Error(err))
		return errors.ErrStorageError
	}
	defer src.Close()

	relPath, size, err := uc.files.Save(filestore.EntityDocuments, upload.Filename, src)
	if err != nil {
		return err
	}

	req.FileURL = "/uploads/" + relPath
	req.FileType = upload.Header.Get("Content-Type")
	req.FileSize = size
	return nil
}

// normalizeKind enforces the internal/external discriminant: external
// documents need a link and get their file attributes zeroed, internal
// documents need a stored file and get the link cleared.
func normalizeKind(req *dto.DocumentPayload) error {
	switch req.Kind {
	case domain.DocumentKindExternal:
		if req.ExternalURL == "" {
			return errors.ErrValidation.WithDetails(map[string]interface{}{
				"fields": []string{"external_url"},
			})
		}
		req.FileURL = ""
		req.FileType = ""
		req.FileSize = 0
	case domain.DocumentKindInternal:
		if req.FileURL == "" {
			return errors.ErrValidation.WithDetails(map[string]interface{}{
				"fields": []string{"file"},
			})
		}
		req.ExternalURL = ""
	}
	return nil
}

func documentFromPayload(req dto.DocumentPayload) *domain.Document {
	return &domain.Document{
		Title:           req.Title,
		Author:          req.Author,
		PublicationYear: req.PublicationYear,
		Category:        req.Category,
		Kind:            req.Kind,
		FileURL:         req.FileURL,
		FileType:        req.FileType,
		FileSize:        req.FileSize,
		ExternalURL:     req.ExternalURL,
		TwinCityID:      req.TwinCityID,
		LocationID:      req.LocationID,
	}
}

func storedPathFromURL(fileURL string) string {
	return strings.TrimPrefix(fileURL, "/uploads/")
}
