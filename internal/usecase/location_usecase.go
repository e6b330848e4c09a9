package usecase

import (
	"context"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/twincities-service/internal/domain"
	"github.com/twincities-service/internal/domain/repository"
	"github.com/twincities-service/internal/pkg/errors"
	"github.com/twincities-service/internal/pkg/validator"
	"github.com/twincities-service/internal/repository/filestore"
	"github.com/twincities-service/internal/usecase/dto"
)

type LocationUseCase struct {
	locationRepo repository.LocationRepository
	galleryRepo  repository.GalleryRepository
	documentRepo repository.DocumentRepository
	files        repository.FileStore
	logger       *zap.Logger
}

func NewLocationUseCase(
	locationRepo repository.LocationRepository,
	galleryRepo repository.GalleryRepository,
	documentRepo repository.DocumentRepository,
	files repository.FileStore,
	logger *zap.Logger,
) *LocationUseCase {
	return &LocationUseCase{
		locationRepo: locationRepo,
		galleryRepo:  galleryRepo,
		documentRepo: documentRepo,
		files:        files,
		logger:       logger,
	}
}

func (uc *LocationUseCase) List(ctx context.Context) ([]*domain.Location, error) {
	return uc.locationRepo.List(ctx)
}

func (uc *LocationUseCase) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	return uc.locationRepo.GetByID(ctx, id)
}

func (uc *LocationUseCase) Create(
	ctx context.Context,
	req dto.CreateLocationRequest,
	image *multipart.FileHeader,
) (*domain.Location, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	if err := uc.attachImage(&req.ImageURL, image); err != nil {
		return nil, err
	}

	loc := &domain.Location{
		Name:        req.Name,
		Lat:         req.Lat,
		Lon:         req.Lon,
		Country:     req.Country,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}

	created, err := uc.locationRepo.Create(ctx, loc)
	if err != nil {
		uc.logger.Error("Failed to create location", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (uc *LocationUseCase) Update(
	ctx context.Context,
	id int64,
	req dto.UpdateLocationRequest,
	image *multipart.FileHeader,
) (*domain.Location, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	existing, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.attachImage(&req.ImageURL, image); err != nil {
		return nil, err
	}

	merged := mergeLocation(existing, req)
	updated, err := uc.locationRepo.Update(ctx, merged)
	if err != nil {
		uc.logger.Error("Failed to update location", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// Delete enforces restrict-on-delete against galleries and documents, then
// best-effort removes the stored image.
func (uc *LocationUseCase) Delete(ctx context.Context, id int64) error {
	loc, err := uc.locationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	galleries, err := uc.galleryRepo.CountByLocation(ctx, id)
	if err != nil {
		return err
	}
	docs, err := uc.documentRepo.CountByLocation(ctx, id)
	if err != nil {
		return err
	}
	if galleries > 0 || docs > 0 {
		return errors.ErrLocationInUse.WithDetails(map[string]interface{}{
			"galleries": galleries,
			"documents": docs,
		})
	}

	if err := uc.locationRepo.Delete(ctx, id); err != nil {
		return err
	}

	if loc.ImageURL != nil && *loc.ImageURL != "" {
		if err := uc.files.Remove(storedPathFromURL(*loc.ImageURL)); err != nil {
			uc.logger.Warn("Failed to remove location image",
				zap.Int64("id", id), zap.Error(err))
		}
	}
	return nil
}

func (uc *LocationUseCase) attachImage(dst **string, image *multipart.FileHeader) error {
	if image == nil {
		return nil
	}

	src, err := image.Open()
	if err != nil {
		uc.logger.Error("Failed to open uploaded image", zap.Error(err))
		return errors.ErrStorageError
	}
	defer src.Close()

	relPath, _, err := uc.files.Save(filestore.EntityLocations, image.Filename, src)
	if err != nil {
		return err
	}
	url := "/uploads/" + relPath
	*dst = &url
	return nil
}

func mergeLocation(existing *domain.Location, req dto.UpdateLocationRequest) *domain.Location {
	merged := *existing
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Lat != nil {
		merged.Lat = *req.Lat
	}
	if req.Lon != nil {
		merged.Lon = *req.Lon
	}
	if req.Country != nil {
		merged.Country = *req.Country
	}
	if req.Description != nil {
		merged.Description = req.Description
	}
	if req.ImageURL != nil {
		merged.ImageURL = req.ImageURL
	}
	return &merged
}
