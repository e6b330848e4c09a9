package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/twincities-service/internal/domain"
	"github.com/twincities-service/internal/domain/repository"
	"github.com/twincities-service/internal/pkg/errors"
	"github.com/twincities-service/internal/pkg/validator"
	"github.com/twincities-service/internal/usecase/dto"
)

type GalleryUseCase struct {
	galleryRepo  repository.GalleryRepository
	locationRepo repository.LocationRepository
	logger       *zap.Logger
}

func NewGalleryUseCase(
	galleryRepo repository.GalleryRepository,
	locationRepo repository.LocationRepository,
	logger *zap.Logger,
) *GalleryUseCase {
	return &GalleryUseCase{
		galleryRepo:  galleryRepo,
		locationRepo: locationRepo,
		logger:       logger,
	}
}

func (uc *GalleryUseCase) List(ctx context.Context) ([]*domain.Gallery, error) {
	return uc.galleryRepo.List(ctx)
}

func (uc *GalleryUseCase) GetByID(ctx context.Context, id int64) (*domain.Gallery, error) {
	return uc.galleryRepo.GetByID(ctx, id)
}

func (uc *GalleryUseCase) Create(ctx context.Context, req dto.CreateGalleryRequest) (*domain.Gallery, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}
	if err := checkItemTypes(req.Type, req.Items); err != nil {
		return nil, err
	}

	if _, err := uc.locationRepo.GetByID(ctx, req.LocationID); err != nil {
		return nil, err
	}

	g := &domain.Gallery{
		Name:       req.Name,
		Type:       req.Type,
		LocationID: req.LocationID,
		Items:      itemsFromPayload(req.Items),
	}

	created, err := uc.galleryRepo.Create(ctx, g)
	if err != nil {
		uc.logger.Error("Failed to create gallery", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (uc *GalleryUseCase) Update(
	ctx context.Context,
	id int64,
	req dto.UpdateGalleryRequest,
) (*domain.Gallery, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	existing, err := uc.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Type != nil {
		merged.Type = *req.Type
	}
	if req.LocationID != nil {
		if _, err := uc.locationRepo.GetByID(ctx, *req.LocationID); err != nil {
			return nil, err
		}
		merged.LocationID = *req.LocationID
	}

	replaceItems := req.Items != nil
	if replaceItems {
		if err := checkItemTypes(merged.Type, *req.Items); err != nil {
			return nil, err
		}
		merged.Items = itemsFromPayload(*req.Items)
	}

	updated, err := uc.galleryRepo.Update(ctx, &merged, replaceItems)
	if err != nil {
		uc.logger.Error("Failed to update gallery", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (uc *GalleryUseCase) Delete(ctx context.Context, id int64) error {
	return uc.galleryRepo.Delete(ctx, id)
}

// checkItemTypes rejects items whose type differs from the gallery type.
func checkItemTypes(galleryType string, items []dto.GalleryItemPayload) error {
	for _, item := range items {
		if item.Type != galleryType {
			return errors.ErrValidation.WithDetails(map[string]interface{}{
				"fields": []string{"items"},
				"reason": "item type must match gallery type",
			})
		}
	}
	return nil
}

func itemsFromPayload(items []dto.GalleryItemPayload) []domain.GalleryItem {
	out := make([]domain.GalleryItem, 0, len(items))
	for i, item := range items {
		out = append(out, domain.GalleryItem{
			URL:      item.URL,
			Type:     item.Type,
			Position: i,
		})
	}
	return out
}
