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

type TwinCityUseCase struct {
	twinCityRepo  repository.TwinCityRepository
	documentRepo  repository.DocumentRepository
	indicatorRepo repository.IndicatorRepository
	logger        *zap.Logger
}

func NewTwinCityUseCase(
	twinCityRepo repository.TwinCityRepository,
	documentRepo repository.DocumentRepository,
	indicatorRepo repository.IndicatorRepository,
	logger *zap.Logger,
) *TwinCityUseCase {
	return &TwinCityUseCase{
		twinCityRepo:  twinCityRepo,
		documentRepo:  documentRepo,
		indicatorRepo: indicatorRepo,
		logger:        logger,
	}
}

func (uc *TwinCityUseCase) List(ctx context.Context) ([]*domain.TwinCity, error) {
	return uc.twinCityRepo.List(ctx)
}

func (uc *TwinCityUseCase) GetByID(ctx context.Context, id int64) (*domain.TwinCity, error) {
	return uc.twinCityRepo.GetByID(ctx, id)
}

func (uc *TwinCityUseCase) Create(ctx context.Context, req dto.CreateTwinCityRequest) (*domain.TwinCity, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	tc := &domain.TwinCity{
		CityAName:   req.CityAName,
		CityALat:    req.CityALat,
		CityALon:    req.CityALon,
		CityBName:   req.CityBName,
		CityBLat:    req.CityBLat,
		CityBLon:    req.CityBLon,
		Description: req.Description,
	}

	created, err := uc.twinCityRepo.Create(ctx, tc)
	if err != nil {
		uc.logger.Error("Failed to create twin city", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (uc *TwinCityUseCase) Update(
	ctx context.Context,
	id int64,
	req dto.UpdateTwinCityRequest,
) (*domain.TwinCity, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	existing, err := uc.twinCityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := mergeTwinCity(existing, req)
	updated, err := uc.twinCityRepo.Update(ctx, merged)
	if err != nil {
		uc.logger.Error("Failed to update twin city", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// Delete enforces restrict-on-delete: a pair still referenced by documents
// or indicators cannot be removed.
func (uc *TwinCityUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.twinCityRepo.GetByID(ctx, id); err != nil {
		return err
	}

	docs, err := uc.documentRepo.CountByTwinCity(ctx, id)
	if err != nil {
		return err
	}
	inds, err := uc.indicatorRepo.CountByTwinCity(ctx, id)
	if err != nil {
		return err
	}
	if docs > 0 || inds > 0 {
		return errors.ErrTwinCityInUse.WithDetails(map[string]interface{}{
			"documents":  docs,
			"indicators": inds,
		})
	}

	return uc.twinCityRepo.Delete(ctx, id)
}

// mergeTwinCity applies the partial update over the stored values.
func mergeTwinCity(existing *domain.TwinCity, req dto.UpdateTwinCityRequest) *domain.TwinCity {
	merged := *existing
	if req.CityAName != nil {
		merged.CityAName = *req.CityAName
	}
	if req.CityALat != nil {
		merged.CityALat = *req.CityALat
	}
	if req.CityALon != nil {
		merged.CityALon = *req.CityALon
	}
	if req.CityBName != nil {
		merged.CityBName = *req.CityBName
	}
	if req.CityBLat != nil {
		merged.CityBLat = *req.CityBLat
	}
	if req.CityBLon != nil {
		merged.CityBLon = *req.CityBLon
	}
	if req.Description != nil {
		merged.Description = req.Description
	}
	return &merged
}
