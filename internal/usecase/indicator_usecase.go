package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/twincities-service/internal/domain"
	"github.com/twincities-service/internal/domain/repository"
	"github.com/twincities-service/internal/pkg/validator"
	"github.com/twincities-service/internal/usecase/dto"
)

type IndicatorUseCase struct {
	indicatorRepo repository.IndicatorRepository
	twinCityRepo  repository.TwinCityRepository
	logger        *zap.Logger
}

func NewIndicatorUseCase(
	indicatorRepo repository.IndicatorRepository,
	twinCityRepo repository.TwinCityRepository,
	logger *zap.Logger,
) *IndicatorUseCase {
	return &IndicatorUseCase{
		indicatorRepo: indicatorRepo,
		twinCityRepo:  twinCityRepo,
		logger:        logger,
	}
}

func (uc *IndicatorUseCase) List(ctx context.Context, twinCityID int64) ([]*domain.Indicator, error) {
	return uc.indicatorRepo.List(ctx, twinCityID)
}

func (uc *IndicatorUseCase) GetByID(ctx context.Context, id int64) (*domain.Indicator, error) {
	return uc.indicatorRepo.GetByID(ctx, id)
}

func (uc *IndicatorUseCase) Create(ctx context.Context, req dto.CreateIndicatorRequest) (*domain.Indicator, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	// The pair reference is checked before writing (404 on miss).
	if _, err := uc.twinCityRepo.GetByID(ctx, req.TwinCityID); err != nil {
		return nil, err
	}

	ind := &domain.Indicator{
		TwinCityID:  req.TwinCityID,
		Category:    req.Category,
		Title:       req.Title,
		StudyStart:  req.StudyStart,
		StudyEnd:    req.StudyEnd,
		SourceTitle: req.SourceTitle,
		SourceLink:  req.SourceLink,
		CityAValue:  req.CityAValue,
		CityBValue:  req.CityBValue,
		Unit:        req.Unit,
		Icon:        req.Icon,
	}

	created, err := uc.indicatorRepo.Create(ctx, ind)
	if err != nil {
		uc.logger.Error("Failed to create indicator", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (uc *IndicatorUseCase) Update(
	ctx context.Context,
	id int64,
	req dto.UpdateIndicatorRequest,
) (*domain.Indicator, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	existing, err := uc.indicatorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := mergeIndicator(existing, req)
	if merged.TwinCityID != existing.TwinCityID {
		if _, err := uc.twinCityRepo.GetByID(ctx, merged.TwinCityID); err != nil {
			return nil, err
		}
	}

	updated, err := uc.indicatorRepo.Update(ctx, merged)
	if err != nil {
		uc.logger.Error("Failed to update indicator", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (uc *IndicatorUseCase) Delete(ctx context.Context, id int64) error {
	return uc.indicatorRepo.Delete(ctx, id)
}

func mergeIndicator(existing *domain.Indicator, req dto.UpdateIndicatorRequest) *domain.Indicator {
	merged := *existing
	if req.TwinCityID != nil {
		merged.TwinCityID = *req.TwinCityID
	}
	if req.Category != nil {
		merged.Category = *req.Category
	}
	if req.Title != nil {
		merged.Title = *req.Title
	}
	if req.StudyStart != nil {
		merged.StudyStart = req.StudyStart
	}
	if req.StudyEnd != nil {
		merged.StudyEnd = req.StudyEnd
	}
	if req.SourceTitle != nil {
		merged.SourceTitle = *req.SourceTitle
	}
	if req.SourceLink != nil {
		merged.SourceLink = *req.SourceLink
	}
	if req.CityAValue != nil {
		merged.CityAValue = *req.CityAValue
	}
	if req.CityBValue != nil {
		merged.CityBValue = *req.CityBValue
	}
	if req.Unit != nil {
		merged.Unit = *req.Unit
	}
	if req.Icon != nil {
		merged.Icon = req.Icon
	}
	return &merged
}
