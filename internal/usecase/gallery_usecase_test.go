package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/twincities-service/internal/domain"
	apperrors "github.com/twincities-service/internal/pkg/errors"
	"github.com/twincities-service/internal/usecase"
	"github.com/twincities-service/internal/usecase/dto"
)

func newGalleryUseCase() (*usecase.GalleryUseCase, *MockGalleryRepository, *MockLocationRepository) {
	galleryRepo := &MockGalleryRepository{}
	locRepo := &MockLocationRepository{}
	uc := usecase.NewGalleryUseCase(galleryRepo, locRepo, zap.NewNop())
	return uc, galleryRepo, locRepo
}

func TestGalleryUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("items are stored in request order", func(t *testing.T) {
		uc, galleryRepo, locRepo := newGalleryUseCase()

		locRepo.On("GetByID", ctx, int64(1)).Return(&domain.Location{ID: 1}, nil)
		galleryRepo.On("Create", ctx, mock.MatchedBy(func(g *domain.Gallery) bool {
			return g.Type == domain.GalleryTypePhoto &&
				len(g.Items) == 2 &&
				g.Items[0].Position == 0 && g.Items[0].URL == "/a.jpg" &&
				g.Items[1].Position == 1 && g.Items[1].URL == "/b.jpg"
		})).Return(&domain.Gallery{ID: 4}, nil)

		created, err := uc.Create(ctx, dto.CreateGalleryRequest{
			Name:       "Marco da fronteira",
			Type:       domain.GalleryTypePhoto,
			LocationID: 1,
			Items: []dto.GalleryItemPayload{
				{URL: "/a.jpg", Type: domain.GalleryTypePhoto},
				{URL: "/b.jpg", Type: domain.GalleryTypePhoto},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(4), created.ID)
		galleryRepo.AssertExpectations(t)
	})

	t.Run("item type must match gallery type", func(t *testing.T) {
		uc, galleryRepo, locRepo := newGalleryUseCase()

		_, err := uc.Create(ctx, dto.CreateGalleryRequest{
			Name:       "Mixed",
			Type:       domain.GalleryTypePhoto,
			LocationID: 1,
			Items: []dto.GalleryItemPayload{
				{URL: "/a.mp4", Type: domain.GalleryTypeVideo},
			},
		})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		locRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		galleryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown location", func(t *testing.T) {
		uc, galleryRepo, locRepo := newGalleryUseCase()

		locRepo.On("GetByID", ctx, int64(9)).Return(nil, apperrors.ErrLocationNotFound)

		_, err := uc.Create(ctx, dto.CreateGalleryRequest{
			Name:       "Orphan",
			Type:       domain.GalleryTypeVideo,
			LocationID: 9,
		})

		assert.ErrorIs(t, err, apperrors.ErrLocationNotFound)
		galleryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGalleryUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("omitted items leave the item set alone", func(t *testing.T) {
		uc, galleryRepo, _ := newGalleryUseCase()

		existing := &domain.Gallery{ID: 2, Name: "Old", Type: domain.GalleryTypePhoto, LocationID: 1}
		galleryRepo.On("GetByID", ctx, int64(2)).Return(existing, nil)

		newName := "Renamed"
		galleryRepo.On("Update", ctx, mock.MatchedBy(func(g *domain.Gallery) bool {
			return g.Name == "Renamed" && g.Type == domain.GalleryTypePhoto
		}), false).Return(existing, nil)

		_, err := uc.Update(ctx, 2, dto.UpdateGalleryRequest{Name: &newName})

		assert.NoError(t, err)
		galleryRepo.AssertExpectations(t)
	})

	t.Run("new items checked against updated type", func(t *testing.T) {
		uc, galleryRepo, _ := newGalleryUseCase()

		existing := &domain.Gallery{ID: 3, Type: domain.GalleryTypePhoto, LocationID: 1}
		galleryRepo.On("GetByID", ctx, int64(3)).Return(existing, nil)

		newType := domain.GalleryTypeVideo
		items := []dto.GalleryItemPayload{{URL: "/clip.jpg", Type: domain.GalleryTypePhoto}}

		_, err := uc.Update(ctx, 3, dto.UpdateGalleryRequest{Type: &newType, Items: &items})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		galleryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("replaced items reach the repository", func(t *testing.T) {
		uc, galleryRepo, _ := newGalleryUseCase()

		existing := &domain.Gallery{ID: 6, Type: domain.GalleryTypeVideo, LocationID: 1}
		galleryRepo.On("GetByID", ctx, int64(6)).Return(existing, nil)

		items := []dto.GalleryItemPayload{{URL: "/clip.mp4", Type: domain.GalleryTypeVideo}}
		galleryRepo.On("Update", ctx, mock.MatchedBy(func(g *domain.Gallery) bool {
			return len(g.Items) == 1 && g.Items[0].URL == "/clip.mp4"
		}), true).Return(existing, nil)

		_, err := uc.Update(ctx, 6, dto.UpdateGalleryRequest{Items: &items})

		assert.NoError(t, err)
		galleryRepo.AssertExpectations(t)
	})
}
