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

func newCollaborationUseCase() (*usecase.CollaborationUseCase, *MockCollaborationRepository, *MockFileStore) {
	collabRepo := &MockCollaborationRepository{}
	files := &MockFileStore{}
	uc := usecase.NewCollaborationUseCase(collabRepo, files, zap.NewNop())
	return uc, collabRepo, files
}

func TestCollaborationUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("new submission starts pending", func(t *testing.T) {
		uc, collabRepo, _ := newCollaborationUseCase()

		created := &domain.Collaboration{ID: 11, Status: domain.CollaborationStatusDefault}
		collabRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.Collaboration) bool {
			return c.Status == domain.CollaborationStatusDefault && c.Email == "ana@example.org"
		})).Return(created, nil)
		collabRepo.On("GetByID", ctx, int64(11)).Return(created, nil)

		got, err := uc.Create(ctx, dto.CreateCollaborationRequest{
			Name:    "Ana",
			Email:   "ana@example.org",
			Subject: "Foto antiga",
			Message: "Tenho fotos do marco de 1940.",
		}, nil)

		assert.NoError(t, err)
		assert.Equal(t, domain.CollaborationStatusDefault, got.Status)
		collabRepo.AssertExpectations(t)
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		uc, collabRepo, _ := newCollaborationUseCase()

		_, err := uc.Create(ctx, dto.CreateCollaborationRequest{
			Name:    "Ana",
			Email:   "not-an-email",
			Subject: "x",
			Message: "y",
		}, nil)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		collabRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCollaborationUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("applies default pagination", func(t *testing.T) {
		uc, collabRepo, _ := newCollaborationUseCase()

		collabRepo.On("List", ctx, "", 1, 10).
			Return([]*domain.Collaboration{}, 0, nil)

		_, total, err := uc.List(ctx, dto.ListCollaborationsQuery{})

		assert.NoError(t, err)
		assert.Equal(t, 0, total)
		collabRepo.AssertExpectations(t)
	})

	t.Run("status filter passes through", func(t *testing.T) {
		uc, collabRepo, _ := newCollaborationUseCase()

		collabRepo.On("List", ctx, "approved", 2, 5).
			Return([]*domain.Collaboration{{ID: 1}}, 6, nil)

		items, total, err := uc.List(ctx, dto.ListCollaborationsQuery{
			Status: "approved",
			Page:   2,
			Limit:  5,
		})

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, 6, total)
		collabRepo.AssertExpectations(t)
	})
}

func TestCollaborationUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("status change keeps the rest of the record", func(t *testing.T) {
		uc, collabRepo, _ := newCollaborationUseCase()

		existing := &domain.Collaboration{
			ID:      4,
			Name:    "Ana",
			Email:   "ana@example.org",
			Subject: "Foto antiga",
			Message: "Tenho fotos.",
			Status:  "pending",
		}
		collabRepo.On("GetByID", ctx, int64(4)).Return(existing, nil)

		status := "reviewed"
		collabRepo.On("Update", ctx, mock.MatchedBy(func(c *domain.Collaboration) bool {
			return c.Status == "reviewed" && c.Name == "Ana" && c.Message == "Tenho fotos."
		})).Return(existing, nil)

		_, err := uc.Update(ctx, 4, dto.UpdateCollaborationRequest{Status: &status})

		assert.NoError(t, err)
		collabRepo.AssertExpectations(t)
	})
}

func TestCollaborationUseCase_DownloadFile(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the stored attachment", func(t *testing.T) {
		uc, collabRepo, files := newCollaborationUseCase()

		collabRepo.On("GetFile", ctx, int64(4), int64(2)).Return(&domain.CollaborationFile{
			ID:       2,
			FileName: "marco.jpg",
			FilePath: "collaborations/aaa.jpg",
		}, nil)
		files.On("AbsPath", "collaborations/aaa.jpg").
			Return("/srv/uploads/collaborations/aaa.jpg", nil)

		abs, name, err := uc.DownloadFile(ctx, 4, 2)

		assert.NoError(t, err)
		assert.Equal(t, "/srv/uploads/collaborations/aaa.jpg", abs)
		assert.Equal(t, "marco.jpg", name)
	})

	t.Run("unknown attachment", func(t *testing.T) {
		uc, collabRepo, files := newCollaborationUseCase()

		collabRepo.On("GetFile", ctx, int64(4), int64(99)).
			Return(nil, apperrors.ErrFileNotFound)

		_, _, err := uc.DownloadFile(ctx, 4, 99)

		assert.ErrorIs(t, err, apperrors.ErrFileNotFound)
		files.AssertNotCalled(t, "AbsPath", mock.Anything)
	})
}

func TestCollaborationUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("failed attachment cleanup does not fail the delete", func(t *testing.T) {
		uc, collabRepo, files := newCollaborationUseCase()

		collabRepo.On("GetByID", ctx, int64(7)).Return(&domain.Collaboration{
			ID: 7,
			Files: []domain.CollaborationFile{
				{ID: 1, FilePath: "collaborations/a.jpg"},
				{ID: 2, FilePath: "collaborations/b.jpg"},
			},
		}, nil)
		collabRepo.On("Delete", ctx, int64(7)).Return(nil)
		files.On("Remove", "collaborations/a.jpg").Return(assert.AnError)
		files.On("Remove", "collaborations/b.jpg").Return(nil)

		err := uc.Delete(ctx, 7)

		assert.NoError(t, err)
		collabRepo.AssertExpectations(t)
		files.AssertExpectations(t)
	})

	t.Run("missing submission aborts before any removal", func(t *testing.T) {
		uc, collabRepo, files := newCollaborationUseCase()

		collabRepo.On("GetByID", ctx, int64(50)).
			Return(nil, apperrors.ErrCollaborationNotFound)

		err := uc.Delete(ctx, 50)

		assert.ErrorIs(t, err, apperrors.ErrCollaborationNotFound)
		collabRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		files.AssertNotCalled(t, "Remove", mock.Anything)
	})
}
