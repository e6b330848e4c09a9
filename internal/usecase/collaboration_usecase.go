package usecase

import (
	"context"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/twincities-service/internal/domain"
	"github.com/twincities-service/internal/domain/repository"
	"github.com/twincities-service/internal/pkg/validator"
	"github.com/twincities-service/internal/repository/filestore"
	"github.com/twincities-service/internal/usecase/dto"
)

type CollaborationUseCase struct {
	collaborationRepo repository.CollaborationRepository
	files             repository.FileStore
	logger            *zap.Logger
}

func NewCollaborationUseCase(
	collaborationRepo repository.CollaborationRepository,
	files repository.FileStore,
	logger *zap.Logger,
) *CollaborationUseCase {
	return &CollaborationUseCase{
		collaborationRepo: collaborationRepo,
		files:             files,
		logger:            logger,
	}
}

func (uc *CollaborationUseCase) List(
	ctx context.Context,
	query dto.ListCollaborationsQuery,
) ([]*domain.Collaboration, int, error) {
	if err := validator.Validate(&query); err != nil {
		return nil, 0, err
	}

	page := query.Page
	if page == 0 {
		page = defaultPage
	}
	limit := query.Limit
	if limit == 0 {
		limit = defaultLimit
	}

	return uc.collaborationRepo.List(ctx, query.Status, page, limit)
}

func (uc *CollaborationUseCase) GetByID(ctx context.Context, id int64) (*domain.Collaboration, error) {
	return uc.collaborationRepo.GetByID(ctx, id)
}

// Create persists the submission, then stores each attachment and records
// it. A failed attachment is logged and skipped; the submission itself
// always survives.
func (uc *CollaborationUseCase) Create(
	ctx context.Context,
	req dto.CreateCollaborationRequest,
	attachments []*multipart.FileHeader,
) (*domain.Collaboration, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	c := &domain.Collaboration{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  domain.CollaborationStatusDefault,
	}

	created, err := uc.collaborationRepo.Create(ctx, c)
	if err != nil {
		uc.logger.Error("Failed to create collaboration", zap.Error(err))
		return nil, err
	}

	for _, fh := range attachments {
		if err := uc.storeAttachment(ctx, created.ID, fh); err != nil {
			uc.logger.Warn("Failed to store attachment",
				zap.Int64("collaboration_id", created.ID),
				zap.String("file_name", fh.Filename),
				zap.Error(err))
		}
	}

	return uc.collaborationRepo.GetByID(ctx, created.ID)
}

func (uc *CollaborationUseCase) Update(
	ctx context.Context,
	id int64,
	req dto.UpdateCollaborationRequest,
) (*domain.Collaboration, error) {
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	existing, err := uc.collaborationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := mergeCollaboration(existing, req)
	updated, err := uc.collaborationRepo.Update(ctx, merged)
	if err != nil {
		uc.logger.Error("Failed to update collaboration", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// DownloadFile resolves one stored attachment for streaming.
func (uc *CollaborationUseCase) DownloadFile(
	ctx context.Context,
	collaborationID, fileID int64,
) (absPath, name string, err error) {
	f, err := uc.collaborationRepo.GetFile(ctx, collaborationID, fileID)
	if err != nil {
		return "", "", err
	}

	abs, err := uc.files.AbsPath(f.FilePath)
	if err != nil {
		return "", "", err
	}
	return abs, f.FileName, nil
}

// Delete removes the record first, then best-effort deletes the attachment
// files from disk; a failed file deletion never aborts the operation.
func (uc *CollaborationUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.collaborationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.collaborationRepo.Delete(ctx, id); err != nil {
		return err
	}

	for _, f := range existing.Files {
		if err := uc.files.Remove(f.FilePath); err != nil {
			uc.logger.Warn("Failed to remove attachment file",
				zap.Int64("collaboration_id", id),
				zap.String("path", f.FilePath),
				zap.Error(err))
		}
	}
	return nil
}

func (uc *CollaborationUseCase) storeAttachment(
	ctx context.Context,
	collaborationID int64,
	fh *multipart.FileHeader,
) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	relPath, size, err := uc.files.Save(filestore.EntityCollaborations, fh.Filename, src)
	if err != nil {
		return err
	}

	_, err = uc.collaborationRepo.AddFile(ctx, &domain.CollaborationFile{
		CollaborationID: collaborationID,
		FileName:        fh.Filename,
		FilePath:        relPath,
		FileSize:        size,
		MimeType:        fh.Header.Get("Content-Type"),
	})
	if err != nil {
		// Orphaned file on disk is worse than a missing record; clean up.
		if rmErr := uc.files.Remove(relPath); rmErr != nil {
			uc.logger.Warn("Failed to clean up orphaned attachment",
				zap.String("path", relPath), zap.Error(rmErr))
		}
		return err
	}
	return nil
}

func mergeCollaboration(existing *domain.Collaboration, req dto.UpdateCollaborationRequest) *domain.Collaboration {
	merged := *existing
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Email != nil {
		merged.Email = *req.Email
	}
	if req.Phone != nil {
		merged.Phone = *req.Phone
	}
	if req.Subject != nil {
		merged.Subject = *req.Subject
	}
	if req.Message != nil {
		merged.Message = *req.Message
	}
	if req.Status != nil {
		merged.Status = *req.Status
	}
	return &merged
}
