package handler

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/twincities-service/internal/pkg/utils"
	"github.com/twincities-service/internal/usecase"
	"github.com/twincities-service/internal/usecase/dto"
)

type CollaborationHandler struct {
	collaborationUC *usecase.CollaborationUseCase
	logger          *zap.Logger
}

func NewCollaborationHandler(collaborationUC *usecase.CollaborationUseCase, logger *zap.Logger) *CollaborationHandler {
	return &CollaborationHandler{
		collaborationUC: collaborationUC,
		logger:          logger,
	}
}

// List - GET /collaborations (paginated, optional status filter)
func (h *CollaborationHandler) List(c *fiber.Ctx) error {
	var query dto.ListCollaborationsQuery
	if err := c.QueryParser(&query); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid query parameters"})
	}
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}

	collabs, total, err := h.collaborationUC.List(c.Context(), query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, collabs, &utils.Meta{
		Total: total,
		Page:  query.Page,
		Limit: query.Limit,
	})
}

// GetByID - GET /collaborations/:id
func (h *CollaborationHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	collab, err := h.collaborationUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, collab, nil)
}

// Create - POST /collaborations (multipart; zero or more "files" parts)
func (h *CollaborationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCollaborationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	collab, err := h.collaborationUC.Create(c.Context(), req, formFiles(c, "files"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, collab)
}

// Update - PUT /collaborations/:id (partial; moves status through review)
func (h *CollaborationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateCollaborationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	collab, err := h.collaborationUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, collab, nil)
}

// DownloadFile - GET /collaborations/:id/files/:file_id/download
func (h *CollaborationHandler) DownloadFile(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}
	fileID, err := parseID(c, "file_id")
	if err != nil {
		return utils.SendError(c, err)
	}

	absPath, name, err := h.collaborationUC.DownloadFile(c.Context(), id, fileID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Download(absPath, name)
}

// Delete - DELETE /collaborations/:id (attachment cleanup is best-effort)
func (h *CollaborationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.collaborationUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// formFiles returns all uploads under one multipart field name.
func formFiles(c *fiber.Ctx, name string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[name]
}
