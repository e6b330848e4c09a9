package handler

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/twincities-service/internal/pkg/utils"
	"github.com/twincities-service/internal/usecase"
	"github.com/twincities-service/internal/usecase/dto"
)

// DocumentHandler serves the digital-collection endpoints.
type DocumentHandler struct {
	documentUC *usecase.DocumentUseCase
	logger     *zap.Logger
}

func NewDocumentHandler(documentUC *usecase.DocumentUseCase, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		documentUC: documentUC,
		logger:     logger,
	}
}

// List - GET /digital-collection with optional filters and pagination.
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	var query dto.ListDocumentsQuery
	if err := c.QueryParser(&query); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid query parameters"})
	}
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}

	docs, total, err := h.documentUC.List(c.Context(), query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, docs, &utils.Meta{
		Total: total,
		Page:  query.Page,
		Limit: query.Limit,
	})
}

// GetByID - GET /digital-collection/:id
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	doc, err := h.documentUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, doc, nil)
}

// GetByTwinCity - GET /digital-collection/twin-city/:id
func (h *DocumentHandler) GetByTwinCity(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	docs, err := h.documentUC.GetByTwinCity(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, docs, &utils.Meta{Total: len(docs)})
}

// GetByLocation - GET /digital-collection/location/:id
func (h *DocumentHandler) GetByLocation(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	docs, err := h.documentUC.GetByLocation(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, docs, &utils.Meta{Total: len(docs)})
}

// Create - POST /digital-collection (multipart when a file is attached).
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var req dto.DocumentPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	doc, err := h.documentUC.Create(c.Context(), req, formFile(c, "file"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, doc)
}

// Update - PUT /digital-collection/:id (same write shape as create).
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.DocumentPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	doc, err := h.documentUC.Update(c.Context(), id, req, formFile(c, "file"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, doc, nil)
}

// Download - GET /digital-collection/:id/download streams the stored file.
func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	absPath, name, err := h.documentUC.Download(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Download(absPath, name)
}

// Delete - DELETE /digital-collection/:id
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.documentUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// formFile returns the named upload or nil when the request carries none.
func formFile(c *fiber.Ctx, name string) *multipart.FileHeader {
	fh, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return fh
}
