package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/twincities-service/internal/pkg/utils"
	"github.com/twincities-service/internal/usecase"
	"github.com/twincities-service/internal/usecase/dto"
)

type GalleryHandler struct {
	galleryUC *usecase.GalleryUseCase
	logger    *zap.Logger
}

func NewGalleryHandler(galleryUC *usecase.GalleryUseCase, logger *zap.Logger) *GalleryHandler {
	return &GalleryHandler{
		galleryUC: galleryUC,
		logger:    logger,
	}
}

// List - GET /galleries
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	galleries, err := h.galleryUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, galleries, &utils.Meta{Total: len(galleries)})
}

// GetByID - GET /galleries/:id
func (h *GalleryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	g, err := h.galleryUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, g, nil)
}

// Create - POST /galleries
func (h *GalleryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGalleryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	g, err := h.galleryUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, g)
}

// Update - PUT /galleries/:id (partial; non-nil items replace the set)
func (h *GalleryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateGalleryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	g, err := h.galleryUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, g, nil)
}

// Delete - DELETE /galleries/:id
func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.galleryUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}
