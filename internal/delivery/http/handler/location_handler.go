package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/twincities-service/internal/pkg/utils"
	"github.com/twincities-service/internal/usecase"
	"github.com/twincities-service/internal/usecase/dto"
)

type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	logger     *zap.Logger
}

func NewLocationHandler(locationUC *usecase.LocationUseCase, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		logger:     logger,
	}
}

// List - GET /locations
func (h *LocationHandler) List(c *fiber.Ctx) error {
	locs, err := h.locationUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, locs, &utils.Meta{Total: len(locs)})
}

// GetByID - GET /locations/:id
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	loc, err := h.locationUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, loc, nil)
}

// Create - POST /locations (multipart when an image is attached)
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	loc, err := h.locationUC.Create(c.Context(), req, formFile(c, "image"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, loc)
}

// Update - PUT /locations/:id (partial)
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	loc, err := h.locationUC.Update(c.Context(), id, req, formFile(c, "image"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, loc, nil)
}

// Delete - DELETE /locations/:id (409 when still referenced)
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.locationUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}
