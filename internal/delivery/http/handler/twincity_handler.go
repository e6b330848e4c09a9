package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/twincities-service/internal/pkg/utils"
	"github.com/twincities-service/internal/usecase"
	"github.com/twincities-service/internal/usecase/dto"
)

type TwinCityHandler struct {
	twinCityUC *usecase.TwinCityUseCase
	logger     *zap.Logger
}

func NewTwinCityHandler(twinCityUC *usecase.TwinCityUseCase, logger *zap.Logger) *TwinCityHandler {
	return &TwinCityHandler{
		twinCityUC: twinCityUC,
		logger:     logger,
	}
}

// List - GET /twin-cities
func (h *TwinCityHandler) List(c *fiber.Ctx) error {
	pairs, err := h.twinCityUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, pairs, &utils.Meta{Total: len(pairs)})
}

// GetByID - GET /twin-cities/:id
func (h *TwinCityHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	tc, err := h.twinCityUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, tc, nil)
}

// Create - POST /twin-cities
func (h *TwinCityHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTwinCityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	tc, err := h.twinCityUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, tc)
}

// Update - PUT /twin-cities/:id (partial)
func (h *TwinCityHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateTwinCityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	tc, err := h.twinCityUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, tc, nil)
}

// Delete - DELETE /twin-cities/:id (409 when still referenced)
func (h *TwinCityHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.twinCityUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}
