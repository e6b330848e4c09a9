package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/twincities-service/internal/pkg/utils"
	"github.com/twincities-service/internal/usecase"
	"github.com/twincities-service/internal/usecase/dto"
)

type IndicatorHandler struct {
	indicatorUC *usecase.IndicatorUseCase
	logger      *zap.Logger
}

func NewIndicatorHandler(indicatorUC *usecase.IndicatorUseCase, logger *zap.Logger) *IndicatorHandler {
	return &IndicatorHandler{
		indicatorUC: indicatorUC,
		logger:      logger,
	}
}

// List - GET /indicators (optional twin_city_id filter)
func (h *IndicatorHandler) List(c *fiber.Ctx) error {
	twinCityID := int64(c.QueryInt("twin_city_id", 0))

	inds, err := h.indicatorUC.List(c.Context(), twinCityID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, inds, &utils.Meta{Total: len(inds)})
}

// GetByID - GET /indicators/:id
func (h *IndicatorHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	ind, err := h.indicatorUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, ind, nil)
}

// Create - POST /indicators
func (h *IndicatorHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateIndicatorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	ind, err := h.indicatorUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, ind)
}

// Update - PUT /indicators/:id (partial)
func (h *IndicatorHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateIndicatorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	ind, err := h.indicatorUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, ind, nil)
}

// Delete - DELETE /indicators/:id
func (h *IndicatorHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.indicatorUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}
