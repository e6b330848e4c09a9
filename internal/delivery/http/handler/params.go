package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/twincities-service/internal/pkg/errors"
)

// parseID reads a positive numeric route parameter.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.ErrInvalidID
	}
	return id, nil
}
