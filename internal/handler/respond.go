package handler

import (
	"errors"
	"strconv"

	"go-stockroom/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helper untuk parse UUID dari string
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// Legacy catalog tables use integer keys
func parseID(id string) (uint64, error) {
	return strconv.ParseUint(id, 10, 64)
}

// respondError maps domain errors onto the HTTP surface: unknown ids become
// 404, validation problems come back inline with field-level messages, and
// insufficient stock is a field-level error on amount rather than a system
// failure.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *model.ValidationError
	switch {
	case errors.Is(err, model.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, model.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"amount": "insufficient stock"},
		})
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": validationErr.Fields})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
