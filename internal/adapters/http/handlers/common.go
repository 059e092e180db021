package handlers

import (
	"strconv"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/pagination"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// parseID extracts a positive integer route parameter
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}

// validationFailed renders a validation error with its full field list
func validationFailed(c *fiber.Ctx, err error) error {
	if ve, ok := domain.AsValidationErrors(err); ok {
		return response.ValidationFailed(c, ve.Fields)
	}
	return response.BadRequest(c, "Invalid request")
}

// listResponse renders a list, paginated only when the client asked for it
func listResponse[T any](c *fiber.Ctx, message string, items []T) error {
	if !pagination.Requested(c) {
		return response.Success(c, message, items)
	}

	params := pagination.GetParams(c)
	page := pagination.Slice(items, params)
	return response.Success(c, message, fiber.Map{
		"items": page,
		"meta":  pagination.GetMeta(params, int64(len(items))),
	})
}
