package handlers

import (
	"errors"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/services"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/response"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// ActivityHandler handles activity endpoints
type ActivityHandler struct {
	activityService *services.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List returns all activities
// @Summary List activities
// @Tags Activities
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	activities, err := h.activityService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list activities")
	}
	return listResponse(c, "Activities retrieved successfully", activities)
}

// Get returns one activity
// @Summary Get activity
// @Tags Activities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /activities/{id} [get]
func (h *ActivityHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid activity ID")
	}

	activity, err := h.activityService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			return response.NotFound(c, "Activity not found")
		}
		return response.InternalServerError(c, "Failed to get activity")
	}
	return response.Success(c, "Activity retrieved successfully", activity)
}

// Create creates an activity
// @Summary Create activity
// @Tags Activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ActivityInput true "Activity data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /activities [post]
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var input services.ActivityInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	activity, err := h.activityService.Create(c.Context(), &input)
	if err != nil {
		if _, ok := domain.AsValidationErrors(err); ok {
			return validationFailed(c, err)
		}
		return response.InternalServerError(c, "Failed to create activity")
	}
	return response.Created(c, "Activity created successfully", activity)
}

// Update fully replaces the mutable fields of an activity
// @Summary Update activity
// @Tags Activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Param body body services.ActivityInput true "Activity data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /activities/{id} [put]
func (h *ActivityHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid activity ID")
	}

	var input services.ActivityInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	activity, err := h.activityService.Update(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			return response.NotFound(c, "Activity not found")
		default:
			if _, ok := domain.AsValidationErrors(err); ok {
				return validationFailed(c, err)
			}
			return response.InternalServerError(c, "Failed to update activity")
		}
	}
	return response.Success(c, "Activity updated successfully", activity)
}

// Delete removes an activity. Activities with attendance records are
// protected and the delete is rejected.
// @Summary Delete activity
// @Tags Activities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /activities/{id} [delete]
func (h *ActivityHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid activity ID")
	}

	if err := h.activityService.Delete(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			return response.NotFound(c, "Activity not found")
		case errors.Is(err, domain.ErrActivityHasRecords):
			return response.Conflict(c, "Activity has attendance records and cannot be deleted")
		default:
			return response.InternalServerError(c, "Failed to delete activity")
		}
	}
	return response.Success(c, "Activity deleted successfully", nil)
}
