package handlers

import (
	"errors"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/services"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/response"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// DueHandler handles membership due (cotisation) endpoints
type DueHandler struct {
	dueService *services.DueService
}

// NewDueHandler creates a new due handler
func NewDueHandler(dueService *services.DueService) *DueHandler {
	return &DueHandler{dueService: dueService}
}

// List returns all dues
// @Summary List dues
// @Tags Dues
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /dues [get]
func (h *DueHandler) List(c *fiber.Ctx) error {
	dues, err := h.dueService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list dues")
	}
	return listResponse(c, "Dues retrieved successfully", dues)
}

// ListByMember returns one member's dues
// @Summary List dues for a member
// @Tags Dues
// @Produce json
// @Security BearerAuth
// @Param memberId path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /dues/member/{memberId} [get]
func (h *DueHandler) ListByMember(c *fiber.Ctx) error {
	memberID, err := parseID(c, "memberId")
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	dues, err := h.dueService.ListByMember(c.Context(), memberID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to list dues")
	}
	return response.Success(c, "Dues retrieved successfully", dues)
}

// Create creates a due
// @Summary Create due
// @Tags Dues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.PaymentInput true "Due data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /dues [post]
func (h *DueHandler) Create(c *fiber.Ctx) error {
	var input services.PaymentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	due, err := h.dueService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		default:
			if _, ok := domain.AsValidationErrors(err); ok {
				return validationFailed(c, err)
			}
			return response.InternalServerError(c, "Failed to create due")
		}
	}
	return response.Created(c, "Due created successfully", due)
}

// Update fully replaces the mutable fields of a due
// @Summary Update due
// @Tags Dues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Due ID"
// @Param body body services.PaymentInput true "Due data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /dues/{id} [put]
func (h *DueHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid due ID")
	}

	var input services.PaymentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	due, err := h.dueService.Update(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPaymentNotFound):
			return response.NotFound(c, "Due not found")
		case errors.Is(err, domain.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		default:
			if _, ok := domain.AsValidationErrors(err); ok {
				return validationFailed(c, err)
			}
			return response.InternalServerError(c, "Failed to update due")
		}
	}
	return response.Success(c, "Due updated successfully", due)
}

// Delete removes a due
// @Summary Delete due
// @Tags Dues
// @Produce json
// @Security BearerAuth
// @Param id path int true "Due ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /dues/{id} [delete]
func (h *DueHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid due ID")
	}

	if err := h.dueService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			return response.NotFound(c, "Due not found")
		}
		return response.InternalServerError(c, "Failed to delete due")
	}
	return response.Success(c, "Due deleted successfully", nil)
}

// Overview returns the global due statistics
// @Summary Due overview
// @Tags Dues
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /dues/stats/overview [get]
func (h *DueHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.dueService.Overview(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute due overview")
	}
	return response.Success(c, "Due overview computed successfully", overview)
}
