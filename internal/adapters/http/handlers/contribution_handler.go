package handlers

import (
	"errors"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/services"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/response"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// ContributionHandler handles contribution endpoints
type ContributionHandler struct {
	contributionService *services.ContributionService
}

// NewContributionHandler creates a new contribution handler
func NewContributionHandler(contributionService *services.ContributionService) *ContributionHandler {
	return &ContributionHandler{contributionService: contributionService}
}

// List returns all contributions
// @Summary List contributions
// @Tags Contributions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /contributions [get]
func (h *ContributionHandler) List(c *fiber.Ctx) error {
	contributions, err := h.contributionService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list contributions")
	}
	return listResponse(c, "Contributions retrieved successfully", contributions)
}

// ListByMember returns one member's contributions
// @Summary List contributions for a member
// @Tags Contributions
// @Produce json
// @Security BearerAuth
// @Param memberId path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contributions/member/{memberId} [get]
func (h *ContributionHandler) ListByMember(c *fiber.Ctx) error {
	memberID, err := parseID(c, "memberId")
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	contributions, err := h.contributionService.ListByMember(c.Context(), memberID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to list contributions")
	}
	return response.Success(c, "Contributions retrieved successfully", contributions)
}

// Create creates a contribution
// @Summary Create contribution
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.PaymentInput true "Contribution data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contributions [post]
func (h *ContributionHandler) Create(c *fiber.Ctx) error {
	var input services.PaymentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	contribution, err := h.contributionService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		default:
			if _, ok := domain.AsValidationErrors(err); ok {
				return validationFailed(c, err)
			}
			return response.InternalServerError(c, "Failed to create contribution")
		}
	}
	return response.Created(c, "Contribution created successfully", contribution)
}

// Update fully replaces the mutable fields of a contribution
// @Summary Update contribution
// @Tags Contributions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contribution ID"
// @Param body body services.PaymentInput true "Contribution data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contributions/{id} [put]
func (h *ContributionHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid contribution ID")
	}

	var input services.PaymentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	contribution, err := h.contributionService.Update(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPaymentNotFound):
			return response.NotFound(c, "Contribution not found")
		case errors.Is(err, domain.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		default:
			if _, ok := domain.AsValidationErrors(err); ok {
				return validationFailed(c, err)
			}
			return response.InternalServerError(c, "Failed to update contribution")
		}
	}
	return response.Success(c, "Contribution updated successfully", contribution)
}

// Delete removes a contribution
// @Summary Delete contribution
// @Tags Contributions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contribution ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contributions/{id} [delete]
func (h *ContributionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid contribution ID")
	}

	if err := h.contributionService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			return response.NotFound(c, "Contribution not found")
		}
		return response.InternalServerError(c, "Failed to delete contribution")
	}
	return response.Success(c, "Contribution deleted successfully", nil)
}

// Overview returns the global contribution statistics
// @Summary Contribution overview
// @Tags Contributions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /contributions/stats/overview [get]
func (h *ContributionHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.contributionService.Overview(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute contribution overview")
	}
	return response.Success(c, "Contribution overview computed successfully", overview)
}
