package handlers

import (
	"errors"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/services"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/response"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// SocialHandler handles social case and assistance endpoints
type SocialHandler struct {
	socialService *services.SocialService
}

// NewSocialHandler creates a new social handler
func NewSocialHandler(socialService *services.SocialService) *SocialHandler {
	return &SocialHandler{socialService: socialService}
}

func socialCaseResponses(cases []*models.SocialCase) []*models.SocialCaseResponse {
	responses := make([]*models.SocialCaseResponse, 0, len(cases))
	for _, socialCase := range cases {
		responses = append(responses, socialCase.ToResponse())
	}
	return responses
}

// List returns all social cases
// @Summary List social cases
// @Tags SocialCases
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /social-cases [get]
func (h *SocialHandler) List(c *fiber.Ctx) error {
	cases, err := h.socialService.ListCases(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list social cases")
	}
	return listResponse(c, "Social cases retrieved successfully", socialCaseResponses(cases))
}

// ListByMember returns one member's social cases
// @Summary List social cases for a member
// @Tags SocialCases
// @Produce json
// @Security BearerAuth
// @Param memberId path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /social-cases/member/{memberId} [get]
func (h *SocialHandler) ListByMember(c *fiber.Ctx) error {
	memberID, err := parseID(c, "memberId")
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	cases, err := h.socialService.ListCasesByMember(c.Context(), memberID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to list social cases")
	}
	return response.Success(c, "Social cases retrieved successfully", socialCaseResponses(cases))
}

// Get returns one social case
// @Summary Get social case
// @Tags SocialCases
// @Produce json
// @Security BearerAuth
// @Param id path int true "Social case ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /social-cases/{id} [get]
func (h *SocialHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid social case ID")
	}

	socialCase, err := h.socialService.GetCaseByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCaseNotFound) {
			return response.NotFound(c, "Social case not found")
		}
		return response.InternalServerError(c, "Failed to get social case")
	}
	return response.Success(c, "Social case retrieved successfully", socialCase.ToResponse())
}

// Create opens a social case
// @Summary Create social case
// @Tags SocialCases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SocialCaseInput true "Social case data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /social-cases [post]
func (h *SocialHandler) Create(c *fiber.Ctx) error {
	var input services.SocialCaseInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	socialCase, err := h.socialService.CreateCase(c.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to create social case")
	}
	return response.Created(c, "Social case created successfully", socialCase.ToResponse())
}

// Update fully replaces the mutable fields of a social case
// @Summary Update social case
// @Tags SocialCases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Social case ID"
// @Param body body services.SocialCaseInput true "Social case data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /social-cases/{id} [put]
func (h *SocialHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid social case ID")
	}

	var input services.SocialCaseInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	socialCase, err := h.socialService.UpdateCase(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCaseNotFound):
			return response.NotFound(c, "Social case not found")
		case errors.Is(err, domain.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		default:
			return response.InternalServerError(c, "Failed to update social case")
		}
	}
	return response.Success(c, "Social case updated successfully", socialCase.ToResponse())
}

// Delete removes a social case together with its assistances
// @Summary Delete social case
// @Tags SocialCases
// @Produce json
// @Security BearerAuth
// @Param id path int true "Social case ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /social-cases/{id} [delete]
func (h *SocialHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid social case ID")
	}

	if err := h.socialService.DeleteCase(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrCaseNotFound) {
			return response.NotFound(c, "Social case not found")
		}
		return response.InternalServerError(c, "Failed to delete social case")
	}
	return response.Success(c, "Social case deleted successfully", nil)
}

// CreateAssistance records an assistance under a social case
// @Summary Create assistance
// @Tags SocialCases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Social case ID"
// @Param body body services.AssistanceInput true "Assistance data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /social-cases/{id}/assistances [post]
func (h *SocialHandler) CreateAssistance(c *fiber.Ctx) error {
	caseID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid social case ID")
	}

	var input services.AssistanceInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	assistance, err := h.socialService.CreateAssistance(c.Context(), caseID, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCaseNotFound):
			return response.NotFound(c, "Social case not found")
		default:
			if _, ok := domain.AsValidationErrors(err); ok {
				return validationFailed(c, err)
			}
			return response.InternalServerError(c, "Failed to create assistance")
		}
	}
	return response.Created(c, "Assistance created successfully", assistance)
}

// ListAssistances returns the assistances recorded under a social case
// @Summary List assistances
// @Tags SocialCases
// @Produce json
// @Security BearerAuth
// @Param id path int true "Social case ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /social-cases/{id}/assistances [get]
func (h *SocialHandler) ListAssistances(c *fiber.Ctx) error {
	caseID, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid social case ID")
	}

	assistances, err := h.socialService.ListAssistances(c.Context(), caseID)
	if err != nil {
		if errors.Is(err, domain.ErrCaseNotFound) {
			return response.NotFound(c, "Social case not found")
		}
		return response.InternalServerError(c, "Failed to list assistances")
	}
	return response.Success(c, "Assistances retrieved successfully", assistances)
}
