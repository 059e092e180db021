package handlers

import (
	"errors"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/services"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/response"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles account administration endpoints (admin only)
type AccountHandler struct {
	accountService *services.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// List returns all accounts
// @Summary List accounts
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	accounts, err := h.accountService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list accounts")
	}
	return listResponse(c, "Accounts retrieved successfully", accounts)
}

// Get returns one account
// @Summary Get account
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /accounts/{id} [get]
func (h *AccountHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid account ID")
	}

	account, err := h.accountService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return response.NotFound(c, "Account not found")
		}
		return response.InternalServerError(c, "Failed to get account")
	}
	return response.Success(c, "Account retrieved successfully", account)
}

// UpdateRole changes an account's role
// @Summary Change account role
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Param body body services.UpdateRoleInput true "Role data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /accounts/{id}/role [put]
func (h *AccountHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid account ID")
	}

	var input services.UpdateRoleInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	account, err := h.accountService.UpdateRole(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return response.NotFound(c, "Account not found")
		}
		return response.InternalServerError(c, "Failed to update account role")
	}
	return response.Success(c, "Account role updated successfully", account)
}

// Activate re-enables a deactivated account
// @Summary Activate account
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /accounts/{id}/activate [put]
func (h *AccountHandler) Activate(c *fiber.Ctx) error {
	return h.setActive(c, true, "Account activated successfully")
}

// Deactivate disables an account without deleting its data
// @Summary Deactivate account
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /accounts/{id}/deactivate [put]
func (h *AccountHandler) Deactivate(c *fiber.Ctx) error {
	return h.setActive(c, false, "Account deactivated successfully")
}

func (h *AccountHandler) setActive(c *fiber.Ctx, active bool, message string) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid account ID")
	}

	account, err := h.accountService.SetActive(c.Context(), id, active)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return response.NotFound(c, "Account not found")
		}
		return response.InternalServerError(c, "Failed to update account")
	}
	return response.Success(c, message, account)
}

// ResetPassword replaces an account's password
// @Summary Reset account password
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Param body body services.ResetPasswordInput true "New password"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /accounts/{id}/password [put]
func (h *AccountHandler) ResetPassword(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid account ID")
	}

	var input services.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	if err := h.accountService.ResetPassword(c.Context(), id, input); err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return response.NotFound(c, "Account not found")
		default:
			if _, ok := domain.AsValidationErrors(err); ok {
				return validationFailed(c, err)
			}
			return response.InternalServerError(c, "Failed to reset password")
		}
	}
	return response.Success(c, "Password reset successfully", nil)
}

// Delete removes an account
// @Summary Delete account
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /accounts/{id} [delete]
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid account ID")
	}

	if err := h.accountService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return response.NotFound(c, "Account not found")
		}
		return response.InternalServerError(c, "Failed to delete account")
	}
	return response.Success(c, "Account deleted successfully", nil)
}
