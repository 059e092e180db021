package handlers

import (
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/services"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles report endpoints
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Members returns the membership report
// @Summary Membership report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /reports/members [get]
func (h *ReportHandler) Members(c *fiber.Ctx) error {
	report, err := h.reportService.Members(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute membership report")
	}
	return response.Success(c, "Membership report computed successfully", report)
}

// Financial returns the financial report
// @Summary Financial report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /reports/financial [get]
func (h *ReportHandler) Financial(c *fiber.Ctx) error {
	report, err := h.reportService.Financial(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute financial report")
	}
	return response.Success(c, "Financial report computed successfully", report)
}

// Activities returns the activities report
// @Summary Activities report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /reports/activities [get]
func (h *ReportHandler) Activities(c *fiber.Ctx) error {
	report, err := h.reportService.Activities(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute activities report")
	}
	return response.Success(c, "Activities report computed successfully", report)
}

// SocialCases returns the social cases report
// @Summary Social cases report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /reports/social-cases [get]
func (h *ReportHandler) SocialCases(c *fiber.Ctx) error {
	report, err := h.reportService.SocialCases(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute social cases report")
	}
	return response.Success(c, "Social cases report computed successfully", report)
}
