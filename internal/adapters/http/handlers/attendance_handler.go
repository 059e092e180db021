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

// AttendanceHandler handles attendance endpoints
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

func attendanceResponses(records []*models.Attendance) []*models.AttendanceResponse {
	responses := make([]*models.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, record.ToResponse())
	}
	return responses
}

// List returns all attendance records
// @Summary List attendance records
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /attendance [get]
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	records, err := h.attendanceService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list attendance records")
	}
	return listResponse(c, "Attendance records retrieved successfully", attendanceResponses(records))
}

// ListByActivity returns the attendance sheet of one activity,
// ordered by member name
// @Summary List attendance for an activity
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param activityId path int true "Activity ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /attendance/activity/{activityId} [get]
func (h *AttendanceHandler) ListByActivity(c *fiber.Ctx) error {
	activityID, err := parseID(c, "activityId")
	if err != nil {
		return response.BadRequest(c, "Invalid activity ID")
	}

	records, err := h.attendanceService.ListByActivity(c.Context(), activityID)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			return response.NotFound(c, "Activity not found")
		}
		return response.InternalServerError(c, "Failed to list attendance records")
	}
	return response.Success(c, "Attendance records retrieved successfully", attendanceResponses(records))
}

// ListByMember returns one member's attendance history
// @Summary List attendance for a member
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param memberId path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /attendance/member/{memberId} [get]
func (h *AttendanceHandler) ListByMember(c *fiber.Ctx) error {
	memberID, err := parseID(c, "memberId")
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	records, err := h.attendanceService.ListByMember(c.Context(), memberID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to list attendance records")
	}

	rate, err := h.attendanceService.MemberParticipationRate(c.Context(), memberID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list attendance records")
	}

	return response.Success(c, "Attendance records retrieved successfully", fiber.Map{
		"records":           attendanceResponses(records),
		"participationRate": rate,
	})
}

// Create records attendance
// @Summary Record attendance
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.AttendanceInput true "Attendance data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /attendance [post]
func (h *AttendanceHandler) Create(c *fiber.Ctx) error {
	var input services.AttendanceInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	record, err := h.attendanceService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			return response.NotFound(c, "Activity not found")
		case errors.Is(err, domain.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, domain.ErrDuplicateAttendance):
			return response.Conflict(c, "Attendance already recorded for this member and activity")
		default:
			if _, ok := domain.AsValidationErrors(err); ok {
				return validationFailed(c, err)
			}
			return response.InternalServerError(c, "Failed to record attendance")
		}
	}
	return response.Created(c, "Attendance recorded successfully", record.ToResponse())
}

// Update replaces the status, timestamp and notes of an attendance record
// @Summary Update attendance
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance ID"
// @Param body body services.AttendanceUpdateInput true "Attendance data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /attendance/{id} [put]
func (h *AttendanceHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid attendance ID")
	}

	var input services.AttendanceUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return validationFailed(c, err)
	}

	record, err := h.attendanceService.Update(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAttendanceNotFound):
			return response.NotFound(c, "Attendance record not found")
		default:
			if _, ok := domain.AsValidationErrors(err); ok {
				return validationFailed(c, err)
			}
			return response.InternalServerError(c, "Failed to update attendance")
		}
	}
	return response.Success(c, "Attendance updated successfully", record.ToResponse())
}

// Delete removes an attendance record
// @Summary Delete attendance
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /attendance/{id} [delete]
func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid attendance ID")
	}

	if err := h.attendanceService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrAttendanceNotFound) {
			return response.NotFound(c, "Attendance record not found")
		}
		return response.InternalServerError(c, "Failed to delete attendance")
	}
	return response.Success(c, "Attendance deleted successfully", nil)
}

// Overview returns the global attendance statistics
// @Summary Attendance overview
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /attendance/stats/overview [get]
func (h *AttendanceHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.attendanceService.Overview(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute attendance overview")
	}
	return response.Success(c, "Attendance overview computed successfully", overview)
}
