package services

import (
	"context"
	"errors"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/repositories"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"

	"gorm.io/gorm"
)

// AttendanceService handles attendance business logic
type AttendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	activityRepo   repositories.ActivityRepository
	memberRepo     repositories.MemberRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	attendanceRepo repositories.AttendanceRepository,
	activityRepo repositories.ActivityRepository,
	memberRepo repositories.MemberRepository,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		activityRepo:   activityRepo,
		memberRepo:     memberRepo,
	}
}

// AttendanceInput represents attendance create input
type AttendanceInput struct {
	ActivityID uint   `json:"activity_id" validate:"required"`
	MemberID   uint   `json:"member_id" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=Present Absent Late"`
	Timestamp  string `json:"timestamp" validate:"required"`
	Notes      string `json:"notes"`
}

// AttendanceUpdateInput represents attendance update input; the
// (activity, member) pair of an existing row never changes.
type AttendanceUpdateInput struct {
	Status    string `json:"status" validate:"required,oneof=Present Absent Late"`
	Timestamp string `json:"timestamp" validate:"required"`
	Notes     string `json:"notes"`
}

// AttendanceOverview is the stats payload for /attendance/stats/overview
type AttendanceOverview struct {
	Total             int64 `json:"total"`
	Present           int64 `json:"present"`
	Absent            int64 `json:"absent"`
	Late              int64 `json:"late"`
	ParticipationRate int   `json:"participationRate"`
}

// Create records attendance for a member at an activity. Both foreign keys
// must resolve, and at most one row may exist per (activity, member) pair.
func (s *AttendanceService) Create(ctx context.Context, input *AttendanceInput) (*models.Attendance, error) {
	ve := &domain.ValidationErrors{}
	timestamp := parseDateTime("timestamp", input.Timestamp, ve)
	if ve.HasErrors() {
		return nil, ve
	}

	if exists, err := s.activityRepo.Exists(ctx, input.ActivityID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrActivityNotFound
	}
	if exists, err := s.memberRepo.Exists(ctx, input.MemberID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrMemberNotFound
	}

	attendance := &models.Attendance{
		ActivityID: input.ActivityID,
		MemberID:   input.MemberID,
		Status:     input.Status,
		Timestamp:  timestamp,
		Notes:      input.Notes,
	}

	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

// GetByID gets an attendance record by ID
func (s *AttendanceService) GetByID(ctx context.Context, id uint) (*models.Attendance, error) {
	attendance, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, err
	}
	return attendance, nil
}

// Update replaces the status, timestamp and notes of an attendance record
func (s *AttendanceService) Update(ctx context.Context, id uint, input *AttendanceUpdateInput) (*models.Attendance, error) {
	ve := &domain.ValidationErrors{}
	timestamp := parseDateTime("timestamp", input.Timestamp, ve)
	if ve.HasErrors() {
		return nil, ve
	}

	attendance, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attendance.Status = input.Status
	attendance.Timestamp = timestamp
	attendance.Notes = input.Notes

	if err := s.attendanceRepo.Update(ctx, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

// Delete deletes an attendance record
func (s *AttendanceService) Delete(ctx context.Context, id uint) error {
	err := s.attendanceRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrAttendanceNotFound
	}
	return err
}

// List lists all attendance records, newest first
func (s *AttendanceService) List(ctx context.Context) ([]*models.Attendance, error) {
	return s.attendanceRepo.List(ctx)
}

// ListByActivity lists attendance for one activity, ordered by member name
func (s *AttendanceService) ListByActivity(ctx context.Context, activityID uint) ([]*models.Attendance, error) {
	if exists, err := s.activityRepo.Exists(ctx, activityID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrActivityNotFound
	}
	return s.attendanceRepo.ListByActivity(ctx, activityID)
}

// ListByMember lists attendance for one member, newest first
func (s *AttendanceService) ListByMember(ctx context.Context, memberID uint) ([]*models.Attendance, error) {
	if exists, err := s.memberRepo.Exists(ctx, memberID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrMemberNotFound
	}
	return s.attendanceRepo.ListByMember(ctx, memberID)
}

// Overview recomputes the global attendance statistics from the current rows
func (s *AttendanceService) Overview(ctx context.Context) (*AttendanceOverview, error) {
	total, err := s.attendanceRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	present, err := s.attendanceRepo.CountByStatus(ctx, domain.AttendancePresent)
	if err != nil {
		return nil, err
	}
	absent, err := s.attendanceRepo.CountByStatus(ctx, domain.AttendanceAbsent)
	if err != nil {
		return nil, err
	}
	late, err := s.attendanceRepo.CountByStatus(ctx, domain.AttendanceLate)
	if err != nil {
		return nil, err
	}

	return &AttendanceOverview{
		Total:             total,
		Present:           present,
		Absent:            absent,
		Late:              late,
		ParticipationRate: participationRate(present, total),
	}, nil
}

// MemberParticipationRate returns a member's participation percentage
func (s *AttendanceService) MemberParticipationRate(ctx context.Context, memberID uint) (int, error) {
	total, present, err := s.attendanceRepo.CountForMember(ctx, memberID)
	if err != nil {
		return 0, err
	}
	return participationRate(present, total), nil
}
