package repositories

import (
	"context"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"

	"gorm.io/gorm"
)

// attendanceRepository implements AttendanceRepository interface
type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create creates an attendance record. The (activity, member) pair check and
// the insert run in one transaction; the composite unique index backs it up.
func (r *attendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Attendance{}).
			Where("activity_id = ? AND member_id = ?", attendance.ActivityID, attendance.MemberID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicateAttendance
		}
		return tx.Create(attendance).Error
	})
}

// GetByID gets an attendance record by ID
func (r *attendanceRepository) GetByID(ctx context.Context, id uint) (*models.Attendance, error) {
	var attendance models.Attendance
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Activity").
		Where("id = ?", id).
		First(&attendance).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

// Update replaces the mutable fields of an attendance record. The pair keys
// stay fixed; only status, timestamp and notes can change.
func (r *attendanceRepository) Update(ctx context.Context, attendance *models.Attendance) error {
	return r.db.WithContext(ctx).Model(attendance).
		Select("status", "timestamp", "notes").
		Updates(map[string]interface{}{
			"status":    attendance.Status,
			"timestamp": attendance.Timestamp,
			"notes":     attendance.Notes,
		}).Error
}

// Delete hard-deletes an attendance record
func (r *attendanceRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Attendance{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List lists attendance records, newest first
func (r *attendanceRepository) List(ctx context.Context) ([]*models.Attendance, error) {
	var records []*models.Attendance
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Activity").
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

// ListByActivity lists attendance for one activity, ordered by member name
func (r *attendanceRepository) ListByActivity(ctx context.Context, activityID uint) ([]*models.Attendance, error) {
	var records []*models.Attendance
	err := r.db.WithContext(ctx).
		Joins("JOIN members ON members.id = attendances.member_id").
		Preload("Member").
		Preload("Activity").
		Where("attendances.activity_id = ?", activityID).
		Order("members.last_name, members.first_name").
		Find(&records).Error
	return records, err
}

// ListByMember lists attendance for one member, newest first
func (r *attendanceRepository) ListByMember(ctx context.Context, memberID uint) ([]*models.Attendance, error) {
	var records []*models.Attendance
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Activity").
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

// CountByStatus counts attendance rows with the given status
func (r *attendanceRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Attendance{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// Count counts all attendance rows
func (r *attendanceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Attendance{}).Count(&count).Error
	return count, err
}

// CountForMember returns the total and Present attendance counts of a member
func (r *attendanceRepository) CountForMember(ctx context.Context, memberID uint) (int64, int64, error) {
	var total, present int64
	if err := r.db.WithContext(ctx).Model(&models.Attendance{}).
		Where("member_id = ?", memberID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Attendance{}).
		Where("member_id = ? AND status = ?", memberID, domain.AttendancePresent).
		Count(&present).Error; err != nil {
		return 0, 0, err
	}
	return total, present, nil
}
