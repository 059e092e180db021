package repositories

import (
	"context"
	"time"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"

	"gorm.io/gorm"
)

// activityRepository implements ActivityRepository interface
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Create creates a new activity
func (r *activityRepository) Create(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// GetByID gets an activity by ID
func (r *activityRepository) GetByID(ctx context.Context, id uint) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&activity).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// Update replaces the mutable fields of an activity
func (r *activityRepository) Update(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Model(activity).
		Select("title", "type", "description", "start_time", "end_time", "location").
		Updates(activity).Error
}

// Delete hard-deletes an activity. Rejected while attendance rows exist.
func (r *activityRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Attendance{}).Where("activity_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrActivityHasRecords
		}

		result := tx.Delete(&models.Activity{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// List lists activities, newest first
func (r *activityRepository) List(ctx context.Context) ([]*models.Activity, error) {
	var activities []*models.Activity
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&activities).Error
	return activities, err
}

// Exists checks if an activity ID resolves
func (r *activityRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Activity{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CountStartedBetween counts activities starting within [from, to)
func (r *activityRepository) CountStartedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Activity{}).
		Where("start_time >= ? AND start_time < ?", from, to).
		Count(&count).Error
	return count, err
}

// CountUpcoming counts activities starting after the given time
func (r *activityRepository) CountUpcoming(ctx context.Context, after time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Activity{}).
		Where("start_time > ?", after).
		Count(&count).Error
	return count, err
}
