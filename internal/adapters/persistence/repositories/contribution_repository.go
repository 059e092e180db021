package repositories

import (
	"context"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// contributionRepository implements ContributionRepository interface
type contributionRepository struct {
	db *gorm.DB
}

// NewContributionRepository creates a new contribution repository
func NewContributionRepository(db *gorm.DB) ContributionRepository {
	return &contributionRepository{db: db}
}

// Create creates a new contribution
func (r *contributionRepository) Create(ctx context.Context, contribution *models.Contribution) error {
	return r.db.WithContext(ctx).Create(contribution).Error
}

// GetByID gets a contribution by ID
func (r *contributionRepository) GetByID(ctx context.Context, id uint) (*models.Contribution, error) {
	var contribution models.Contribution
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&contribution).Error
	if err != nil {
		return nil, err
	}
	return &contribution, nil
}

// Update replaces the mutable fields of a contribution
func (r *contributionRepository) Update(ctx context.Context, contribution *models.Contribution) error {
	return r.db.WithContext(ctx).Model(contribution).
		Select("member_id", "type", "amount", "currency", "payment_date",
			"payment_status", "description").
		Updates(contribution).Error
}

// Delete hard-deletes a contribution
func (r *contributionRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Contribution{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List lists contributions, newest first
func (r *contributionRepository) List(ctx context.Context) ([]*models.Contribution, error) {
	var contributions []*models.Contribution
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&contributions).Error
	return contributions, err
}

// ListByMember lists contributions of one member, newest first
func (r *contributionRepository) ListByMember(ctx context.Context, memberID uint) ([]*models.Contribution, error) {
	var contributions []*models.Contribution
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&contributions).Error
	return contributions, err
}

// Count counts all contributions
func (r *contributionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Contribution{}).Count(&count).Error
	return count, err
}

// CountByStatus counts contributions with the given payment status
func (r *contributionRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Contribution{}).
		Where("payment_status = ?", status).
		Count(&count).Error
	return count, err
}

// SumByStatus sums amounts of contributions with the given payment status
func (r *contributionRepository) SumByStatus(ctx context.Context, status string) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&models.Contribution{}).
		Where("payment_status = ?", status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

// SumByType sums amounts of contributions with the given type
func (r *contributionRepository) SumByType(ctx context.Context, typ string) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&models.Contribution{}).
		Where("type = ?", typ).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}
