package repositories

import (
	"context"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// socialCaseRepository implements SocialCaseRepository interface
type socialCaseRepository struct {
	db *gorm.DB
}

// NewSocialCaseRepository creates a new social case repository
func NewSocialCaseRepository(db *gorm.DB) SocialCaseRepository {
	return &socialCaseRepository{db: db}
}

// Create creates a new social case
func (r *socialCaseRepository) Create(ctx context.Context, socialCase *models.SocialCase) error {
	return r.db.WithContext(ctx).Create(socialCase).Error
}

// GetByID gets a social case by ID with its member
func (r *socialCaseRepository) GetByID(ctx context.Context, id uint) (*models.SocialCase, error) {
	var socialCase models.SocialCase
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("id = ?", id).
		First(&socialCase).Error
	if err != nil {
		return nil, err
	}
	return &socialCase, nil
}

// Update replaces the mutable fields of a social case
func (r *socialCaseRepository) Update(ctx context.Context, socialCase *models.SocialCase) error {
	return r.db.WithContext(ctx).Model(socialCase).
		Select("member_id", "type", "description", "status").
		Updates(socialCase).Error
}

// Delete hard-deletes a social case and cascades to its assistances,
// both inside one transaction.
func (r *socialCaseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("case_id = ?", id).Delete(&models.Assistance{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.SocialCase{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// List lists social cases, newest first
func (r *socialCaseRepository) List(ctx context.Context) ([]*models.SocialCase, error) {
	var cases []*models.SocialCase
	err := r.db.WithContext(ctx).
		Preload("Member").
		Order("created_at DESC").
		Find(&cases).Error
	return cases, err
}

// ListByMember lists social cases of one member, newest first
func (r *socialCaseRepository) ListByMember(ctx context.Context, memberID uint) ([]*models.SocialCase, error) {
	var cases []*models.SocialCase
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&cases).Error
	return cases, err
}

// Exists checks if a social case ID resolves
func (r *socialCaseRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SocialCase{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CountByStatus counts social cases with the given status
func (r *socialCaseRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SocialCase{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CreateAssistance creates an assistance row against an existing case
func (r *socialCaseRepository) CreateAssistance(ctx context.Context, assistance *models.Assistance) error {
	return r.db.WithContext(ctx).Create(assistance).Error
}

// GetAssistanceByID gets an assistance by ID
func (r *socialCaseRepository) GetAssistanceByID(ctx context.Context, id uint) (*models.Assistance, error) {
	var assistance models.Assistance
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&assistance).Error
	if err != nil {
		return nil, err
	}
	return &assistance, nil
}

// ListAssistancesByCase lists assistances of one case, newest first
func (r *socialCaseRepository) ListAssistancesByCase(ctx context.Context, caseID uint) ([]*models.Assistance, error) {
	var assistances []*models.Assistance
	err := r.db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("created_at DESC").
		Find(&assistances).Error
	return assistances, err
}

// SumAssistancesByStatus sums assistance amounts with the given status
func (r *socialCaseRepository) SumAssistancesByStatus(ctx context.Context, status string) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&models.Assistance{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}
