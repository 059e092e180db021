package repositories

import (
	"context"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// dueRepository implements DueRepository interface. The dues table mirrors
// contributions, inherited from the original schema.
type dueRepository struct {
	db *gorm.DB
}

// NewDueRepository creates a new due repository
func NewDueRepository(db *gorm.DB) DueRepository {
	return &dueRepository{db: db}
}

func (r *dueRepository) Create(ctx context.Context, due *models.Due) error {
	return r.db.WithContext(ctx).Create(due).Error
}

func (r *dueRepository) GetByID(ctx context.Context, id uint) (*models.Due, error) {
	var due models.Due
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&due).Error
	if err != nil {
		return nil, err
	}
	return &due, nil
}

func (r *dueRepository) Update(ctx context.Context, due *models.Due) error {
	return r.db.WithContext(ctx).Model(due).
		Select("member_id", "type", "amount", "currency", "payment_date",
			"payment_status", "description").
		Updates(due).Error
}

func (r *dueRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Due{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *dueRepository) List(ctx context.Context) ([]*models.Due, error) {
	var dues []*models.Due
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dues).Error
	return dues, err
}

func (r *dueRepository) ListByMember(ctx context.Context, memberID uint) ([]*models.Due, error) {
	var dues []*models.Due
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&dues).Error
	return dues, err
}

func (r *dueRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Due{}).Count(&count).Error
	return count, err
}

func (r *dueRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Due{}).
		Where("payment_status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *dueRepository) SumByStatus(ctx context.Context, status string) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&models.Due{}).
		Where("payment_status = ?", status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *dueRepository) SumByType(ctx context.Context, typ string) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&models.Due{}).
		Where("type = ?", typ).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}
