package repositories

import (
	"context"
	"time"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"

	"gorm.io/gorm"
)

// memberRepository implements MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create creates a new member. Email uniqueness is checked inside the same
// transaction as the insert.
func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Member{}).Where("email = ?", member.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicateEmail
		}
		return tx.Create(member).Error
	})
}

// GetByID gets a member by ID
func (r *memberRepository) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByEmail gets a member by email
func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByAccountID gets the member linked to an account, if any
func (r *memberRepository) GetByAccountID(ctx context.Context, accountID uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Update replaces the mutable fields of a member. created_at is never touched.
func (r *memberRepository) Update(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Member{}).
			Where("email = ? AND id <> ?", member.Email, member.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicateEmail
		}
		return tx.Model(member).
			Select("last_name", "first_name", "email", "phone", "join_date",
				"status", "address", "profession", "account_id").
			Updates(map[string]interface{}{
				"last_name":  member.LastName,
				"first_name": member.FirstName,
				"email":      member.Email,
				"phone":      member.Phone,
				"join_date":  member.JoinDate,
				"status":     member.Status,
				"address":    member.Address,
				"profession": member.Profession,
				"account_id": member.AccountID,
			}).Error
	})
}

// Delete hard-deletes a member. Deletion is rejected while attendance,
// contribution, due or social case rows still reference the member.
func (r *memberRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dependents := []interface{}{
			&models.Attendance{},
			&models.Contribution{},
			&models.Due{},
			&models.SocialCase{},
		}
		for _, model := range dependents {
			var count int64
			if err := tx.Model(model).Where("member_id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return domain.ErrMemberHasDependents
			}
		}

		result := tx.Delete(&models.Member{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// List lists members, newest first
func (r *memberRepository) List(ctx context.Context) ([]*models.Member, error) {
	var members []*models.Member
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&members).Error
	return members, err
}

// Exists checks if a member ID resolves
func (r *memberRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsByEmail checks if a member email is taken
func (r *memberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// CountByStatus counts members with the given status
func (r *memberRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountJoinedSince counts members whose join date is on or after the given time
func (r *memberRepository) CountJoinedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Member{}).Where("join_date >= ?", since).Count(&count).Error
	return count, err
}
