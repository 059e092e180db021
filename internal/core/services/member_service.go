package services

import (
	"context"
	"errors"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/repositories"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"

	"gorm.io/gorm"
)

// MemberService handles member business logic
type MemberService struct {
	memberRepo  repositories.MemberRepository
	accountRepo repositories.AccountRepository
}

// NewMemberService creates a new member service
func NewMemberService(
	memberRepo repositories.MemberRepository,
	accountRepo repositories.AccountRepository,
) *MemberService {
	return &MemberService{
		memberRepo:  memberRepo,
		accountRepo: accountRepo,
	}
}

// MemberInput represents member create/update input (full replace)
type MemberInput struct {
	LastName   string `json:"last_name" validate:"required"`
	FirstName  string `json:"first_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	JoinDate   string `json:"join_date" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=Active Inactive Regular"`
	Address    string `json:"address"`
	Profession string `json:"profession"`
	AccountID  *uint  `json:"account_id"`
}

// toModel validates the non-tag constraints and builds the row
func (s *MemberService) toModel(ctx context.Context, input *MemberInput) (*models.Member, error) {
	ve := &domain.ValidationErrors{}
	joinDate := parseDate("join_date", input.JoinDate, ve)

	if input.AccountID != nil {
		if _, err := s.accountRepo.GetByID(ctx, *input.AccountID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrAccountNotFound
			}
			return nil, err
		}
	}

	if ve.HasErrors() {
		return nil, ve
	}

	return &models.Member{
		LastName:   input.LastName,
		FirstName:  input.FirstName,
		Email:      input.Email,
		Phone:      input.Phone,
		JoinDate:   joinDate,
		Status:     input.Status,
		Address:    input.Address,
		Profession: input.Profession,
		AccountID:  input.AccountID,
	}, nil
}

// Create creates a new member
func (s *MemberService) Create(ctx context.Context, input *MemberInput) (*models.Member, error) {
	member, err := s.toModel(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// GetByID gets a member by ID
func (s *MemberService) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// Update fully replaces the mutable fields of a member
func (s *MemberService) Update(ctx context.Context, id uint, input *MemberInput) (*models.Member, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	member, err := s.toModel(ctx, input)
	if err != nil {
		return nil, err
	}
	member.ID = existing.ID
	member.CreatedAt = existing.CreatedAt

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete deletes a member. Fails with a conflict while dependent attendance,
// contribution, due or social case rows still exist.
func (s *MemberService) Delete(ctx context.Context, id uint) error {
	err := s.memberRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrMemberNotFound
	}
	return err
}

// List lists all members, newest first
func (s *MemberService) List(ctx context.Context) ([]*models.Member, error) {
	return s.memberRepo.List(ctx)
}
