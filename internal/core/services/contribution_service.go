package services

import (
	"context"
	"errors"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/repositories"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"

	"gorm.io/gorm"
)

// PaymentInput is the create/update input shared by contributions and dues
type PaymentInput struct {
	MemberID      uint    `json:"member_id" validate:"required"`
	Type          string  `json:"type" validate:"required,oneof=Weekly Special Annual"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	Currency      string  `json:"currency" validate:"required,oneof=USD CDF"`
	PaymentDate   string  `json:"payment_date" validate:"required"`
	PaymentStatus string  `json:"payment_status" validate:"required,oneof=Paid Late Pending"`
	Description   string  `json:"description"`
}

// PaymentOverview is the stats payload for the contribution/due overviews
type PaymentOverview struct {
	Total       int64             `json:"total"`
	TotalAmount float64           `json:"totalAmount"`
	Paid        int64             `json:"paid"`
	Pending     int64             `json:"pending"`
	Late        int64             `json:"late"`
	ByType      []TypeAmountEntry `json:"byType"`
}

// TypeAmountEntry is one type bucket of a payment overview
type TypeAmountEntry struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// ContributionService handles contribution business logic
type ContributionService struct {
	contributionRepo repositories.ContributionRepository
	memberRepo       repositories.MemberRepository
}

// NewContributionService creates a new contribution service
func NewContributionService(
	contributionRepo repositories.ContributionRepository,
	memberRepo repositories.MemberRepository,
) *ContributionService {
	return &ContributionService{
		contributionRepo: contributionRepo,
		memberRepo:       memberRepo,
	}
}

func (s *ContributionService) toModel(ctx context.Context, input *PaymentInput) (*models.Contribution, error) {
	ve := &domain.ValidationErrors{}
	paymentDate := parseDate("payment_date", input.PaymentDate, ve)
	if ve.HasErrors() {
		return nil, ve
	}

	if exists, err := s.memberRepo.Exists(ctx, input.MemberID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrMemberNotFound
	}

	return &models.Contribution{
		MemberID:      input.MemberID,
		Type:          input.Type,
		Amount:        input.Amount,
		Currency:      input.Currency,
		PaymentDate:   paymentDate,
		PaymentStatus: input.PaymentStatus,
		Description:   input.Description,
	}, nil
}

// Create creates a new contribution
func (s *ContributionService) Create(ctx context.Context, input *PaymentInput) (*models.Contribution, error) {
	contribution, err := s.toModel(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.contributionRepo.Create(ctx, contribution); err != nil {
		return nil, err
	}
	return contribution, nil
}

// GetByID gets a contribution by ID
func (s *ContributionService) GetByID(ctx context.Context, id uint) (*models.Contribution, error) {
	contribution, err := s.contributionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return contribution, nil
}

// Update fully replaces the mutable fields of a contribution
func (s *ContributionService) Update(ctx context.Context, id uint, input *PaymentInput) (*models.Contribution, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contribution, err := s.toModel(ctx, input)
	if err != nil {
		return nil, err
	}
	contribution.ID = existing.ID
	contribution.CreatedAt = existing.CreatedAt

	if err := s.contributionRepo.Update(ctx, contribution); err != nil {
		return nil, err
	}
	return contribution, nil
}

// Delete deletes a contribution
func (s *ContributionService) Delete(ctx context.Context, id uint) error {
	err := s.contributionRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrPaymentNotFound
	}
	return err
}

// List lists all contributions, newest first
func (s *ContributionService) List(ctx context.Context) ([]*models.Contribution, error) {
	return s.contributionRepo.List(ctx)
}

// ListByMember lists one member's contributions, newest first
func (s *ContributionService) ListByMember(ctx context.Context, memberID uint) ([]*models.Contribution, error) {
	if exists, err := s.memberRepo.Exists(ctx, memberID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrMemberNotFound
	}
	return s.contributionRepo.ListByMember(ctx, memberID)
}

// Overview recomputes the contribution statistics from the current rows
func (s *ContributionService) Overview(ctx context.Context) (*PaymentOverview, error) {
	overview := &PaymentOverview{}
	var err error

	if overview.Total, err = s.contributionRepo.Count(ctx); err != nil {
		return nil, err
	}
	if overview.Paid, err = s.contributionRepo.CountByStatus(ctx, domain.PaymentStatusPaid); err != nil {
		return nil, err
	}
	if overview.Pending, err = s.contributionRepo.CountByStatus(ctx, domain.PaymentStatusPending); err != nil {
		return nil, err
	}
	if overview.Late, err = s.contributionRepo.CountByStatus(ctx, domain.PaymentStatusLate); err != nil {
		return nil, err
	}
	if overview.TotalAmount, err = s.contributionRepo.SumByStatus(ctx, domain.PaymentStatusPaid); err != nil {
		return nil, err
	}

	for _, typ := range domain.ValidPaymentTypes {
		amount, err := s.contributionRepo.SumByType(ctx, typ)
		if err != nil {
			return nil, err
		}
		overview.ByType = append(overview.ByType, TypeAmountEntry{Type: typ, Amount: amount})
	}

	return overview, nil
}
