package services

import (
	"context"
	"errors"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/repositories"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"

	"gorm.io/gorm"
)

// DueService handles due (cotisation) business logic. Dues share the
// PaymentInput/PaymentOverview shapes with contributions but stay a separate
// entity, matching the inherited two-table schema.
type DueService struct {
	dueRepo    repositories.DueRepository
	memberRepo repositories.MemberRepository
}

// NewDueService creates a new due service
func NewDueService(
	dueRepo repositories.DueRepository,
	memberRepo repositories.MemberRepository,
) *DueService {
	return &DueService{
		dueRepo:    dueRepo,
		memberRepo: memberRepo,
	}
}

func (s *DueService) toModel(ctx context.Context, input *PaymentInput) (*models.Due, error) {
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

	return &models.Due{
		MemberID:      input.MemberID,
		Type:          input.Type,
		Amount:        input.Amount,
		Currency:      input.Currency,
		PaymentDate:   paymentDate,
		PaymentStatus: input.PaymentStatus,
		Description:   input.Description,
	}, nil
}

// Create creates a new due
func (s *DueService) Create(ctx context.Context, input *PaymentInput) (*models.Due, error) {
	due, err := s.toModel(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.dueRepo.Create(ctx, due); err != nil {
		return nil, err
	}
	return due, nil
}

// GetByID gets a due by ID
func (s *DueService) GetByID(ctx context.Context, id uint) (*models.Due, error) {
	due, err := s.dueRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return due, nil
}

// Update fully replaces the mutable fields of a due
func (s *DueService) Update(ctx context.Context, id uint, input *PaymentInput) (*models.Due, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	due, err := s.toModel(ctx, input)
	if err != nil {
		return nil, err
	}
	due.ID = existing.ID
	due.CreatedAt = existing.CreatedAt

	if err := s.dueRepo.Update(ctx, due); err != nil {
		return nil, err
	}
	return due, nil
}

// Delete deletes a due
func (s *DueService) Delete(ctx context.Context, id uint) error {
	err := s.dueRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrPaymentNotFound
	}
	return err
}

// List lists all dues, newest first
func (s *DueService) List(ctx context.Context) ([]*models.Due, error) {
	return s.dueRepo.List(ctx)
}

// ListByMember lists one member's dues, newest first
func (s *DueService) ListByMember(ctx context.Context, memberID uint) ([]*models.Due, error) {
	if exists, err := s.memberRepo.Exists(ctx, memberID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrMemberNotFound
	}
	return s.dueRepo.ListByMember(ctx, memberID)
}

// Overview recomputes the due statistics from the current rows
func (s *DueService) Overview(ctx context.Context) (*PaymentOverview, error) {
	overview := &PaymentOverview{}
	var err error

	if overview.Total, err = s.dueRepo.Count(ctx); err != nil {
		return nil, err
	}
	if overview.Paid, err = s.dueRepo.CountByStatus(ctx, domain.PaymentStatusPaid); err != nil {
		return nil, err
	}
	if overview.Pending, err = s.dueRepo.CountByStatus(ctx, domain.PaymentStatusPending); err != nil {
		return nil, err
	}
	if overview.Late, err = s.dueRepo.CountByStatus(ctx, domain.PaymentStatusLate); err != nil {
		return nil, err
	}
	if overview.TotalAmount, err = s.dueRepo.SumByStatus(ctx, domain.PaymentStatusPaid); err != nil {
		return nil, err
	}

	for _, typ := range domain.ValidPaymentTypes {
		amount, err := s.dueRepo.SumByType(ctx, typ)
		if err != nil {
			return nil, err
		}
		overview.ByType = append(overview.ByType, TypeAmountEntry{Type: typ, Amount: amount})
	}

	return overview, nil
}
