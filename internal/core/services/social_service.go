package services

import (
	"context"
	"errors"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/repositories"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"

	"gorm.io/gorm"
)

// SocialService handles social case and assistance business logic
type SocialService struct {
	socialRepo repositories.SocialCaseRepository
	memberRepo repositories.MemberRepository
}

// NewSocialService creates a new social service
func NewSocialService(
	socialRepo repositories.SocialCaseRepository,
	memberRepo repositories.MemberRepository,
) *SocialService {
	return &SocialService{
		socialRepo: socialRepo,
		memberRepo: memberRepo,
	}
}

// SocialCaseInput represents social case create/update input.
// Status only needs to be one of the declared values; the workflow graph is
// not enforced on updates, matching the original behavior.
type SocialCaseInput struct {
	MemberID    uint   `json:"member_id" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=Illness Death Accident Marriage Birth Other"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"required,oneof=Open InProgress Resolved Closed"`
}

// AssistanceInput represents assistance create input
type AssistanceInput struct {
	Amount         float64 `json:"amount" validate:"gte=0"`
	Type           string  `json:"type" validate:"required,oneof=Financial Material Medical Other"`
	Description    string  `json:"description"`
	AssistanceDate string  `json:"assistance_date" validate:"required"`
	Status         string  `json:"status" validate:"required,oneof=Pending Approved Rejected Disbursed"`
}

// CreateCase creates a new social case
func (s *SocialService) CreateCase(ctx context.Context, input *SocialCaseInput) (*models.SocialCase, error) {
	if exists, err := s.memberRepo.Exists(ctx, input.MemberID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrMemberNotFound
	}

	socialCase := &models.SocialCase{
		MemberID:    input.MemberID,
		Type:        input.Type,
		Description: input.Description,
		Status:      input.Status,
	}

	if err := s.socialRepo.Create(ctx, socialCase); err != nil {
		return nil, err
	}
	return socialCase, nil
}

// GetCaseByID gets a social case by ID
func (s *SocialService) GetCaseByID(ctx context.Context, id uint) (*models.SocialCase, error) {
	socialCase, err := s.socialRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCaseNotFound
		}
		return nil, err
	}
	return socialCase, nil
}

// UpdateCase fully replaces the mutable fields of a social case
func (s *SocialService) UpdateCase(ctx context.Context, id uint, input *SocialCaseInput) (*models.SocialCase, error) {
	existing, err := s.GetCaseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if exists, err := s.memberRepo.Exists(ctx, input.MemberID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrMemberNotFound
	}

	socialCase := &models.SocialCase{
		ID:          existing.ID,
		MemberID:    input.MemberID,
		Type:        input.Type,
		Description: input.Description,
		Status:      input.Status,
		CreatedAt:   existing.CreatedAt,
	}

	if err := s.socialRepo.Update(ctx, socialCase); err != nil {
		return nil, err
	}
	return socialCase, nil
}

// DeleteCase deletes a social case together with all its assistances
func (s *SocialService) DeleteCase(ctx context.Context, id uint) error {
	err := s.socialRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrCaseNotFound
	}
	return err
}

// ListCases lists all social cases, newest first
func (s *SocialService) ListCases(ctx context.Context) ([]*models.SocialCase, error) {
	return s.socialRepo.List(ctx)
}

// ListCasesByMember lists one member's social cases, newest first
func (s *SocialService) ListCasesByMember(ctx context.Context, memberID uint) ([]*models.SocialCase, error) {
	if exists, err := s.memberRepo.Exists(ctx, memberID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrMemberNotFound
	}
	return s.socialRepo.ListByMember(ctx, memberID)
}

// CreateAssistance records an assistance against an existing case
func (s *SocialService) CreateAssistance(ctx context.Context, caseID uint, input *AssistanceInput) (*models.Assistance, error) {
	ve := &domain.ValidationErrors{}
	assistanceDate := parseDate("assistance_date", input.AssistanceDate, ve)
	if ve.HasErrors() {
		return nil, ve
	}

	if exists, err := s.socialRepo.Exists(ctx, caseID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrCaseNotFound
	}

	assistance := &models.Assistance{
		CaseID:         caseID,
		Amount:         input.Amount,
		Type:           input.Type,
		Description:    input.Description,
		AssistanceDate: assistanceDate,
		Status:         input.Status,
	}

	if err := s.socialRepo.CreateAssistance(ctx, assistance); err != nil {
		return nil, err
	}
	return assistance, nil
}

// ListAssistances lists the assistances of one case, newest first
func (s *SocialService) ListAssistances(ctx context.Context, caseID uint) ([]*models.Assistance, error) {
	if exists, err := s.socialRepo.Exists(ctx, caseID); err != nil {
		return nil, err
	} else if !exists {
		return nil, domain.ErrCaseNotFound
	}
	return s.socialRepo.ListAssistancesByCase(ctx, caseID)
}
