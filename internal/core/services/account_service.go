package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/repositories"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/password"

	"gorm.io/gorm"
)

// AccountService handles account administration (role changes, activation,
// password resets). Registration and login live in AuthService.
type AccountService struct {
	accountRepo repositories.AccountRepository
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo repositories.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// UpdateRoleInput is the request body for changing an account role
type UpdateRoleInput struct {
	Role string `json:"role" validate:"required,oneof=admin discipline_officer member"`
}

// ResetPasswordInput is the request body for an admin password reset
type ResetPasswordInput struct {
	Password string `json:"password" validate:"required"`
}

// List returns all accounts
func (s *AccountService) List(ctx context.Context) ([]*models.AccountResponse, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, account.ToResponse())
	}
	return responses, nil
}

// GetByID returns one account
func (s *AccountService) GetByID(ctx context.Context, id uint) (*models.AccountResponse, error) {
	account, err := s.getAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	return account.ToResponse(), nil
}

// UpdateRole changes an account's role
func (s *AccountService) UpdateRole(ctx context.Context, id uint, input UpdateRoleInput) (*models.AccountResponse, error) {
	account, err := s.getAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	account.Role = input.Role
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account.ToResponse(), nil
}

// SetActive activates or deactivates an account. A deactivated account
// keeps its data but can no longer log in.
func (s *AccountService) SetActive(ctx context.Context, id uint, active bool) (*models.AccountResponse, error) {
	account, err := s.getAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	account.IsActive = active
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account.ToResponse(), nil
}

// ResetPassword replaces an account's password
func (s *AccountService) ResetPassword(ctx context.Context, id uint, input ResetPasswordInput) error {
	if !password.ValidatePassword(input.Password) {
		ve := &domain.ValidationErrors{}
		ve.Add("password", fmt.Sprintf("password must be at least %d characters", password.MinLength))
		return ve
	}

	account, err := s.getAccount(ctx, id)
	if err != nil {
		return err
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return err
	}
	account.Password = hashed
	return s.accountRepo.Update(ctx, account)
}

// Delete removes an account. The linked member row survives with a nil
// account reference.
func (s *AccountService) Delete(ctx context.Context, id uint) error {
	err := s.accountRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrAccountNotFound
	}
	return err
}

func (s *AccountService) getAccount(ctx context.Context, id uint) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}
