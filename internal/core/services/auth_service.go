package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/repositories"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/config"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/jwt"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles authentication business logic
type AuthService struct {
	db          *gorm.DB
	accountRepo repositories.AccountRepository
	memberRepo  repositories.MemberRepository
	cfg         *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	db *gorm.DB,
	accountRepo repositories.AccountRepository,
	memberRepo repositories.MemberRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		db:          db,
		accountRepo: accountRepo,
		memberRepo:  memberRepo,
		cfg:         cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	LastName   string `json:"last_name" validate:"required"`
	FirstName  string `json:"first_name" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=admin discipline_officer member"`
	Phone      string `json:"phone"`
	Profession string `json:"profession"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthUser is the identity payload returned by login and verify
type AuthUser struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User  *AuthUser `json:"user"`
	Token string    `json:"token"`
}

// Register creates an account and its linked member profile. Both writes run
// in one transaction: if the member insert fails the account is rolled back,
// never left orphaned.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthUser, error) {
	account := &models.Account{
		Email:    input.Email,
		Role:     input.Role,
		IsActive: true,
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	account.Password = hashed

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Account{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicateEmail
		}
		if err := tx.Model(&models.Member{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicateEmail
		}

		if err := tx.Create(account).Error; err != nil {
			return err
		}

		member := &models.Member{
			LastName:   input.LastName,
			FirstName:  input.FirstName,
			Email:      input.Email,
			Phone:      input.Phone,
			JoinDate:   time.Now(),
			Status:     domain.MemberStatusActive,
			Profession: input.Profession,
			AccountID:  &account.ID,
		}
		return tx.Create(member).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Account registered: %s (%s)", account.Email, account.Role)

	return &AuthUser{
		ID:        account.ID,
		Email:     account.Email,
		Role:      account.Role,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}, nil
}

// Login authenticates an account and issues a signed token. Unknown email,
// wrong password and inactive account all collapse into the same generic
// error so responses leak nothing about which emails exist.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	account, err := s.accountRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, account.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !account.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.accountRepo.UpdateLastLogin(ctx, account.ID, now); err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken(account.ID, account.Email, account.Role,
		s.cfg.JWT.Secret, s.cfg.JWT.ExpiryMinutes)
	if err != nil {
		return nil, err
	}

	user := &AuthUser{
		ID:    account.ID,
		Email: account.Email,
		Role:  account.Role,
	}
	if member, err := s.memberRepo.GetByAccountID(ctx, account.ID); err == nil {
		user.FirstName = member.FirstName
		user.LastName = member.LastName
	}

	return &AuthResponse{User: user, Token: token}, nil
}

// Verify resolves the identity behind a validated token
func (s *AuthService) Verify(ctx context.Context, accountID uint) (*AuthUser, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	user := &AuthUser{
		ID:    account.ID,
		Email: account.Email,
		Role:  account.Role,
	}
	if member, err := s.memberRepo.GetByAccountID(ctx, account.ID); err == nil {
		user.FirstName = member.FirstName
		user.LastName = member.LastName
	}
	return user, nil
}
