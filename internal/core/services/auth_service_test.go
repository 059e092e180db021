package services

import (
	"context"
	"errors"
	"testing"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/repositories"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/pkg/jwt"

	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	accountRepo := repositories.NewAccountRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	return NewAuthService(db, accountRepo, memberRepo, testConfig()), db
}

func registerInput(email string) *RegisterInput {
	return &RegisterInput{
		Email:     email,
		Password:  "secret-password",
		LastName:  "Kanyinda",
		FirstName: "Jean",
		Role:      "member",
	}
}

func TestRegisterCreatesAccountAndMember(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerInput("jean@ljmdi.org"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 {
		t.Error("registered user has no ID")
	}
	if user.FirstName != "Jean" || user.LastName != "Kanyinda" {
		t.Errorf("user names = %q %q", user.FirstName, user.LastName)
	}

	var member models.Member
	if err := db.Where("email = ?", "jean@ljmdi.org").First(&member).Error; err != nil {
		t.Fatalf("member row missing: %v", err)
	}
	if member.AccountID == nil || *member.AccountID != user.ID {
		t.Error("member not linked to the new account")
	}
	if member.Status != domain.MemberStatusActive {
		t.Errorf("new member status = %q, want Active", member.Status)
	}

	var account models.Account
	if err := db.First(&account, user.ID).Error; err != nil {
		t.Fatalf("account row missing: %v", err)
	}
	if account.Password == "secret-password" {
		t.Error("password stored as plaintext")
	}
}

func TestRegisterDuplicateEmailLeavesNoOrphan(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerInput("jean@ljmdi.org")); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(ctx, registerInput("jean@ljmdi.org")); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("second Register = %v, want ErrDuplicateEmail", err)
	}

	var accounts, members int64
	db.Model(&models.Account{}).Count(&accounts)
	db.Model(&models.Member{}).Count(&members)
	if accounts != 1 || members != 1 {
		t.Errorf("got %d accounts and %d members, want 1 and 1", accounts, members)
	}
}

func TestRegisterRejectsExistingMemberEmail(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	// A member created directly (no account) already owns the email
	member := &models.Member{
		LastName: "Mbuyi", FirstName: "Paul",
		Email: "paul@ljmdi.org", Status: domain.MemberStatusActive,
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("seed member: %v", err)
	}

	if _, err := svc.Register(ctx, registerInput("paul@ljmdi.org")); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Errorf("Register over member email = %v, want ErrDuplicateEmail", err)
	}

	var accounts int64
	db.Model(&models.Account{}).Count(&accounts)
	if accounts != 0 {
		t.Errorf("orphan account created: %d", accounts)
	}
}

func TestLoginSuccess(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerInput("jean@ljmdi.org"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	result, err := svc.Login(ctx, &LoginInput{Email: "jean@ljmdi.org", Password: "secret-password"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("no token issued")
	}
	if result.User.FirstName != "Jean" || result.User.LastName != "Kanyinda" {
		t.Errorf("login did not attach member names: %+v", result.User)
	}

	claims, err := jwt.ValidateToken(result.Token, "test-secret")
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.AccountID != registered.ID || claims.Role != "member" {
		t.Errorf("claims = %+v", claims)
	}

	var account models.Account
	db.First(&account, registered.ID)
	if account.LastLogin == nil {
		t.Error("last_login not updated")
	}
}

// All login failures must collapse into the same generic error so the
// response never reveals whether an email exists.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerInput("jean@ljmdi.org"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, wrongPassword := svc.Login(ctx, &LoginInput{Email: "jean@ljmdi.org", Password: "wrong"})
	_, unknownEmail := svc.Login(ctx, &LoginInput{Email: "nobody@ljmdi.org", Password: "secret-password"})

	db.Model(&models.Account{}).Where("id = ?", registered.ID).Update("is_active", false)
	_, inactive := svc.Login(ctx, &LoginInput{Email: "jean@ljmdi.org", Password: "secret-password"})

	for name, err := range map[string]error{
		"wrong password": wrongPassword,
		"unknown email":  unknownEmail,
		"inactive":       inactive,
	} {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("%s: got %v, want ErrInvalidCredentials", name, err)
		}
	}
}

func TestVerify(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerInput("jean@ljmdi.org"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := svc.Verify(ctx, registered.ID)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if user.Email != "jean@ljmdi.org" || user.FirstName != "Jean" {
		t.Errorf("Verify = %+v", user)
	}

	if _, err := svc.Verify(ctx, 999); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("Verify of missing account = %v, want ErrAccountNotFound", err)
	}
}
