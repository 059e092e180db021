package jwt

import (
	"errors"
	"testing"
)

const testSecret = "test-secret"

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateToken(42, "user@ljmdi.org", "admin", testSecret, 60)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.AccountID != 42 {
		t.Errorf("AccountID = %d, want 42", claims.AccountID)
	}
	if claims.Email != "user@ljmdi.org" {
		t.Errorf("Email = %q, want user@ljmdi.org", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, "user@ljmdi.org", "member", testSecret, 60)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateToken(token, "other-secret"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateToken with wrong secret = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateExpired(t *testing.T) {
	token, err := GenerateToken(1, "user@ljmdi.org", "member", testSecret, -1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateToken(token, testSecret); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("ValidateToken with expired token = %v, want ErrTokenExpired", err)
	}
}

func TestValidateGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token", testSecret); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateToken with garbage = %v, want ErrTokenInvalid", err)
	}
}
