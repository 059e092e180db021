package validation

import (
	"testing"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"
)

type sampleInput struct {
	Email  string  `json:"email" validate:"required,email"`
	Status string  `json:"status" validate:"required,oneof=Active Inactive"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

func TestStructValid(t *testing.T) {
	input := sampleInput{Email: "a@b.cd", Status: "Active", Amount: 10}
	if err := Struct(input); err != nil {
		t.Fatalf("Struct on valid input = %v", err)
	}
}

func TestStructReportsEveryField(t *testing.T) {
	input := sampleInput{Email: "not-an-email", Status: "Bogus", Amount: -5}
	err := Struct(input)
	if err == nil {
		t.Fatal("Struct accepted invalid input")
	}

	ve, ok := domain.AsValidationErrors(err)
	if !ok {
		t.Fatalf("error is %T, want *domain.ValidationErrors", err)
	}
	if len(ve.Fields) != 3 {
		t.Fatalf("got %d field errors, want 3: %v", len(ve.Fields), ve.Fields)
	}

	// Field names must be the json wire names, not the Go names
	seen := map[string]bool{}
	for _, f := range ve.Fields {
		seen[f.Field] = true
	}
	for _, want := range []string{"email", "status", "amount"} {
		if !seen[want] {
			t.Errorf("missing field error for %q, got %v", want, ve.Fields)
		}
	}
}

func TestStructMissingRequired(t *testing.T) {
	err := Struct(sampleInput{})
	ve, ok := domain.AsValidationErrors(err)
	if !ok {
		t.Fatalf("error is %T, want *domain.ValidationErrors", err)
	}
	if len(ve.Fields) != 2 {
		t.Errorf("got %d field errors, want 2 (email, status): %v", len(ve.Fields), ve.Fields)
	}
}
