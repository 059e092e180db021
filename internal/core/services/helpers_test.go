package services

import (
	"testing"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"
)

func TestParticipationRate(t *testing.T) {
	tests := []struct {
		present, total int64
		want           int
	}{
		{0, 0, 0},
		{0, 10, 0},
		{10, 10, 100},
		{1, 2, 50},
		{1, 3, 33},  // 33.33 rounds down
		{2, 3, 67},  // 66.67 rounds up
		{1, 8, 13},  // 12.5 rounds half up
		{3, 8, 38},  // 37.5 rounds half up
		{1, 200, 1}, // 0.5 rounds half up
	}
	for _, tt := range tests {
		if got := participationRate(tt.present, tt.total); got != tt.want {
			t.Errorf("participationRate(%d, %d) = %d, want %d", tt.present, tt.total, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	ve := &domain.ValidationErrors{}

	got := parseDate("join_date", "2024-01-15", ve)
	if ve.HasErrors() {
		t.Fatalf("bare date rejected: %v", ve)
	}
	if got.Year() != 2024 || got.Month() != 1 || got.Day() != 15 {
		t.Errorf("parsed %v, want 2024-01-15", got)
	}

	parseDate("join_date", "2024-01-15T08:30:00Z", ve)
	if ve.HasErrors() {
		t.Errorf("RFC 3339 timestamp rejected: %v", ve)
	}

	parseDate("join_date", "15/01/2024", ve)
	if !ve.HasErrors() {
		t.Error("non-ISO date accepted")
	}
}

func TestParseDateTime(t *testing.T) {
	ve := &domain.ValidationErrors{}

	parseDateTime("timestamp", "2025-06-01T09:00:00Z", ve)
	if ve.HasErrors() {
		t.Fatalf("RFC 3339 timestamp rejected: %v", ve)
	}

	parseDateTime("timestamp", "2025-06-01", ve)
	if !ve.HasErrors() {
		t.Error("bare date accepted where a timestamp is required")
	}
}
