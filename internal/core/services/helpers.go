package services

import (
	"math"
	"time"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"
)

const (
	dateLayout = "2006-01-02"
)

// parseDate parses an ISO-8601 date, accepting a bare date or a full
// RFC 3339 timestamp (clients send both for date fields).
func parseDate(field, value string, ve *domain.ValidationErrors) time.Time {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	ve.Add(field, field+" must be an ISO-8601 date")
	return time.Time{}
}

// parseDateTime parses an RFC 3339 timestamp
func parseDateTime(field, value string, ve *domain.ValidationErrors) time.Time {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	ve.Add(field, field+" must be an ISO-8601 timestamp")
	return time.Time{}
}

// participationRate returns round-half-up of present*100/total, and 0 when
// there are no rows at all.
func participationRate(present, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(float64(present)*100/float64(total) + 0.5))
}

// startOfMonth returns midnight on the first day of t's month
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// monthKey formats a month bucket as YYYY-MM
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
