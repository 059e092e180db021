package services

import (
	"context"
	"sort"
	"time"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"

	"gorm.io/gorm"
)

// DashboardService computes the dashboard aggregates. Every call re-derives
// the numbers from the current rows; nothing is cached or invalidated.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// evolutionMonths is how far back the contributions evolution reaches
const evolutionMonths = 6

// DashboardStats is the /dashboard/stats payload
type DashboardStats struct {
	ActiveMembers          int64          `json:"activeMembers"`
	Treasury               float64        `json:"treasury"`
	ActivitiesThisMonth    int64          `json:"activitiesThisMonth"`
	ParticipationRate      int            `json:"participationRate"`
	ContributionsEvolution []MonthAmount  `json:"contributionsEvolution"`
	Alerts                 []Alert        `json:"alerts"`
	NewMembers             int64          `json:"newMembers"`
	UpcomingActivities     int64          `json:"upcomingActivities"`
	StatusBreakdown        []StatusCount  `json:"statusBreakdown"`
}

// MonthAmount is one month bucket of the contributions evolution
type MonthAmount struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// Alert is one dashboard alert entry
type Alert struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// StatusCount is one bucket of a by-status breakdown
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// GetStats computes the dashboard payload from the current entity set
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	db := s.db.WithContext(ctx)
	stats := &DashboardStats{}
	now := time.Now()
	monthStart := startOfMonth(now)

	if err := db.Model(&models.Member{}).
		Where("status = ?", domain.MemberStatusActive).
		Count(&stats.ActiveMembers).Error; err != nil {
		return nil, err
	}

	// Treasury is everything actually paid, contributions and dues alike
	var paidContributions, paidDues float64
	if err := db.Model(&models.Contribution{}).
		Where("payment_status = ?", domain.PaymentStatusPaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&paidContributions).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Due{}).
		Where("payment_status = ?", domain.PaymentStatusPaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&paidDues).Error; err != nil {
		return nil, err
	}
	stats.Treasury = paidContributions + paidDues

	if err := db.Model(&models.Activity{}).
		Where("start_time >= ? AND start_time < ?", monthStart, monthStart.AddDate(0, 1, 0)).
		Count(&stats.ActivitiesThisMonth).Error; err != nil {
		return nil, err
	}

	var attendanceTotal, attendancePresent int64
	if err := db.Model(&models.Attendance{}).Count(&attendanceTotal).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Attendance{}).
		Where("status = ?", domain.AttendancePresent).
		Count(&attendancePresent).Error; err != nil {
		return nil, err
	}
	stats.ParticipationRate = participationRate(attendancePresent, attendanceTotal)

	evolution, err := s.contributionsEvolution(ctx, now)
	if err != nil {
		return nil, err
	}
	stats.ContributionsEvolution = evolution

	alerts, err := s.alerts(ctx)
	if err != nil {
		return nil, err
	}
	stats.Alerts = alerts

	if err := db.Model(&models.Member{}).
		Where("join_date >= ?", monthStart).
		Count(&stats.NewMembers).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Activity{}).
		Where("start_time > ?", now).
		Count(&stats.UpcomingActivities).Error; err != nil {
		return nil, err
	}

	for _, status := range domain.ValidMemberStatuses {
		var count int64
		if err := db.Model(&models.Member{}).Where("status = ?", status).Count(&count).Error; err != nil {
			return nil, err
		}
		stats.StatusBreakdown = append(stats.StatusBreakdown, StatusCount{Status: status, Count: count})
	}

	return stats, nil
}

// contributionsEvolution buckets paid contributions by month. Grouping is
// done here rather than in SQL so MySQL and the in-memory backend agree.
func (s *DashboardService) contributionsEvolution(ctx context.Context, now time.Time) ([]MonthAmount, error) {
	since := startOfMonth(now).AddDate(0, -(evolutionMonths - 1), 0)

	var rows []struct {
		PaymentDate time.Time
		Amount      float64
	}
	if err := s.db.WithContext(ctx).Model(&models.Contribution{}).
		Where("payment_status = ? AND payment_date >= ?", domain.PaymentStatusPaid, since).
		Select("payment_date, amount").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	buckets := make(map[string]float64, evolutionMonths)
	for i := 0; i < evolutionMonths; i++ {
		buckets[monthKey(since.AddDate(0, i, 0))] = 0
	}
	for _, row := range rows {
		key := monthKey(row.PaymentDate)
		if _, ok := buckets[key]; ok {
			buckets[key] += row.Amount
		}
	}

	evolution := make([]MonthAmount, 0, len(buckets))
	for month, amount := range buckets {
		evolution = append(evolution, MonthAmount{Month: month, Amount: amount})
	}
	sort.Slice(evolution, func(i, j int) bool {
		return evolution[i].Month < evolution[j].Month
	})
	return evolution, nil
}

// alerts collects the attention-needed counters shown on the dashboard
func (s *DashboardService) alerts(ctx context.Context) ([]Alert, error) {
	db := s.db.WithContext(ctx)
	alerts := []Alert{}

	var lateContributions, lateDues int64
	if err := db.Model(&models.Contribution{}).
		Where("payment_status = ?", domain.PaymentStatusLate).
		Count(&lateContributions).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Due{}).
		Where("payment_status = ?", domain.PaymentStatusLate).
		Count(&lateDues).Error; err != nil {
		return nil, err
	}
	if late := lateContributions + lateDues; late > 0 {
		alerts = append(alerts, Alert{
			Type:    "late_payments",
			Message: "Payments are overdue",
			Count:   late,
		})
	}

	var openCases int64
	if err := db.Model(&models.SocialCase{}).
		Where("status IN ?", []string{domain.CaseStatusOpen, domain.CaseStatusInProgress}).
		Count(&openCases).Error; err != nil {
		return nil, err
	}
	if openCases > 0 {
		alerts = append(alerts, Alert{
			Type:    "open_social_cases",
			Message: "Social cases are awaiting action",
			Count:   openCases,
		})
	}

	var pendingAssistance int64
	if err := db.Model(&models.Assistance{}).
		Where("status = ?", "Pending").
		Count(&pendingAssistance).Error; err != nil {
		return nil, err
	}
	if pendingAssistance > 0 {
		alerts = append(alerts, Alert{
			Type:    "pending_assistance",
			Message: "Assistance requests are pending approval",
			Count:   pendingAssistance,
		})
	}

	return alerts, nil
}
