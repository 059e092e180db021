package services

import (
	"context"
	"sort"
	"time"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"

	"gorm.io/gorm"
)

// ReportService computes the read-only reporting views. Like the dashboard,
// every report is a pure function of the current entity set.
type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// MembersReport is the /reports/members payload
type MembersReport struct {
	Total        int64         `json:"total"`
	ByStatus     []StatusCount `json:"byStatus"`
	NewThisMonth int64         `json:"newThisMonth"`
	JoinsByMonth []MonthCount  `json:"joinsByMonth"`
}

// MonthCount is one month bucket of a count series
type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// FinancialReport is the /reports/financial payload
type FinancialReport struct {
	Treasury            float64           `json:"treasury"`
	Contributions       *PaymentBreakdown `json:"contributions"`
	Dues                *PaymentBreakdown `json:"dues"`
	AssistanceDisbursed float64           `json:"assistanceDisbursed"`
	MonthlyEvolution    []MonthAmount     `json:"monthlyEvolution"`
}

// PaymentBreakdown summarizes one payment table
type PaymentBreakdown struct {
	Total      int64             `json:"total"`
	PaidAmount float64           `json:"paidAmount"`
	Paid       int64             `json:"paid"`
	Pending    int64             `json:"pending"`
	Late       int64             `json:"late"`
	ByCurrency []TypeAmountEntry `json:"byCurrency"`
}

// ActivitiesReport is the /reports/activities payload
type ActivitiesReport struct {
	Total             int64         `json:"total"`
	ByType            []StatusCount `json:"byType"`
	ThisMonth         int64         `json:"thisMonth"`
	Upcoming          int64         `json:"upcoming"`
	ParticipationRate int           `json:"participationRate"`
}

// SocialCasesReport is the /reports/social-cases payload
type SocialCasesReport struct {
	Total               int64             `json:"total"`
	ByStatus            []StatusCount     `json:"byStatus"`
	ByType              []StatusCount     `json:"byType"`
	AssistanceByStatus  []TypeAmountEntry `json:"assistanceByStatus"`
	AssistanceDisbursed float64           `json:"assistanceDisbursed"`
}

// Members computes the membership report
func (s *ReportService) Members(ctx context.Context) (*MembersReport, error) {
	db := s.db.WithContext(ctx)
	report := &MembersReport{}
	now := time.Now()
	monthStart := startOfMonth(now)

	if err := db.Model(&models.Member{}).Count(&report.Total).Error; err != nil {
		return nil, err
	}
	for _, status := range domain.ValidMemberStatuses {
		var count int64
		if err := db.Model(&models.Member{}).Where("status = ?", status).Count(&count).Error; err != nil {
			return nil, err
		}
		report.ByStatus = append(report.ByStatus, StatusCount{Status: status, Count: count})
	}
	if err := db.Model(&models.Member{}).
		Where("join_date >= ?", monthStart).
		Count(&report.NewThisMonth).Error; err != nil {
		return nil, err
	}

	// Joins per month over the last year, bucketed in Go for portability
	since := monthStart.AddDate(0, -11, 0)
	var joinDates []time.Time
	if err := db.Model(&models.Member{}).
		Where("join_date >= ?", since).
		Pluck("join_date", &joinDates).Error; err != nil {
		return nil, err
	}
	buckets := map[string]int64{}
	for _, d := range joinDates {
		buckets[monthKey(d)]++
	}
	for month, count := range buckets {
		report.JoinsByMonth = append(report.JoinsByMonth, MonthCount{Month: month, Count: count})
	}
	sort.Slice(report.JoinsByMonth, func(i, j int) bool {
		return report.JoinsByMonth[i].Month < report.JoinsByMonth[j].Month
	})

	return report, nil
}

// Financial computes the financial report
func (s *ReportService) Financial(ctx context.Context) (*FinancialReport, error) {
	report := &FinancialReport{}

	contributions, err := s.paymentBreakdown(ctx, &models.Contribution{})
	if err != nil {
		return nil, err
	}
	report.Contributions = contributions

	dues, err := s.paymentBreakdown(ctx, &models.Due{})
	if err != nil {
		return nil, err
	}
	report.Dues = dues

	report.Treasury = contributions.PaidAmount + dues.PaidAmount

	if err := s.db.WithContext(ctx).Model(&models.Assistance{}).
		Where("status = ?", "Disbursed").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&report.AssistanceDisbursed).Error; err != nil {
		return nil, err
	}

	evolution, err := NewDashboardService(s.db).contributionsEvolution(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	report.MonthlyEvolution = evolution

	return report, nil
}

// paymentBreakdown summarizes one payment table (contributions or dues)
func (s *ReportService) paymentBreakdown(ctx context.Context, model interface{}) (*PaymentBreakdown, error) {
	db := s.db.WithContext(ctx)
	breakdown := &PaymentBreakdown{}

	if err := db.Model(model).Count(&breakdown.Total).Error; err != nil {
		return nil, err
	}
	if err := db.Model(model).
		Where("payment_status = ?", domain.PaymentStatusPaid).
		Count(&breakdown.Paid).Error; err != nil {
		return nil, err
	}
	if err := db.Model(model).
		Where("payment_status = ?", domain.PaymentStatusPending).
		Count(&breakdown.Pending).Error; err != nil {
		return nil, err
	}
	if err := db.Model(model).
		Where("payment_status = ?", domain.PaymentStatusLate).
		Count(&breakdown.Late).Error; err != nil {
		return nil, err
	}
	if err := db.Model(model).
		Where("payment_status = ?", domain.PaymentStatusPaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&breakdown.PaidAmount).Error; err != nil {
		return nil, err
	}

	for _, currency := range domain.ValidCurrencies {
		var amount float64
		if err := db.Model(model).
			Where("payment_status = ? AND currency = ?", domain.PaymentStatusPaid, currency).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&amount).Error; err != nil {
			return nil, err
		}
		breakdown.ByCurrency = append(breakdown.ByCurrency, TypeAmountEntry{Type: currency, Amount: amount})
	}

	return breakdown, nil
}

// Activities computes the activities report
func (s *ReportService) Activities(ctx context.Context) (*ActivitiesReport, error) {
	db := s.db.WithContext(ctx)
	report := &ActivitiesReport{}
	now := time.Now()
	monthStart := startOfMonth(now)

	if err := db.Model(&models.Activity{}).Count(&report.Total).Error; err != nil {
		return nil, err
	}
	for _, typ := range domain.ValidActivityTypes {
		var count int64
		if err := db.Model(&models.Activity{}).Where("type = ?", typ).Count(&count).Error; err != nil {
			return nil, err
		}
		report.ByType = append(report.ByType, StatusCount{Status: typ, Count: count})
	}
	if err := db.Model(&models.Activity{}).
		Where("start_time >= ? AND start_time < ?", monthStart, monthStart.AddDate(0, 1, 0)).
		Count(&report.ThisMonth).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Activity{}).
		Where("start_time > ?", now).
		Count(&report.Upcoming).Error; err != nil {
		return nil, err
	}

	var total, present int64
	if err := db.Model(&models.Attendance{}).Count(&total).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Attendance{}).
		Where("status = ?", domain.AttendancePresent).
		Count(&present).Error; err != nil {
		return nil, err
	}
	report.ParticipationRate = participationRate(present, total)

	return report, nil
}

// SocialCases computes the social cases report
func (s *ReportService) SocialCases(ctx context.Context) (*SocialCasesReport, error) {
	db := s.db.WithContext(ctx)
	report := &SocialCasesReport{}

	if err := db.Model(&models.SocialCase{}).Count(&report.Total).Error; err != nil {
		return nil, err
	}
	for _, status := range domain.ValidCaseStatuses {
		var count int64
		if err := db.Model(&models.SocialCase{}).Where("status = ?", status).Count(&count).Error; err != nil {
			return nil, err
		}
		report.ByStatus = append(report.ByStatus, StatusCount{Status: status, Count: count})
	}
	for _, typ := range domain.ValidCaseTypes {
		var count int64
		if err := db.Model(&models.SocialCase{}).Where("type = ?", typ).Count(&count).Error; err != nil {
			return nil, err
		}
		report.ByType = append(report.ByType, StatusCount{Status: typ, Count: count})
	}

	for _, status := range domain.ValidAssistanceStatuses {
		var amount float64
		if err := db.Model(&models.Assistance{}).
			Where("status = ?", status).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&amount).Error; err != nil {
			return nil, err
		}
		report.AssistanceByStatus = append(report.AssistanceByStatus, TypeAmountEntry{Type: status, Amount: amount})
		if status == "Disbursed" {
			report.AssistanceDisbursed = amount
		}
	}

	return report, nil
}
