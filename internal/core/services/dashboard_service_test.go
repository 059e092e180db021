package services

import (
	"context"
	"testing"
	"time"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"

	"gorm.io/gorm"
)

func seedDashboardData(t *testing.T, db *gorm.DB) {
	t.Helper()
	now := time.Now()

	members := []models.Member{
		{LastName: "A", FirstName: "A", Email: "a@x.org", JoinDate: now, Status: domain.MemberStatusActive},
		{LastName: "B", FirstName: "B", Email: "b@x.org", JoinDate: now, Status: domain.MemberStatusActive},
		{LastName: "C", FirstName: "C", Email: "c@x.org", JoinDate: now.AddDate(0, -3, 0), Status: domain.MemberStatusInactive},
	}
	if err := db.Create(&members).Error; err != nil {
		t.Fatalf("seed members: %v", err)
	}

	payments := []models.Contribution{
		{MemberID: members[0].ID, Type: "Weekly", Amount: 100, Currency: "USD", PaymentDate: now, PaymentStatus: domain.PaymentStatusPaid},
		{MemberID: members[1].ID, Type: "Weekly", Amount: 50, Currency: "USD", PaymentDate: now, PaymentStatus: domain.PaymentStatusPending},
	}
	if err := db.Create(&payments).Error; err != nil {
		t.Fatalf("seed contributions: %v", err)
	}
	dues := []models.Due{
		{MemberID: members[0].ID, Type: "Annual", Amount: 30, Currency: "USD", PaymentDate: now, PaymentStatus: domain.PaymentStatusPaid},
		{MemberID: members[1].ID, Type: "Annual", Amount: 99, Currency: "USD", PaymentDate: now, PaymentStatus: domain.PaymentStatusLate},
	}
	if err := db.Create(&dues).Error; err != nil {
		t.Fatalf("seed dues: %v", err)
	}

	activity := models.Activity{
		Title: "Assembly", Type: "Assembly",
		StartTime: now.AddDate(0, 0, 7), EndTime: now.AddDate(0, 0, 7),
	}
	if err := db.Create(&activity).Error; err != nil {
		t.Fatalf("seed activity: %v", err)
	}

	attendance := []models.Attendance{
		{ActivityID: activity.ID, MemberID: members[0].ID, Status: domain.AttendancePresent, Timestamp: now},
		{ActivityID: activity.ID, MemberID: members[1].ID, Status: domain.AttendanceAbsent, Timestamp: now},
		{ActivityID: activity.ID, MemberID: members[2].ID, Status: domain.AttendancePresent, Timestamp: now},
	}
	if err := db.Create(&attendance).Error; err != nil {
		t.Fatalf("seed attendance: %v", err)
	}
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	seedDashboardData(t, db)

	stats, err := NewDashboardService(db).GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if stats.ActiveMembers != 2 {
		t.Errorf("ActiveMembers = %d, want 2", stats.ActiveMembers)
	}
	// Treasury counts only what was actually paid, contributions and dues alike
	if stats.Treasury != 130 {
		t.Errorf("Treasury = %v, want 130", stats.Treasury)
	}
	// 2 of 3 present -> 66.67 rounds to 67
	if stats.ParticipationRate != 67 {
		t.Errorf("ParticipationRate = %d, want 67", stats.ParticipationRate)
	}
	if stats.UpcomingActivities != 1 {
		t.Errorf("UpcomingActivities = %d, want 1", stats.UpcomingActivities)
	}
	if stats.NewMembers != 2 {
		t.Errorf("NewMembers = %d, want 2", stats.NewMembers)
	}

	breakdown := map[string]int64{}
	for _, entry := range stats.StatusBreakdown {
		breakdown[entry.Status] = entry.Count
	}
	if breakdown[domain.MemberStatusActive] != 2 || breakdown[domain.MemberStatusInactive] != 1 {
		t.Errorf("StatusBreakdown = %v", stats.StatusBreakdown)
	}
}

func TestDashboardStatsEmptyStore(t *testing.T) {
	db := newTestDB(t)

	stats, err := NewDashboardService(db).GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats on empty store: %v", err)
	}
	if stats.ActiveMembers != 0 || stats.Treasury != 0 || stats.ParticipationRate != 0 {
		t.Errorf("empty store stats = %+v", stats)
	}
}

func TestFinancialReport(t *testing.T) {
	db := newTestDB(t)
	seedDashboardData(t, db)

	report, err := NewReportService(db).Financial(context.Background())
	if err != nil {
		t.Fatalf("Financial: %v", err)
	}

	if report.Treasury != 130 {
		t.Errorf("Treasury = %v, want 130", report.Treasury)
	}
	if report.Contributions.Total != 2 || report.Contributions.Paid != 1 || report.Contributions.Pending != 1 {
		t.Errorf("Contributions breakdown = %+v", report.Contributions)
	}
	if report.Contributions.PaidAmount != 100 {
		t.Errorf("Contributions.PaidAmount = %v, want 100", report.Contributions.PaidAmount)
	}
	if report.Dues.Late != 1 || report.Dues.PaidAmount != 30 {
		t.Errorf("Dues breakdown = %+v", report.Dues)
	}
}

func TestMembersReport(t *testing.T) {
	db := newTestDB(t)
	seedDashboardData(t, db)

	report, err := NewReportService(db).Members(context.Background())
	if err != nil {
		t.Fatalf("Members: %v", err)
	}
	if report.Total != 3 {
		t.Errorf("Total = %d, want 3", report.Total)
	}
	if report.NewThisMonth != 2 {
		t.Errorf("NewThisMonth = %d, want 2", report.NewThisMonth)
	}
}
