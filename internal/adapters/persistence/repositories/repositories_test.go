package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/core/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedMember(t *testing.T, db *gorm.DB, email string) *models.Member {
	t.Helper()
	member := &models.Member{
		LastName:  "Kanyinda",
		FirstName: "Jean",
		Email:     email,
		JoinDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:    domain.MemberStatusActive,
	}
	if err := NewMemberRepository(db).Create(context.Background(), member); err != nil {
		t.Fatalf("seed member: %v", err)
	}
	return member
}

func seedActivity(t *testing.T, db *gorm.DB, title string) *models.Activity {
	t.Helper()
	activity := &models.Activity{
		Title:     title,
		Type:      "Meeting",
		StartTime: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC),
	}
	if err := NewActivityRepository(db).Create(context.Background(), activity); err != nil {
		t.Fatalf("seed activity: %v", err)
	}
	return activity
}

func TestMemberDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	seedMember(t, db, "jean@ljmdi.org")

	dup := &models.Member{
		LastName:  "Mbuyi",
		FirstName: "Paul",
		Email:     "jean@ljmdi.org",
		JoinDate:  time.Now(),
		Status:    domain.MemberStatusActive,
	}
	if err := repo.Create(ctx, dup); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Errorf("Create with duplicate email = %v, want ErrDuplicateEmail", err)
	}

	var count int64
	db.Model(&models.Member{}).Count(&count)
	if count != 1 {
		t.Errorf("member count = %d, want 1 (duplicate insert must roll back)", count)
	}
}

func TestMemberUpdateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	seedMember(t, db, "jean@ljmdi.org")
	other := seedMember(t, db, "paul@ljmdi.org")

	other.Email = "jean@ljmdi.org"
	if err := repo.Update(ctx, other); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Errorf("Update stealing an email = %v, want ErrDuplicateEmail", err)
	}
}

func TestMemberUpdateKeepsCreatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	member := seedMember(t, db, "jean@ljmdi.org")
	created := member.CreatedAt

	member.Phone = "+243555000111"
	member.CreatedAt = created.Add(48 * time.Hour)
	if err := repo.Update(ctx, member); err != nil {
		t.Fatalf("Update: %v", err)
	}

	stored, err := repo.GetByID(ctx, member.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !stored.CreatedAt.Equal(created) {
		t.Errorf("created_at changed on update: %v -> %v", created, stored.CreatedAt)
	}
	if stored.Phone != "+243555000111" {
		t.Errorf("phone not updated, got %q", stored.Phone)
	}
}

func TestMemberDeleteWithDependents(t *testing.T) {
	db := newTestDB(t)
	memberRepo := NewMemberRepository(db)
	ctx := context.Background()

	member := seedMember(t, db, "jean@ljmdi.org")
	contribution := &models.Contribution{
		MemberID:      member.ID,
		Type:          "Weekly",
		Amount:        10,
		Currency:      "USD",
		PaymentDate:   time.Now(),
		PaymentStatus: domain.PaymentStatusPaid,
	}
	if err := NewContributionRepository(db).Create(ctx, contribution); err != nil {
		t.Fatalf("seed contribution: %v", err)
	}

	if err := memberRepo.Delete(ctx, member.ID); !errors.Is(err, domain.ErrMemberHasDependents) {
		t.Errorf("Delete with dependents = %v, want ErrMemberHasDependents", err)
	}

	// After the dependent goes away the delete succeeds
	if err := db.Delete(&models.Contribution{}, contribution.ID).Error; err != nil {
		t.Fatalf("remove contribution: %v", err)
	}
	if err := memberRepo.Delete(ctx, member.ID); err != nil {
		t.Errorf("Delete without dependents = %v, want nil", err)
	}
}

func TestMemberDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	err := NewMemberRepository(db).Delete(context.Background(), 999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Delete of missing member = %v, want ErrRecordNotFound", err)
	}
}

func TestMemberListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, email := range []string{"a@ljmdi.org", "b@ljmdi.org", "c@ljmdi.org"} {
		member := &models.Member{
			LastName:  "Member",
			FirstName: fmt.Sprintf("N%d", i),
			Email:     email,
			JoinDate:  base,
			Status:    domain.MemberStatusActive,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := repo.Create(ctx, member); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	members, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("got %d members, want 3", len(members))
	}
	if members[0].Email != "c@ljmdi.org" || members[2].Email != "a@ljmdi.org" {
		t.Errorf("list not ordered newest first: %s, %s, %s",
			members[0].Email, members[1].Email, members[2].Email)
	}
}

func TestAttendanceDuplicatePair(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	member := seedMember(t, db, "jean@ljmdi.org")
	activity := seedActivity(t, db, "General Assembly")

	first := &models.Attendance{
		ActivityID: activity.ID,
		MemberID:   member.ID,
		Status:     domain.AttendancePresent,
		Timestamp:  time.Now(),
	}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	second := &models.Attendance{
		ActivityID: activity.ID,
		MemberID:   member.ID,
		Status:     domain.AttendanceLate,
		Timestamp:  time.Now(),
	}
	if err := repo.Create(ctx, second); !errors.Is(err, domain.ErrDuplicateAttendance) {
		t.Errorf("second Create for same pair = %v, want ErrDuplicateAttendance", err)
	}

	// Same member at a different activity is fine
	other := seedActivity(t, db, "Training Day")
	third := &models.Attendance{
		ActivityID: other.ID,
		MemberID:   member.ID,
		Status:     domain.AttendancePresent,
		Timestamp:  time.Now(),
	}
	if err := repo.Create(ctx, third); err != nil {
		t.Errorf("Create for different activity = %v, want nil", err)
	}
}

func TestAttendanceListByActivityOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRepository(db)
	memberRepo := NewMemberRepository(db)
	ctx := context.Background()

	activity := seedActivity(t, db, "General Assembly")

	names := []struct{ last, first, email string }{
		{"Zola", "Marie", "zola@ljmdi.org"},
		{"Abedi", "Luc", "abedi@ljmdi.org"},
		{"Mbuyi", "Paul", "mbuyi@ljmdi.org"},
	}
	for _, n := range names {
		member := &models.Member{
			LastName:  n.last,
			FirstName: n.first,
			Email:     n.email,
			JoinDate:  time.Now(),
			Status:    domain.MemberStatusActive,
		}
		if err := memberRepo.Create(ctx, member); err != nil {
			t.Fatalf("Create member: %v", err)
		}
		record := &models.Attendance{
			ActivityID: activity.ID,
			MemberID:   member.ID,
			Status:     domain.AttendancePresent,
			Timestamp:  time.Now(),
		}
		if err := repo.Create(ctx, record); err != nil {
			t.Fatalf("Create attendance: %v", err)
		}
	}

	records, err := repo.ListByActivity(ctx, activity.ID)
	if err != nil {
		t.Fatalf("ListByActivity: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	got := []string{
		records[0].Member.LastName,
		records[1].Member.LastName,
		records[2].Member.LastName,
	}
	want := []string{"Abedi", "Mbuyi", "Zola"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("attendance sheet order = %v, want %v", got, want)
		}
	}
}

func TestAttendanceCountForMember(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	member := seedMember(t, db, "jean@ljmdi.org")
	statuses := []string{
		domain.AttendancePresent,
		domain.AttendancePresent,
		domain.AttendanceAbsent,
		domain.AttendanceLate,
	}
	for i, status := range statuses {
		activity := seedActivity(t, db, fmt.Sprintf("Activity %d", i))
		record := &models.Attendance{
			ActivityID: activity.ID,
			MemberID:   member.ID,
			Status:     status,
			Timestamp:  time.Now(),
		}
		if err := repo.Create(ctx, record); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	total, present, err := repo.CountForMember(ctx, member.ID)
	if err != nil {
		t.Fatalf("CountForMember: %v", err)
	}
	if total != 4 || present != 2 {
		t.Errorf("CountForMember = (%d, %d), want (4, 2)", total, present)
	}
}

func TestActivityDeleteWithAttendance(t *testing.T) {
	db := newTestDB(t)
	activityRepo := NewActivityRepository(db)
	ctx := context.Background()

	member := seedMember(t, db, "jean@ljmdi.org")
	activity := seedActivity(t, db, "General Assembly")
	record := &models.Attendance{
		ActivityID: activity.ID,
		MemberID:   member.ID,
		Status:     domain.AttendancePresent,
		Timestamp:  time.Now(),
	}
	if err := NewAttendanceRepository(db).Create(ctx, record); err != nil {
		t.Fatalf("Create attendance: %v", err)
	}

	if err := activityRepo.Delete(ctx, activity.ID); !errors.Is(err, domain.ErrActivityHasRecords) {
		t.Errorf("Delete with attendance = %v, want ErrActivityHasRecords", err)
	}
}

func TestSocialCaseDeleteCascadesAssistances(t *testing.T) {
	db := newTestDB(t)
	repo := NewSocialCaseRepository(db)
	ctx := context.Background()

	member := seedMember(t, db, "jean@ljmdi.org")
	socialCase := &models.SocialCase{
		MemberID: member.ID,
		Type:     "Illness",
		Status:   "Open",
	}
	if err := repo.Create(ctx, socialCase); err != nil {
		t.Fatalf("Create case: %v", err)
	}
	for i := 0; i < 2; i++ {
		assistance := &models.Assistance{
			CaseID:         socialCase.ID,
			Amount:         50,
			Type:           "Financial",
			AssistanceDate: time.Now(),
			Status:         "Approved",
		}
		if err := repo.CreateAssistance(ctx, assistance); err != nil {
			t.Fatalf("CreateAssistance: %v", err)
		}
	}

	if err := repo.Delete(ctx, socialCase.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var remaining int64
	db.Model(&models.Assistance{}).Where("case_id = ?", socialCase.ID).Count(&remaining)
	if remaining != 0 {
		t.Errorf("%d assistances survived the case delete, want 0", remaining)
	}
}

func TestAccountDeleteUnlinksMember(t *testing.T) {
	db := newTestDB(t)
	accountRepo := NewAccountRepository(db)
	memberRepo := NewMemberRepository(db)
	ctx := context.Background()

	account := &models.Account{Email: "jean@ljmdi.org", Password: "hash", Role: "member"}
	if err := accountRepo.Create(ctx, account); err != nil {
		t.Fatalf("Create account: %v", err)
	}
	member := seedMember(t, db, "jean.m@ljmdi.org")
	member.AccountID = &account.ID
	if err := memberRepo.Update(ctx, member); err != nil {
		t.Fatalf("link member: %v", err)
	}

	if err := accountRepo.Delete(ctx, account.ID); err != nil {
		t.Fatalf("Delete account: %v", err)
	}

	stored, err := memberRepo.GetByID(ctx, member.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.AccountID != nil {
		t.Errorf("member still references deleted account %d", *stored.AccountID)
	}
}

func TestDueSums(t *testing.T) {
	db := newTestDB(t)
	repo := NewDueRepository(db)
	ctx := context.Background()

	member := seedMember(t, db, "jean@ljmdi.org")
	rows := []struct {
		amount float64
		status string
		typ    string
	}{
		{10, domain.PaymentStatusPaid, "Weekly"},
		{25, domain.PaymentStatusPaid, "Special"},
		{40, domain.PaymentStatusPending, "Weekly"},
	}
	for _, row := range rows {
		due := &models.Due{
			MemberID:      member.ID,
			Type:          row.typ,
			Amount:        row.amount,
			Currency:      "USD",
			PaymentDate:   time.Now(),
			PaymentStatus: row.status,
		}
		if err := repo.Create(ctx, due); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	paid, err := repo.SumByStatus(ctx, domain.PaymentStatusPaid)
	if err != nil {
		t.Fatalf("SumByStatus: %v", err)
	}
	if paid != 35 {
		t.Errorf("paid sum = %v, want 35", paid)
	}

	weekly, err := repo.SumByType(ctx, "Weekly")
	if err != nil {
		t.Fatalf("SumByType: %v", err)
	}
	if weekly != 50 {
		t.Errorf("weekly sum = %v, want 50", weekly)
	}
}
