package repositories

import (
	"context"
	"time"

	"github.com/salmanMuzandwa/LJMDI-Systeme-Gestion-sub000/internal/adapters/persistence/models"
)

// AccountRepository defines account repository interface
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id uint) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// MemberRepository defines member repository interface
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	GetByEmail(ctx context.Context, email string) (*models.Member, error)
	GetByAccountID(ctx context.Context, accountID uint) (*models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Member, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountJoinedSince(ctx context.Context, since time.Time) (int64, error)
}

// ActivityRepository defines activity repository interface
type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	GetByID(ctx context.Context, id uint) (*models.Activity, error)
	Update(ctx context.Context, activity *models.Activity) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Activity, error)
	Exists(ctx context.Context, id uint) (bool, error)
	CountStartedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountUpcoming(ctx context.Context, after time.Time) (int64, error)
}

// AttendanceRepository defines attendance repository interface
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *models.Attendance) error
	GetByID(ctx context.Context, id uint) (*models.Attendance, error)
	Update(ctx context.Context, attendance *models.Attendance) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Attendance, error)
	ListByActivity(ctx context.Context, activityID uint) ([]*models.Attendance, error)
	ListByMember(ctx context.Context, memberID uint) ([]*models.Attendance, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountForMember(ctx context.Context, memberID uint) (total, present int64, err error)
}

// ContributionRepository defines contribution repository interface
type ContributionRepository interface {
	Create(ctx context.Context, contribution *models.Contribution) error
	GetByID(ctx context.Context, id uint) (*models.Contribution, error)
	Update(ctx context.Context, contribution *models.Contribution) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Contribution, error)
	ListByMember(ctx context.Context, memberID uint) ([]*models.Contribution, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	SumByStatus(ctx context.Context, status string) (float64, error)
	SumByType(ctx context.Context, typ string) (float64, error)
}

// DueRepository defines due (cotisation) repository interface.
// Kept separate from contributions, matching the original two-table schema.
type DueRepository interface {
	Create(ctx context.Context, due *models.Due) error
	GetByID(ctx context.Context, id uint) (*models.Due, error)
	Update(ctx context.Context, due *models.Due) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Due, error)
	ListByMember(ctx context.Context, memberID uint) ([]*models.Due, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	SumByStatus(ctx context.Context, status string) (float64, error)
	SumByType(ctx context.Context, typ string) (float64, error)
}

// DocumentRepository defines document repository interface
type DocumentRepository interface {
	Create(ctx context.Context, document *models.Document) error
	GetByID(ctx context.Context, id uint) (*models.Document, error)
	Update(ctx context.Context, document *models.Document) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Document, error)
}

// SocialCaseRepository defines social case + assistance repository interface
type SocialCaseRepository interface {
	Create(ctx context.Context, socialCase *models.SocialCase) error
	GetByID(ctx context.Context, id uint) (*models.SocialCase, error)
	Update(ctx context.Context, socialCase *models.SocialCase) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.SocialCase, error)
	ListByMember(ctx context.Context, memberID uint) ([]*models.SocialCase, error)
	Exists(ctx context.Context, id uint) (bool, error)
	CountByStatus(ctx context.Context, status string) (int64, error)

	CreateAssistance(ctx context.Context, assistance *models.Assistance) error
	GetAssistanceByID(ctx context.Context, id uint) (*models.Assistance, error)
	ListAssistancesByCase(ctx context.Context, caseID uint) ([]*models.Assistance, error)
	SumAssistancesByStatus(ctx context.Context, status string) (float64, error)
}
