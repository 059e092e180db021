package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth tables
// ============================================================

// Account represents the accounts table
type Account struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Email     string     `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string     `gorm:"size:255;not null" json:"-"`
	Role      string     `gorm:"size:30;default:'member'" json:"role"`
	IsActive  bool       `gorm:"default:true" json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// AccountResponse DTO
type AccountResponse struct {
	ID        uint       `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	FirstName string     `json:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (a *Account) ToResponse() *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Role:      a.Role,
		IsActive:  a.IsActive,
		LastLogin: a.LastLogin,
		CreatedAt: a.CreatedAt,
	}
}

// ============================================================
// Membership tables
// ============================================================

// Member represents the members table
type Member struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	LastName   string    `gorm:"size:100;not null" json:"last_name"`
	FirstName  string    `gorm:"size:100;not null" json:"first_name"`
	Email      string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Phone      string    `gorm:"size:30" json:"phone"`
	JoinDate   time.Time `gorm:"type:date;not null" json:"join_date"`
	Status     string    `gorm:"size:20;default:'Active'" json:"status"`
	Address    string    `gorm:"size:255" json:"address"`
	Profession string    `gorm:"size:100" json:"profession"`
	AccountID  *uint     `gorm:"index" json:"account_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Account *Account `gorm:"foreignKey:AccountID" json:"-"`
}

func (Member) TableName() string {
	return "members"
}

// FullName returns "First Last" for display
func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// Activity represents the activities table
type Activity struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Type        string    `gorm:"size:20;not null" json:"type"`
	Description string    `gorm:"type:text" json:"description"`
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	Location    string    `gorm:"size:200" json:"location"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Activity) TableName() string {
	return "activities"
}

// Attendance represents the attendances table.
// One row per (activity, member) pair, enforced by the composite index.
type Attendance struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ActivityID uint      `gorm:"not null;uniqueIndex:idx_attendance_activity_member" json:"activity_id"`
	MemberID   uint      `gorm:"not null;uniqueIndex:idx_attendance_activity_member;index" json:"member_id"`
	Status     string    `gorm:"size:20;not null" json:"status"`
	Timestamp  time.Time `gorm:"not null" json:"timestamp"`
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Activity *Activity `gorm:"foreignKey:ActivityID" json:"-"`
	Member   *Member   `gorm:"foreignKey:MemberID" json:"-"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// AttendanceResponse DTO with member/activity display names
type AttendanceResponse struct {
	ID           uint      `json:"id"`
	ActivityID   uint      `json:"activity_id"`
	MemberID     uint      `json:"member_id"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	Notes        string    `json:"notes,omitempty"`
	MemberName   string    `json:"member_name,omitempty"`
	ActivityName string    `json:"activity_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a *Attendance) ToResponse() *AttendanceResponse {
	resp := &AttendanceResponse{
		ID:         a.ID,
		ActivityID: a.ActivityID,
		MemberID:   a.MemberID,
		Status:     a.Status,
		Timestamp:  a.Timestamp,
		Notes:      a.Notes,
		CreatedAt:  a.CreatedAt,
	}
	if a.Member != nil {
		resp.MemberName = a.Member.FullName()
	}
	if a.Activity != nil {
		resp.ActivityName = a.Activity.Title
	}
	return resp
}

// ============================================================
// Finance tables
// ============================================================

// Contribution represents the contributions table
type Contribution struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	MemberID      uint      `gorm:"not null;index" json:"member_id"`
	Type          string    `gorm:"size:20;not null" json:"type"`
	Amount        float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency      string    `gorm:"size:3;not null;default:'USD'" json:"currency"`
	PaymentDate   time.Time `gorm:"type:date;not null" json:"payment_date"`
	PaymentStatus string    `gorm:"size:20;not null;default:'Pending'" json:"payment_status"`
	Description   string    `gorm:"type:text" json:"description"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Member *Member `gorm:"foreignKey:MemberID" json:"-"`
}

func (Contribution) TableName() string {
	return "contributions"
}

// Due represents the dues (cotisations) table. Same shape as Contribution
// but kept as its own table, matching the original schema.
type Due struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	MemberID      uint      `gorm:"not null;index" json:"member_id"`
	Type          string    `gorm:"size:20;not null" json:"type"`
	Amount        float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency      string    `gorm:"size:3;not null;default:'USD'" json:"currency"`
	PaymentDate   time.Time `gorm:"type:date;not null" json:"payment_date"`
	PaymentStatus string    `gorm:"size:20;not null;default:'Pending'" json:"payment_status"`
	Description   string    `gorm:"type:text" json:"description"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Member *Member `gorm:"foreignKey:MemberID" json:"-"`
}

func (Due) TableName() string {
	return "dues"
}

// ============================================================
// Documents
// ============================================================

// Document represents the documents table
type Document struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	Type        string    `gorm:"size:20;not null" json:"type"`
	FilePath    string    `gorm:"size:255;not null" json:"file_path"`
	FileSize    *int64    `json:"file_size"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Document) TableName() string {
	return "documents"
}

// ============================================================
// Social assistance tables
// ============================================================

// SocialCase represents the social_cases table
type SocialCase struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	MemberID    uint      `gorm:"not null;index" json:"member_id"`
	Type        string    `gorm:"size:20;not null" json:"type"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"size:20;not null;default:'Open'" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Member      *Member      `gorm:"foreignKey:MemberID" json:"-"`
	Assistances []Assistance `gorm:"foreignKey:CaseID" json:"assistances,omitempty"`
}

func (SocialCase) TableName() string {
	return "social_cases"
}

// SocialCaseResponse DTO with member display name
type SocialCaseResponse struct {
	ID          uint      `json:"id"`
	MemberID    uint      `json:"member_id"`
	MemberName  string    `json:"member_name,omitempty"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *SocialCase) ToResponse() *SocialCaseResponse {
	resp := &SocialCaseResponse{
		ID:          s.ID,
		MemberID:    s.MemberID,
		Type:        s.Type,
		Description: s.Description,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
	}
	if s.Member != nil {
		resp.MemberName = s.Member.FullName()
	}
	return resp
}

// Assistance represents the assistances table.
// Rows are deleted together with their social case.
type Assistance struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CaseID         uint      `gorm:"not null;index" json:"case_id"`
	Amount         float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type           string    `gorm:"size:20;not null" json:"type"`
	Description    string    `gorm:"type:text" json:"description"`
	AssistanceDate time.Time `gorm:"type:date;not null" json:"assistance_date"`
	Status         string    `gorm:"size:20;not null;default:'Pending'" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	Case *SocialCase `gorm:"foreignKey:CaseID" json:"-"`
}

func (Assistance) TableName() string {
	return "assistances"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates the schema for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Account{},
		&Member{},
		&Activity{},
		&Attendance{},
		&Contribution{},
		&Due{},
		&Document{},
		&SocialCase{},
		&Assistance{},
	)
}
