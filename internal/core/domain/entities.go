package domain

import "time"

// Role represents an account role in the system
type Role string

const (
	RoleAdmin             Role = "admin"
	RoleDisciplineOfficer Role = "discipline_officer"
	RoleMember            Role = "member"
)

// ValidRoles lists every accepted account role
var ValidRoles = []string{
	string(RoleAdmin),
	string(RoleDisciplineOfficer),
	string(RoleMember),
}

// Member statuses
const (
	MemberStatusActive   = "Active"
	MemberStatusInactive = "Inactive"
	MemberStatusRegular  = "Regular"
)

var ValidMemberStatuses = []string{
	MemberStatusActive,
	MemberStatusInactive,
	MemberStatusRegular,
}

// Activity types
var ValidActivityTypes = []string{
	"Meeting", "Seminar", "Training", "Event", "Assembly", "Other",
}

// Attendance statuses
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceLate    = "Late"
)

var ValidAttendanceStatuses = []string{
	AttendancePresent,
	AttendanceAbsent,
	AttendanceLate,
}

// Payment enums shared by contributions and dues
const (
	PaymentStatusPaid    = "Paid"
	PaymentStatusLate    = "Late"
	PaymentStatusPending = "Pending"
)

var (
	ValidPaymentTypes    = []string{"Weekly", "Special", "Annual"}
	ValidCurrencies      = []string{"USD", "CDF"}
	ValidPaymentStatuses = []string{
		PaymentStatusPaid,
		PaymentStatusLate,
		PaymentStatusPending,
	}
)

// Document types
var ValidDocumentTypes = []string{
	"Report", "Minutes", "Regulation", "Communication", "Other",
}

// Social case enums
const (
	CaseStatusOpen       = "Open"
	CaseStatusInProgress = "InProgress"
	CaseStatusResolved   = "Resolved"
	CaseStatusClosed     = "Closed"
)

var (
	ValidCaseTypes = []string{
		"Illness", "Death", "Accident", "Marriage", "Birth", "Other",
	}
	ValidCaseStatuses = []string{
		CaseStatusOpen,
		CaseStatusInProgress,
		CaseStatusResolved,
		CaseStatusClosed,
	}
)

// Assistance enums
var (
	ValidAssistanceTypes = []string{
		"Financial", "Material", "Medical", "Other",
	}
	ValidAssistanceStatuses = []string{
		"Pending", "Approved", "Rejected", "Disbursed",
	}
)

// IsOneOf reports whether value is in the allowed set
func IsOneOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}

// Account represents login credentials, optionally linked to a member
type Account struct {
	ID        uint
	Email     string
	Password  string // Hashed
	Role      Role
	IsActive  bool
	LastLogin *time.Time
	CreatedAt time.Time
}

// Member represents a registered association member
type Member struct {
	ID         uint
	LastName   string
	FirstName  string
	Email      string
	Phone      string
	JoinDate   time.Time
	Status     string
	Address    string
	Profession string
	AccountID  *uint
	CreatedAt  time.Time
}
