package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	EmployeeCode string
	Position     string
	Department   string
	Phone        string
	Salary       *decimal.Decimal

	// Assigned shift policy, referenced by name. EntryTime/ExitTime are the
	// "HH:MM" snapshot copied from the policy at assignment time.
	ShiftName string
	EntryTime string
	ExitTime  string

	// Leave ledger. Mutated only by the attendance engine's penalty rule and
	// by admin edits.
	AnnualLeaves int
	CasualLeaves int

	// Denormalized projection of today's attendance record. The record is the
	// source of truth; these are written in the same transaction as the
	// record itself.
	CurrentCheckIn   *time.Time
	CurrentCheckOut  *time.Time
	AttendanceStatus *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// LeaveKind selects which ledger counter a debit applies to.
type LeaveKind string

const (
	LeaveCasual LeaveKind = "casual"
	LeaveAnnual LeaveKind = "annual"
)

// DefaultLeaveBalance seeds both counters at signup/admin-add.
// One leave per month, twelve per year.
const DefaultLeaveBalance = 12
