package attendance

import (
	"time"
)

// Attendance is the single record for one (employee, calendar day). Date is
// date-only; CheckIn/CheckOut are absolute instants stored in UTC.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    time.Time
	CheckOut   *time.Time
	Status     Status
	Dressing   Dressing
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"

	// StatusPending is a display-only classification for a day with no
	// record whose shift window has not yet elapsed. It is never stored.
	StatusPending Status = "pending"
)

type Dressing string

const (
	DressingFormal Dressing = "formal"
	DressingCasual Dressing = "casual"
	DressingNone   Dressing = "none"
)

// ParseDressing validates a dressing classification.
func ParseDressing(s string) (Dressing, error) {
	switch Dressing(s) {
	case DressingFormal, DressingCasual, DressingNone:
		return Dressing(s), nil
	case "":
		return DressingNone, nil
	default:
		return "", ErrInvalidDressing
	}
}

// GracePeriod is how far past the shift entry time a check-in still counts
// as present.
const GracePeriod = 5 * time.Minute

// AbsenceWindow is how long after the shift entry time a missing record is
// still classified as pending rather than absent.
const AbsenceWindow = time.Hour

// LatePenaltyInterval is the cadence of leave debits: every Nth late arrival
// in a calendar month costs one leave unit.
const LatePenaltyInterval = 3
