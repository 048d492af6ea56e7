package shift

import "time"

// Shift is a named policy of daily recurring times. Entry/exit and break
// times are "HH:MM" local wall-clock strings, not instants.
type Shift struct {
	ID                   string
	Name                 string
	EntryTime            string
	ExitTime             string
	BreakStart           string
	BreakEnd             string
	BreakDurationMinutes int
	WorkingDays          WorkingDays
	Status               Status
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type WorkingDays string

const (
	WorkingDaysMonSat WorkingDays = "monday-saturday"
	WorkingDaysMonFri WorkingDays = "monday-friday"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
