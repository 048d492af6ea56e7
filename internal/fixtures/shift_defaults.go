package fixtures

import "github.com/attendly/attendance-backend-go/internal/domain/shift"

// DefaultShifts are the policies seeded into an empty registry so that
// signup can assign the Morning shift immediately.
func DefaultShifts() []shift.Shift {
	return []shift.Shift{
		{
			Name:                 "Morning",
			EntryTime:            "09:00",
			ExitTime:             "18:00",
			BreakStart:           "13:00",
			BreakEnd:             "14:00",
			BreakDurationMinutes: 60,
			WorkingDays:          shift.WorkingDaysMonSat,
			Status:               shift.StatusActive,
		},
		{
			Name:                 "Evening",
			EntryTime:            "14:00",
			ExitTime:             "23:00",
			BreakStart:           "18:00",
			BreakEnd:             "19:00",
			BreakDurationMinutes: 60,
			WorkingDays:          shift.WorkingDaysMonSat,
			Status:               shift.StatusActive,
		},
	}
}
