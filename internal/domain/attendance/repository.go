package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// The attendances table carries a UNIQUE (employee_id, date) constraint; a
// racing second insert surfaces as ErrAlreadyCheckedIn from Create.
type AttendanceRepository interface {
	// Create inserts a new record. Returns ErrAlreadyCheckedIn when a record
	// for the same employee and day already exists.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a calendar
	// day, or nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// CountLateInRange counts an employee's late-status records with
	// start <= date < end. The engine uses it with calendar-month bounds.
	CountLateInRange(ctx context.Context, employeeID string, start, end time.Time) (int, error)

	// SetCheckOut closes the record. The check-out instant is written once;
	// callers enforce the one-way transition.
	SetCheckOut(ctx context.Context, id string, checkOut time.Time, notes *string) error

	// SetDressing updates the dressing classification.
	SetDressing(ctx context.Context, id string, dressing Dressing) error

	// List retrieves records with filters and pagination.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// StatusCountsInRange tallies an employee's records by status with
	// start <= date < end. Reporting uses it with calendar-month bounds.
	StatusCountsInRange(ctx context.Context, employeeID string, start, end time.Time) (map[Status]int, error)
}
