package employee

import (
	"context"
	"time"
)

// EmployeeRepository defines data access methods for the employee directory.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List retrieves employees, optionally restricted to a role, sorted by
	// full name.
	List(ctx context.Context, role *Role) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error

	Delete(ctx context.Context, id string) error

	// DebitLeave decrements one unit from the selected ledger counter.
	// Called by the attendance engine inside the check-in transaction.
	DebitLeave(ctx context.Context, id string, kind LeaveKind) error

	// SetDayMirror updates the denormalized current-day projection fields.
	// Nil pointers clear the corresponding column.
	SetDayMirror(ctx context.Context, id string, checkIn, checkOut *time.Time, status *string) error

	// NextEmployeeCode returns the next unused EMPnn code.
	NextEmployeeCode(ctx context.Context) (string, error)
}
