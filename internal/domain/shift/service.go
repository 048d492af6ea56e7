package shift

import "context"

// ShiftService defines business logic for the shift policy registry.
type ShiftService interface {
	// CreateShift registers a policy. Name uniqueness is case-insensitive.
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)

	// ListShifts retrieves policies. Non-admin callers see only active ones.
	ListShifts(ctx context.Context, activeOnly bool) (ListShiftsResponse, error)

	GetShift(ctx context.Context, id string) (ShiftResponse, error)

	UpdateShift(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)

	// DeleteShift removes a policy. Employees still referencing its name are
	// not touched; the reference simply dangles.
	DeleteShift(ctx context.Context, id string) error

	// EnsureDefaults seeds the registry with the standard policies when it
	// is empty. Called once at startup.
	EnsureDefaults(ctx context.Context) error
}
