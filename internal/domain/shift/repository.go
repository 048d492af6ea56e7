package shift

import "context"

// ShiftRepository defines data access methods for shift policies.
type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)

	GetByID(ctx context.Context, id string) (Shift, error)

	// GetByName resolves a policy by name, case-insensitively. Name is the
	// reference employees carry.
	GetByName(ctx context.Context, name string) (Shift, error)

	// List retrieves policies sorted by name. activeOnly restricts to
	// status = active.
	List(ctx context.Context, activeOnly bool) ([]Shift, error)

	Update(ctx context.Context, s Shift) error

	Delete(ctx context.Context, id string) error
}
