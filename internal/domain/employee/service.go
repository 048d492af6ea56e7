package employee

import "context"

// EmployeeService defines business logic for the employee directory.
type EmployeeService interface {
	// CreateEmployee adds a staff member (admin). Leave balances are seeded
	// to the default and an EMPnn code is generated when absent.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// ListEmployees retrieves the roster, sorted by full name.
	ListEmployees(ctx context.Context) (ListEmployeesResponse, error)

	// GetEmployee retrieves a single employee by id.
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// UpdateEmployee patches employee fields. Assigning a shift policy by
	// name re-snapshots the policy's entry/exit times onto the employee.
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee from the roster (admin only).
	DeleteEmployee(ctx context.Context, id string) error
}
