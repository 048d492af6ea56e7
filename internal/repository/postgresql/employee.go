package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

const employeeColumns = `
	id, email, password_hash, full_name, role, employee_code,
	position, department, phone, salary,
	shift_name, entry_time, exit_time,
	annual_leaves, casual_leaves,
	current_check_in, current_check_out, attendance_status,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.Email, &emp.PasswordHash, &emp.FullName, &emp.Role, &emp.EmployeeCode,
		&emp.Position, &emp.Department, &emp.Phone, &emp.Salary,
		&emp.ShiftName, &emp.EntryTime, &emp.ExitTime,
		&emp.AnnualLeaves, &emp.CasualLeaves,
		&emp.CurrentCheckIn, &emp.CurrentCheckOut, &emp.AttendanceStatus,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (
			id, email, password_hash, full_name, role, employee_code,
			position, department, phone, salary,
			shift_name, entry_time, exit_time,
			annual_leaves, casual_leaves
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13,
			$14, $15
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.Email, emp.PasswordHash, emp.FullName, emp.Role, emp.EmployeeCode,
		emp.Position, emp.Department, emp.Phone, emp.Salary,
		emp.ShiftName, emp.EntryTime, emp.ExitTime,
		emp.AnnualLeaves, emp.CasualLeaves,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + employeeColumns + " FROM employees WHERE id = $1"

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + employeeColumns + " FROM employees WHERE LOWER(email) = LOWER($1)"

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, role *employee.Role) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + employeeColumns + " FROM employees"
	args := []interface{}{}
	if role != nil {
		query += " WHERE role = $1"
		args = append(args, *role)
	}
	query += " ORDER BY full_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET email = $1,
			password_hash = $2,
			full_name = $3,
			role = $4,
			position = $5,
			department = $6,
			phone = $7,
			salary = $8,
			shift_name = $9,
			entry_time = $10,
			exit_time = $11,
			annual_leaves = $12,
			casual_leaves = $13,
			updated_at = $14
		WHERE id = $15
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.Email, emp.PasswordHash, emp.FullName, emp.Role,
		emp.Position, emp.Department, emp.Phone, emp.Salary,
		emp.ShiftName, emp.EntryTime, emp.ExitTime,
		emp.AnnualLeaves, emp.CasualLeaves,
		time.Now(), emp.ID,
	).Scan(&updatedID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		if database.IsUniqueViolation(err) {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if result.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// DebitLeave implements employee.EmployeeRepository.
func (r *employeeRepository) DebitLeave(ctx context.Context, id string, kind employee.LeaveKind) error {
	q := GetQuerier(ctx, r.db)

	column := "casual_leaves"
	if kind == employee.LeaveAnnual {
		column = "annual_leaves"
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s = %s - 1, updated_at = $1
		WHERE id = $2
		RETURNING id
	`, column, column)

	var updatedID string
	if err := q.QueryRow(ctx, query, time.Now(), id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to debit %s leave: %w", kind, err)
	}

	return nil
}

// SetDayMirror implements employee.EmployeeRepository.
func (r *employeeRepository) SetDayMirror(ctx context.Context, id string, checkIn, checkOut *time.Time, status *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET current_check_in = $1,
			current_check_out = $2,
			attendance_status = $3,
			updated_at = $4
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, checkIn, checkOut, status, time.Now(), id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to set day mirror: %w", err)
	}

	return nil
}

// NextEmployeeCode implements employee.EmployeeRepository. Codes are EMP
// followed by a zero-padded sequence derived from the highest existing code.
func (r *employeeRepository) NextEmployeeCode(ctx context.Context) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(MAX(CAST(SUBSTRING(employee_code FROM 4) AS INTEGER)), 0)
		FROM employees
		WHERE employee_code ~ '^EMP[0-9]+$'
	`

	var max int
	if err := q.QueryRow(ctx, query).Scan(&max); err != nil {
		return "", fmt.Errorf("failed to compute next employee code: %w", err)
	}

	return fmt.Sprintf("EMP%02d", max+1), nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
