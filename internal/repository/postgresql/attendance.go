package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

// Create implements attendance.AttendanceRepository.
// The attendances table has UNIQUE (employee_id, date); a constraint hit is
// mapped to ErrAlreadyCheckedIn so two racing check-ins cannot both succeed.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	if att.ID == "" {
		att.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendances (
			id, employee_id, date, check_in, check_out, status, dressing, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.EmployeeID,
		att.Date,
		att.CheckIn,
		att.CheckOut,
		att.Status,
		att.Dressing,
		att.Notes,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out,
			   a.status, a.dressing, a.notes, a.created_at, a.updated_at,
			   e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.Status, &att.Dressing, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out,
			   status, dressing, notes, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.Status, &att.Dressing, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for that day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// CountLateInRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountLateInRange(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT COUNT(*)
		FROM attendances
		WHERE employee_id = $1
		  AND status = $2
		  AND date >= $3
		  AND date < $4
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID, attendance.StatusLate, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count late attendances: %w", err)
	}

	return count, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetCheckOut(ctx context.Context, id string, checkOut time.Time, notes *string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out = $1,
			notes = COALESCE($2, notes),
			updated_at = $3
		WHERE id = $4
		  AND check_out IS NULL
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, checkOut, notes, time.Now(), id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAlreadyCheckedOut
		}
		return fmt.Errorf("failed to set check-out: %w", err)
	}

	return nil
}

// SetDressing implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetDressing(ctx context.Context, id string, dressing attendance.Dressing) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET dressing = $1, updated_at = $2
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, dressing, time.Now(), id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to set dressing: %w", err)
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	// Build ORDER BY
	orderByField := "a.date"
	switch filter.SortBy {
	case "check_in":
		orderByField = "a.check_in"
	case "check_out":
		orderByField = "a.check_out"
	case "status":
		orderByField = "a.status"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	// Build query with pagination
	selectQuery := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out,
			   a.status, a.dressing, a.notes, a.created_at, a.updated_at,
			   e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
			&att.Status, &att.Dressing, &att.Notes, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, total, nil
}

// StatusCountsInRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) StatusCountsInRange(ctx context.Context, employeeID string, start, end time.Time) (map[attendance.Status]int, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT status, COUNT(*)
		FROM attendances
		WHERE employee_id = $1
		  AND date >= $2
		  AND date < $3
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query status counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[attendance.Status]int)
	for rows.Next() {
		var status attendance.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}

	return counts, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
