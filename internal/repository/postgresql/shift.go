package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/shift"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

const shiftColumns = `
	id, name, entry_time, exit_time, break_start, break_end,
	break_duration_minutes, working_days, status, created_at, updated_at
`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.Name, &s.EntryTime, &s.ExitTime, &s.BreakStart, &s.BreakEnd,
		&s.BreakDurationMinutes, &s.WorkingDays, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements shift.ShiftRepository. Shift names have a unique index on
// LOWER(name).
func (r *shiftRepository) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query := `
		INSERT INTO shifts (
			id, name, entry_time, exit_time, break_start, break_end,
			break_duration_minutes, working_days, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.Name, s.EntryTime, s.ExitTime, s.BreakStart, s.BreakEnd,
		s.BreakDurationMinutes, s.WorkingDays, s.Status,
	).Scan(&s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return shift.Shift{}, shift.ErrShiftNameExists
		}
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return s, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + shiftColumns + " FROM shifts WHERE id = $1"

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift by ID: %w", err)
	}

	return s, nil
}

// GetByName implements shift.ShiftRepository.
func (r *shiftRepository) GetByName(ctx context.Context, name string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + shiftColumns + " FROM shifts WHERE LOWER(name) = LOWER($1)"

	s, err := scanShift(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift by name: %w", err)
	}

	return s, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context, activeOnly bool) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + shiftColumns + " FROM shifts"
	args := []interface{}{}
	if activeOnly {
		query += " WHERE status = $1"
		args = append(args, shift.StatusActive)
	}
	query += " ORDER BY name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $1,
			entry_time = $2,
			exit_time = $3,
			break_start = $4,
			break_end = $5,
			break_duration_minutes = $6,
			working_days = $7,
			status = $8,
			updated_at = $9
		WHERE id = $10
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		s.Name, s.EntryTime, s.ExitTime, s.BreakStart, s.BreakEnd,
		s.BreakDurationMinutes, s.WorkingDays, s.Status,
		time.Now(), s.ID,
	).Scan(&updatedID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftNotFound
		}
		if database.IsUniqueViolation(err) {
			return shift.ErrShiftNameExists
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, "DELETE FROM shifts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}
