package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// CheckIn records the authenticated employee's check-in at the current
	// instant, classifying it present or late and applying the late-penalty
	// rule.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes the authenticated employee's open record for today.
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// ManualCheckIn backfills a check-in at an admin-supplied instant with
	// the same status and penalty logic as CheckIn.
	ManualCheckIn(ctx context.Context, req ManualCheckInRequest) (AttendanceResponse, error)

	// ManualCheckOut closes a record at an admin-supplied instant.
	ManualCheckOut(ctx context.Context, req ManualCheckOutRequest) (AttendanceResponse, error)

	// SetDressing updates a record's dressing classification (admin).
	SetDressing(ctx context.Context, req SetDressingRequest) (AttendanceResponse, error)

	// GetAttendance retrieves a single record by id.
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// ListAttendance retrieves records with filters. Non-admin callers are
	// scoped to their own records.
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
