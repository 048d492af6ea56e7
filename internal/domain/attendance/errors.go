package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in/check-out errors
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("no check-in found for today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")

	// General errors
	ErrInvalidDressing    = errors.New("dressing must be one of: formal, casual, none")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)
