package shift

import "errors"

// Shift policy domain errors
var (
	ErrShiftNotFound   = errors.New("shift policy not found")
	ErrShiftNameExists = errors.New("shift name already exists")
)
