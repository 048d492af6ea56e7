package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials        = errors.New("invalid email or password")
	ErrInvalidToken              = errors.New("invalid or expired token")
	ErrAdminPrivilegeRequired    = errors.New("admin privilege required")
	ErrEmployeeContextRequired   = errors.New("employee context missing from token")
	ErrEmailAlreadyRegistered    = errors.New("email already registered")
	ErrSignupPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrSignupMissingRequiredData = errors.New("email, password, and full name are required")
)
