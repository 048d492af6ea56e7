package auth

import (
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone,omitempty"`
	EntryTime string `json:"entry_time,omitempty"`
	ExitTime  string `json:"exit_time,omitempty"`
}

func (r *SignupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if r.EntryTime != "" && !validator.IsValidTimeOfDay(r.EntryTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_time",
			Message: "entry_time must be in HH:MM format",
		})
	}

	if r.ExitTime != "" && !validator.IsValidTimeOfDay(r.ExitTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_time",
			Message: "exit_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AuthResponse struct {
	Token     string                    `json:"token"`
	ExpiresAt int64                     `json:"expires_at"`
	User      employee.EmployeeResponse `json:"user"`
}
