package employee

import (
	"strings"
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Email        string           `json:"email"`
	Password     string           `json:"password"`
	FullName     string           `json:"full_name"`
	Position     string           `json:"position"`
	Department   string           `json:"department"`
	Phone        string           `json:"phone"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	ShiftName    string           `json:"shift"`
	EntryTime    string           `json:"entry_time"`
	ExitTime     string           `json:"exit_time"`
	AnnualLeaves *int             `json:"annual_leaves,omitempty"`
	CasualLeaves *int             `json:"casual_leaves,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
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

	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone number format is invalid",
		})
	}

	if r.AnnualLeaves != nil && *r.AnnualLeaves < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "annual_leaves",
			Message: "annual_leaves must not be negative",
		})
	}

	if r.CasualLeaves != nil && *r.CasualLeaves < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "casual_leaves",
			Message: "casual_leaves must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest patches employee fields; nil pointers leave the
// stored value untouched.
type UpdateEmployeeRequest struct {
	ID           string           `json:"-"`
	FullName     *string          `json:"full_name,omitempty"`
	Position     *string          `json:"position,omitempty"`
	Department   *string          `json:"department,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	ShiftName    *string          `json:"shift,omitempty"`
	EntryTime    *string          `json:"entry_time,omitempty"`
	ExitTime     *string          `json:"exit_time,omitempty"`
	AnnualLeaves *int             `json:"annual_leaves,omitempty"`
	CasualLeaves *int             `json:"casual_leaves,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "employee id is required",
		})
	}

	if r.EntryTime != nil && !validator.IsValidTimeOfDay(*r.EntryTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_time",
			Message: "entry_time must be in HH:MM format",
		})
	}

	if r.ExitTime != nil && !validator.IsValidTimeOfDay(*r.ExitTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_time",
			Message: "exit_time must be in HH:MM format",
		})
	}

	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone number format is invalid",
		})
	}

	if r.AnnualLeaves != nil && *r.AnnualLeaves < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "annual_leaves",
			Message: "annual_leaves must not be negative",
		})
	}

	if r.CasualLeaves != nil && *r.CasualLeaves < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "casual_leaves",
			Message: "casual_leaves must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID               string           `json:"id"`
	Email            string           `json:"email"`
	FullName         string           `json:"full_name"`
	Role             string           `json:"role"`
	EmployeeCode     string           `json:"employee_id"`
	Position         string           `json:"position,omitempty"`
	Department       string           `json:"department,omitempty"`
	Phone            string           `json:"phone,omitempty"`
	Salary           *decimal.Decimal `json:"salary,omitempty"`
	ShiftName        string           `json:"shift,omitempty"`
	EntryTime        string           `json:"entry_time,omitempty"`
	ExitTime         string           `json:"exit_time,omitempty"`
	AnnualLeaves     int              `json:"annual_leaves"`
	CasualLeaves     int              `json:"casual_leaves"`
	CurrentCheckIn   *time.Time       `json:"current_check_in,omitempty"`
	CurrentCheckOut  *time.Time       `json:"current_check_out,omitempty"`
	AttendanceStatus *string          `json:"attendance_status,omitempty"`
	CreatedAt        string           `json:"created_at"`
	UpdatedAt        string           `json:"updated_at"`
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Employees  []EmployeeResponse `json:"employees"`
}

// ToResponse converts an Employee entity to its API shape.
func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               emp.ID,
		Email:            strings.ToLower(emp.Email),
		FullName:         emp.FullName,
		Role:             string(emp.Role),
		EmployeeCode:     emp.EmployeeCode,
		Position:         emp.Position,
		Department:       emp.Department,
		Phone:            emp.Phone,
		Salary:           emp.Salary,
		ShiftName:        emp.ShiftName,
		EntryTime:        emp.EntryTime,
		ExitTime:         emp.ExitTime,
		AnnualLeaves:     emp.AnnualLeaves,
		CasualLeaves:     emp.CasualLeaves,
		CurrentCheckIn:   emp.CurrentCheckIn,
		CurrentCheckOut:  emp.CurrentCheckOut,
		AttendanceStatus: emp.AttendanceStatus,
		CreatedAt:        emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
