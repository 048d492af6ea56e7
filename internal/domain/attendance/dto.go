package attendance

import (
	"strings"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// CheckInRequest is the self-service check-in. The employee identity comes
// from the token, the instant from the engine's clock.
type CheckInRequest struct {
	Note     *string `json:"note,omitempty"`
	Dressing string  `json:"dressing,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Dressing != "" {
		if _, err := ParseDressing(r.Dressing); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "dressing",
				Message: "dressing must be one of: formal, casual, none",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	Note *string `json:"note,omitempty"`
}

// ManualCheckInRequest backfills a forgotten scan (admin). The instant is
// admin-supplied; the status algorithm is identical to the self-service
// path so manual and scanned entries are indistinguishable downstream.
type ManualCheckInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Timestamp  string  `json:"timestamp"` // RFC3339
	Note       *string `json:"note,omitempty"`
	Dressing   string  `json:"dressing,omitempty"`
}

func (r *ManualCheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Timestamp) {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp is required",
		})
	} else if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be an ISO8601 datetime",
		})
	}

	if r.Dressing != "" {
		if _, err := ParseDressing(r.Dressing); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "dressing",
				Message: "dressing must be one of: formal, casual, none",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ManualCheckOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	Timestamp  string  `json:"timestamp"` // RFC3339
	Note       *string `json:"note,omitempty"`
}

func (r *ManualCheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Timestamp) {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp is required",
		})
	} else if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be an ISO8601 datetime",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetDressingRequest struct {
	ID       string `json:"-"`
	Dressing string `json:"dressing"`
}

func (r *SetDressingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "attendance id is required",
		})
	}

	if validator.IsEmpty(r.Dressing) {
		errs = append(errs, validator.ValidationError{
			Field:   "dressing",
			Message: "dressing is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	CheckIn      string  `json:"check_in"`
	CheckOut     *string `json:"check_out,omitempty"`
	Status       string  `json:"status"`
	Dressing     string  `json:"dressing"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type AttendanceFilter struct {
	// Search & Filter
	EmployeeID *string `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status     *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // date, check_in, check_out, status
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	// Limit validation
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	// Status validation
	if f.Status != nil {
		validStatuses := []string{
			string(StatusPresent), string(StatusLate),
			string(StatusAbsent), string(StatusLeave),
		}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: present, late, absent, leave",
			})
		}
	}

	// Date validation
	for field, value := range map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, valid := validator.IsValidDate(*value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	// Sort validation
	if f.SortBy != "" {
		validSortFields := []string{"date", "check_in", "check_out", "status"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: date, check_in, check_out, status",
			})
		}
	} else {
		f.SortBy = "date" // Default sort
	}

	if f.SortOrder != "" {
		validSortOrders := []string{"asc", "desc"}
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), validSortOrders) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc" // Default descending (newest first)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
