package shift

import (
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name                 string `json:"name"`
	EntryTime            string `json:"entry_time"`
	ExitTime             string `json:"exit_time"`
	BreakStart           string `json:"break_start"`
	BreakEnd             string `json:"break_end"`
	BreakDurationMinutes int    `json:"break_duration"`
	WorkingDays          string `json:"working_days"`
	Status               string `json:"status"`
}

// ApplyDefaults fills unset fields with the standard office-hours policy.
func (r *CreateShiftRequest) ApplyDefaults() {
	if r.EntryTime == "" {
		r.EntryTime = "09:00"
	}
	if r.ExitTime == "" {
		r.ExitTime = "18:00"
	}
	if r.BreakStart == "" {
		r.BreakStart = "13:00"
	}
	if r.BreakEnd == "" {
		r.BreakEnd = "14:00"
	}
	if r.BreakDurationMinutes == 0 {
		r.BreakDurationMinutes = 60
	}
	if r.WorkingDays == "" {
		r.WorkingDays = string(WorkingDaysMonSat)
	}
	if r.Status == "" {
		r.Status = string(StatusActive)
	}
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "shift name is required",
		})
	}

	for field, value := range map[string]string{
		"entry_time":  r.EntryTime,
		"exit_time":   r.ExitTime,
		"break_start": r.BreakStart,
		"break_end":   r.BreakEnd,
	} {
		if value != "" && !validator.IsValidTimeOfDay(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
		}
	}

	if r.BreakDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration",
			Message: "break_duration must not be negative",
		})
	}

	if r.WorkingDays != "" {
		validDays := []string{string(WorkingDaysMonSat), string(WorkingDaysMonFri)}
		if !validator.IsInSlice(r.WorkingDays, validDays) {
			errs = append(errs, validator.ValidationError{
				Field:   "working_days",
				Message: "working_days must be one of: monday-saturday, monday-friday",
			})
		}
	}

	if r.Status != "" {
		validStatuses := []string{string(StatusActive), string(StatusInactive)}
		if !validator.IsInSlice(r.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: active, inactive",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ID                   string  `json:"-"`
	Name                 *string `json:"name,omitempty"`
	EntryTime            *string `json:"entry_time,omitempty"`
	ExitTime             *string `json:"exit_time,omitempty"`
	BreakStart           *string `json:"break_start,omitempty"`
	BreakEnd             *string `json:"break_end,omitempty"`
	BreakDurationMinutes *int    `json:"break_duration,omitempty"`
	WorkingDays          *string `json:"working_days,omitempty"`
	Status               *string `json:"status,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "shift id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "shift name must not be empty",
		})
	}

	for field, value := range map[string]*string{
		"entry_time":  r.EntryTime,
		"exit_time":   r.ExitTime,
		"break_start": r.BreakStart,
		"break_end":   r.BreakEnd,
	} {
		if value != nil && !validator.IsValidTimeOfDay(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
		}
	}

	if r.WorkingDays != nil {
		validDays := []string{string(WorkingDaysMonSat), string(WorkingDaysMonFri)}
		if !validator.IsInSlice(*r.WorkingDays, validDays) {
			errs = append(errs, validator.ValidationError{
				Field:   "working_days",
				Message: "working_days must be one of: monday-saturday, monday-friday",
			})
		}
	}

	if r.Status != nil {
		validStatuses := []string{string(StatusActive), string(StatusInactive)}
		if !validator.IsInSlice(*r.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: active, inactive",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	EntryTime            string `json:"entry_time"`
	ExitTime             string `json:"exit_time"`
	BreakStart           string `json:"break_start"`
	BreakEnd             string `json:"break_end"`
	BreakDurationMinutes int    `json:"break_duration"`
	WorkingDays          string `json:"working_days"`
	Status               string `json:"status"`
	CreatedAt            string `json:"created_at"`
	UpdatedAt            string `json:"updated_at"`
}

type ListShiftsResponse struct {
	TotalCount int64           `json:"total_count"`
	Shifts     []ShiftResponse `json:"shifts"`
}

// ToResponse converts a Shift entity to its API shape.
func ToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:                   s.ID,
		Name:                 s.Name,
		EntryTime:            s.EntryTime,
		ExitTime:             s.ExitTime,
		BreakStart:           s.BreakStart,
		BreakEnd:             s.BreakEnd,
		BreakDurationMinutes: s.BreakDurationMinutes,
		WorkingDays:          string(s.WorkingDays),
		Status:               string(s.Status),
		CreatedAt:            s.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:            s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
