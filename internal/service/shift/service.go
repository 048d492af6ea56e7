package shift

import (
	"context"
	"errors"
	"log/slog"

	"github.com/attendly/attendance-backend-go/internal/domain/shift"
	"github.com/attendly/attendance-backend-go/internal/fixtures"
)

type shiftService struct {
	shiftRepo shift.ShiftRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository) shift.ShiftService {
	return &shiftService{shiftRepo: shiftRepo}
}

// CreateShift implements shift.ShiftService.
func (s *shiftService) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}
	req.ApplyDefaults()

	// Names are compared case-insensitively; "morning" and "Morning" are the
	// same policy.
	if _, err := s.shiftRepo.GetByName(ctx, req.Name); err == nil {
		return shift.ShiftResponse{}, shift.ErrShiftNameExists
	} else if !errors.Is(err, shift.ErrShiftNotFound) {
		return shift.ShiftResponse{}, err
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		Name:                 req.Name,
		EntryTime:            req.EntryTime,
		ExitTime:             req.ExitTime,
		BreakStart:           req.BreakStart,
		BreakEnd:             req.BreakEnd,
		BreakDurationMinutes: req.BreakDurationMinutes,
		WorkingDays:          shift.WorkingDays(req.WorkingDays),
		Status:               shift.Status(req.Status),
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToResponse(created), nil
}

// ListShifts implements shift.ShiftService.
func (s *shiftService) ListShifts(ctx context.Context, activeOnly bool) (shift.ListShiftsResponse, error) {
	shifts, err := s.shiftRepo.List(ctx, activeOnly)
	if err != nil {
		return shift.ListShiftsResponse{}, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.ToResponse(sh))
	}

	return shift.ListShiftsResponse{
		TotalCount: int64(len(responses)),
		Shifts:     responses,
	}, nil
}

// GetShift implements shift.ShiftService.
func (s *shiftService) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(sh), nil
}

// UpdateShift implements shift.ShiftService.
func (s *shiftService) UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.Name != nil && *req.Name != sh.Name {
		if existing, err := s.shiftRepo.GetByName(ctx, *req.Name); err == nil && existing.ID != sh.ID {
			return shift.ShiftResponse{}, shift.ErrShiftNameExists
		} else if err != nil && !errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ShiftResponse{}, err
		}
		sh.Name = *req.Name
	}
	if req.EntryTime != nil {
		sh.EntryTime = *req.EntryTime
	}
	if req.ExitTime != nil {
		sh.ExitTime = *req.ExitTime
	}
	if req.BreakStart != nil {
		sh.BreakStart = *req.BreakStart
	}
	if req.BreakEnd != nil {
		sh.BreakEnd = *req.BreakEnd
	}
	if req.BreakDurationMinutes != nil {
		sh.BreakDurationMinutes = *req.BreakDurationMinutes
	}
	if req.WorkingDays != nil {
		sh.WorkingDays = shift.WorkingDays(*req.WorkingDays)
	}
	if req.Status != nil {
		sh.Status = shift.Status(*req.Status)
	}

	if err := s.shiftRepo.Update(ctx, sh); err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToResponse(sh), nil
}

// DeleteShift implements shift.ShiftService.
func (s *shiftService) DeleteShift(ctx context.Context, id string) error {
	return s.shiftRepo.Delete(ctx, id)
}

// EnsureDefaults implements shift.ShiftService. Idempotent: policies that
// already exist by name are left alone.
func (s *shiftService) EnsureDefaults(ctx context.Context) error {
	for _, def := range fixtures.DefaultShifts() {
		_, err := s.shiftRepo.GetByName(ctx, def.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, shift.ErrShiftNotFound) {
			return err
		}
		if _, err := s.shiftRepo.Create(ctx, def); err != nil {
			return err
		}
		slog.Info("seeded default shift policy", "name", def.Name)
	}
	return nil
}
