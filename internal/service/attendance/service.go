package attendance

import (
	"context"
	"math"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/clock"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

// Transactor runs fn atomically. The postgresql TxManager satisfies it in
// production; tests substitute a pass-through.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// attendanceService is the status engine. All instants come from the injected
// clock and all day boundaries are computed in the configured location, so
// behavior around midnight and the grace boundary is deterministic under test.
type attendanceService struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	tx             Transactor
	clock          clock.Clock
	loc            *time.Location

	// allowNegativeBalance lets the penalty debit drive a leave counter below
	// zero instead of skipping the debit when both counters are exhausted.
	allowNegativeBalance bool
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	tx Transactor,
	clk clock.Clock,
	loc *time.Location,
	allowNegativeBalance bool,
) attendance.AttendanceService {
	return &attendanceService{
		attendanceRepo:       attendanceRepo,
		employeeRepo:         employeeRepo,
		tx:                   tx,
		clock:                clk,
		loc:                  loc,
		allowNegativeBalance: allowNegativeBalance,
	}
}

func identityFromContext(ctx context.Context) (employeeID string, role employee.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}

	id, _ := claims["employee_id"].(string)
	if id == "" {
		return "", "", auth.ErrEmployeeContextRequired
	}

	roleStr, _ := claims["role"].(string)
	return id, employee.Role(roleStr), nil
}

// CheckIn implements attendance.AttendanceService.
func (s *attendanceService) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, _, err := identityFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.recordCheckIn(ctx, employeeID, s.clock.Now(), req.Note, req.Dressing)
}

// ManualCheckIn implements attendance.AttendanceService. The instant is
// admin-supplied; status and penalty logic are identical to CheckIn so
// backfilled records are indistinguishable from scanned ones.
func (s *attendanceService) ManualCheckIn(ctx context.Context, req attendance.ManualCheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	at, _ := validator.IsValidDateTime(req.Timestamp)

	return s.recordCheckIn(ctx, req.EmployeeID, at, req.Note, req.Dressing)
}

// recordCheckIn is the core of the engine: classify against the shift entry
// time plus grace, and on every Nth late arrival in the calendar month debit
// one leave unit. The record insert, the debit, and the employee's day mirror
// commit in one transaction.
func (s *attendanceService) recordCheckIn(ctx context.Context, employeeID string, at time.Time, note *string, dressingStr string) (attendance.AttendanceResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if emp.EntryTime == "" {
		return attendance.AttendanceResponse{}, employee.ErrShiftNotAssigned
	}

	day := clock.DayOf(at, s.loc)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	entryMinutes, err := clock.ParseTimeOfDay(emp.EntryTime)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	grace := clock.At(day, entryMinutes, s.loc).Add(attendance.GracePeriod)

	status := attendance.StatusPresent
	if at.After(grace) {
		status = attendance.StatusLate
	}

	dressing, err := attendance.ParseDressing(dressingStr)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var created attendance.Attendance
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if status == attendance.StatusLate {
			monthStart, monthEnd := clock.MonthBounds(at, s.loc)
			priorLate, err := s.attendanceRepo.CountLateInRange(ctx, employeeID, monthStart, monthEnd)
			if err != nil {
				return err
			}
			if (priorLate+1)%attendance.LatePenaltyInterval == 0 {
				if err := s.debitLeave(ctx, emp); err != nil {
					return err
				}
			}
		}

		created, err = s.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID: employeeID,
			Date:       day,
			CheckIn:    at.UTC(),
			Status:     status,
			Dressing:   dressing,
			Notes:      note,
		})
		if err != nil {
			return err
		}

		// Mirror only today's record onto the employee row; a backfilled past
		// day must not clobber the current-day projection.
		if clock.SameDay(at, s.clock.Now(), s.loc) {
			checkIn := created.CheckIn
			statusStr := string(status)
			return s.employeeRepo.SetDayMirror(ctx, employeeID, &checkIn, nil, &statusStr)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created.EmployeeName = &emp.FullName
	return toResponse(created), nil
}

// debitLeave takes one unit off the casual counter while it has balance,
// otherwise off the annual counter. When negative balances are disallowed and
// both counters are exhausted the debit is skipped.
func (s *attendanceService) debitLeave(ctx context.Context, emp employee.Employee) error {
	kind := employee.LeaveCasual
	if emp.CasualLeaves <= 0 {
		kind = employee.LeaveAnnual
		if emp.AnnualLeaves <= 0 && !s.allowNegativeBalance {
			return nil
		}
	}
	return s.employeeRepo.DebitLeave(ctx, emp.ID, kind)
}

// CheckOut implements attendance.AttendanceService.
func (s *attendanceService) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	employeeID, _, err := identityFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.recordCheckOut(ctx, employeeID, s.clock.Now(), req.Note)
}

// ManualCheckOut implements attendance.AttendanceService.
func (s *attendanceService) ManualCheckOut(ctx context.Context, req attendance.ManualCheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	at, _ := validator.IsValidDateTime(req.Timestamp)

	return s.recordCheckOut(ctx, req.EmployeeID, at, req.Note)
}

func (s *attendanceService) recordCheckOut(ctx context.Context, employeeID string, at time.Time, note *string) (attendance.AttendanceResponse, error) {
	day := clock.DayOf(at, s.loc)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if existing.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}
	if at.Before(existing.CheckIn) {
		return attendance.AttendanceResponse{}, validator.ValidationErrors{{
			Field:   "timestamp",
			Message: "check-out must not precede check-in",
		}}
	}

	checkOut := at.UTC()
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.attendanceRepo.SetCheckOut(ctx, existing.ID, checkOut, note); err != nil {
			return err
		}

		if clock.SameDay(at, s.clock.Now(), s.loc) {
			checkIn := existing.CheckIn
			statusStr := string(existing.Status)
			return s.employeeRepo.SetDayMirror(ctx, employeeID, &checkIn, &checkOut, &statusStr)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.GetAttendance(ctx, existing.ID)
}

// SetDressing implements attendance.AttendanceService.
func (s *attendanceService) SetDressing(ctx context.Context, req attendance.SetDressingRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	dressing, err := attendance.ParseDressing(req.Dressing)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.attendanceRepo.SetDressing(ctx, req.ID, dressing); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(att), nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *attendanceService) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	callerID, role, err := identityFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if role != employee.RoleAdmin && att.EmployeeID != callerID {
		return attendance.AttendanceResponse{}, attendance.ErrUnauthorized
	}

	return toResponse(att), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *attendanceService) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	callerID, role, err := identityFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	// Non-admin callers only ever see their own history.
	if role != employee.RoleAdmin {
		filter.EmployeeID = &callerID
	}

	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, toResponse(att))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		Attendances: responses,
	}, nil
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date.Format("2006-01-02"),
		CheckIn:    att.CheckIn.Format(time.RFC3339),
		Status:     string(att.Status),
		Dressing:   string(att.Dressing),
		Notes:      att.Notes,
		CreatedAt:  att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  att.UpdatedAt.Format(time.RFC3339),
	}
	if att.CheckOut != nil {
		checkOut := att.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &checkOut
	}
	if att.EmployeeName != nil {
		resp.EmployeeName = *att.EmployeeName
	}
	return resp
}
