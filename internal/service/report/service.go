package report

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/pkg/clock"
)

type reportService struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	clock          clock.Clock
	loc            *time.Location
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
	loc *time.Location,
) report.ReportService {
	return &reportService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clk,
		loc:            loc,
	}
}

// TodayBoard implements report.ReportService. Days without a record are
// classified pending until an hour past the employee's entry time, then
// absent; neither classification is ever written back.
func (s *reportService) TodayBoard(ctx context.Context) (report.TodayBoardResponse, error) {
	now := s.clock.Now()
	day := clock.DayOf(now, s.loc)

	role := employee.RoleEmployee
	employees, err := s.employeeRepo.List(ctx, &role)
	if err != nil {
		return report.TodayBoardResponse{}, err
	}

	resp := report.TodayBoardResponse{
		Date:    day.Format("2006-01-02"),
		Entries: make([]report.TodayBoardEntry, 0, len(employees)),
	}

	for _, emp := range employees {
		entry := report.TodayBoardEntry{
			EmployeeID:   emp.ID,
			EmployeeCode: emp.EmployeeCode,
			FullName:     emp.FullName,
			Department:   emp.Department,
			ShiftName:    emp.ShiftName,
			EntryTime:    emp.EntryTime,
			ExitTime:     emp.ExitTime,
			Dressing:     string(attendance.DressingNone),
		}

		record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, day)
		if err != nil {
			return report.TodayBoardResponse{}, err
		}

		scheduledEntry := day
		if emp.EntryTime != "" {
			minutes, err := clock.ParseTimeOfDay(emp.EntryTime)
			if err != nil {
				return report.TodayBoardResponse{}, err
			}
			scheduledEntry = clock.At(day, minutes, s.loc)
		}

		status := attendance.ClassifyToday(scheduledEntry, record, now)
		entry.Status = string(status)

		if record != nil {
			checkIn := record.CheckIn.In(s.loc).Format(time.RFC3339)
			entry.CheckIn = &checkIn
			if record.CheckOut != nil {
				checkOut := record.CheckOut.In(s.loc).Format(time.RFC3339)
				entry.CheckOut = &checkOut
			}
			entry.Dressing = string(record.Dressing)
		}

		switch status {
		case attendance.StatusPresent, attendance.StatusLate:
			resp.Present++
		case attendance.StatusAbsent:
			resp.Absent++
		case attendance.StatusLeave:
			resp.OnLeave++
		case attendance.StatusPending:
			resp.Pending++
		}

		resp.Entries = append(resp.Entries, entry)
	}

	return resp, nil
}

// MonthlyStats implements report.ReportService.
func (s *reportService) MonthlyStats(ctx context.Context, month string) (report.MonthlyStatsResponse, error) {
	anchor := s.clock.Now()
	if month != "" {
		parsed, err := time.ParseInLocation("2006-01", month, s.loc)
		if err != nil {
			return report.MonthlyStatsResponse{}, fmt.Errorf("invalid month %q: expected YYYY-MM", month)
		}
		anchor = parsed
	}

	start, end := clock.MonthBounds(anchor, s.loc)

	role := employee.RoleEmployee
	employees, err := s.employeeRepo.List(ctx, &role)
	if err != nil {
		return report.MonthlyStatsResponse{}, err
	}

	resp := report.MonthlyStatsResponse{
		Month: start.Format("2006-01"),
		Stats: make([]report.MonthlyEmployeeStats, 0, len(employees)),
	}

	for _, emp := range employees {
		counts, err := s.attendanceRepo.StatusCountsInRange(ctx, emp.ID, start, end)
		if err != nil {
			return report.MonthlyStatsResponse{}, err
		}

		resp.Stats = append(resp.Stats, report.MonthlyEmployeeStats{
			EmployeeID:   emp.ID,
			EmployeeCode: emp.EmployeeCode,
			FullName:     emp.FullName,
			Present:      counts[attendance.StatusPresent],
			Late:         counts[attendance.StatusLate],
			Absent:       counts[attendance.StatusAbsent],
			Leave:        counts[attendance.StatusLeave],
			AnnualLeaves: emp.AnnualLeaves,
			CasualLeaves: emp.CasualLeaves,
		})
	}

	return resp, nil
}
