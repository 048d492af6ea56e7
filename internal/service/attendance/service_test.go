package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========================================
// Fakes
// ========================================

type passTx struct{}

func (passTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range f.records {
		if dayKey(existing.EmployeeID, existing.Date) == dayKey(att.EmployeeID, att.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	att.CreatedAt = att.CheckIn
	att.UpdatedAt = att.CheckIn
	stored := att
	f.records[att.ID] = &stored
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	att, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return *att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	for _, att := range f.records {
		if dayKey(att.EmployeeID, att.Date) == dayKey(employeeID, date) {
			copied := *att
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) CountLateInRange(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	count := 0
	for _, att := range f.records {
		if att.EmployeeID == employeeID && att.Status == attendance.StatusLate &&
			!att.Date.Before(start) && att.Date.Before(end) {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttendanceRepo) SetCheckOut(ctx context.Context, id string, checkOut time.Time, notes *string) error {
	att, ok := f.records[id]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	if att.CheckOut != nil {
		return attendance.ErrAlreadyCheckedOut
	}
	att.CheckOut = &checkOut
	if notes != nil {
		att.Notes = notes
	}
	return nil
}

func (f *fakeAttendanceRepo) SetDressing(ctx context.Context, id string, dressing attendance.Dressing) error {
	att, ok := f.records[id]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	att.Dressing = dressing
	return nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if filter.EmployeeID != nil && att.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, *att)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) StatusCountsInRange(ctx context.Context, employeeID string, start, end time.Time) (map[attendance.Status]int, error) {
	counts := make(map[attendance.Status]int)
	for _, att := range f.records {
		if att.EmployeeID == employeeID && !att.Date.Before(start) && att.Date.Before(end) {
			counts[att.Status]++
		}
	}
	return counts, nil
}

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee

	mirrorCheckIn  *time.Time
	mirrorCheckOut *time.Time
	mirrorStatus   *string
	mirrorCalls    int
}

func newFakeEmployeeRepo(emps ...*employee.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]*employee.Employee)}
	for _, emp := range emps {
		repo.employees[emp.ID] = emp
	}
	return repo
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = &emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return *emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return *emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, role *employee.Role) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if role != nil && emp.Role != *role {
			continue
		}
		out = append(out, *emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = &emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) DebitLeave(ctx context.Context, id string, kind employee.LeaveKind) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if kind == employee.LeaveCasual {
		emp.CasualLeaves--
	} else {
		emp.AnnualLeaves--
	}
	return nil
}

func (f *fakeEmployeeRepo) SetDayMirror(ctx context.Context, id string, checkIn, checkOut *time.Time, status *string) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.mirrorCheckIn = checkIn
	f.mirrorCheckOut = checkOut
	f.mirrorStatus = status
	f.mirrorCalls++
	return nil
}

func (f *fakeEmployeeRepo) NextEmployeeCode(ctx context.Context) (string, error) {
	return fmt.Sprintf("EMP%02d", len(f.employees)+1), nil
}

// ========================================
// Helpers
// ========================================

var karachi = mustLoadLocation("Asia/Karachi")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func authedContext(t *testing.T, employeeID string, role employee.Role) context.Context {
	t.Helper()
	token, err := jwt.NewBuilder().
		Claim("employee_id", employeeID).
		Claim("role", string(role)).
		Build()
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func testEmployee(id string) *employee.Employee {
	return &employee.Employee{
		ID:           id,
		Email:        id + "@example.com",
		FullName:     "Test Employee",
		Role:         employee.RoleEmployee,
		ShiftName:    "Morning",
		EntryTime:    "09:00",
		ExitTime:     "18:00",
		AnnualLeaves: 12,
		CasualLeaves: 12,
	}
}

type engineFixture struct {
	svc        attendance.AttendanceService
	attRepo    *fakeAttendanceRepo
	empRepo    *fakeEmployeeRepo
	clk        *clock.Fixed
	ctx        context.Context
	employeeID string
}

func newEngineFixture(t *testing.T, now time.Time, allowNegative bool, emps ...*employee.Employee) *engineFixture {
	t.Helper()
	if len(emps) == 0 {
		emps = []*employee.Employee{testEmployee("emp-1")}
	}
	attRepo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo(emps...)
	clk := clock.NewFixed(now)
	svc := NewAttendanceService(attRepo, empRepo, passTx{}, clk, karachi, allowNegative)
	return &engineFixture{
		svc:        svc,
		attRepo:    attRepo,
		empRepo:    empRepo,
		clk:        clk,
		ctx:        authedContext(t, emps[0].ID, emps[0].Role),
		employeeID: emps[0].ID,
	}
}

// at builds a Karachi instant on the given day of June 2025.
func at(day, hour, min int) time.Time {
	return time.Date(2025, time.June, day, hour, min, 0, 0, karachi)
}

// ========================================
// Status classification
// ========================================

func TestCheckIn_WithinGraceIsPresent(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want attendance.Status
	}{
		{"before entry", at(2, 8, 30), attendance.StatusPresent},
		{"exactly at entry", at(2, 9, 0), attendance.StatusPresent},
		{"exactly at grace boundary", at(2, 9, 5), attendance.StatusPresent},
		{"one minute past grace", at(2, 9, 6), attendance.StatusLate},
		{"hours past grace", at(2, 13, 0), attendance.StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEngineFixture(t, tt.now, true)

			resp, err := f.svc.CheckIn(f.ctx, attendance.CheckInRequest{})
			require.NoError(t, err)
			assert.Equal(t, string(tt.want), resp.Status)
		})
	}
}

func TestCheckIn_SecondScanSameDayRejected(t *testing.T) {
	f := newEngineFixture(t, at(2, 9, 0), true)

	_, err := f.svc.CheckIn(f.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	f.clk.Set(at(2, 14, 0))
	_, err = f.svc.CheckIn(f.ctx, attendance.CheckInRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_NextDayAllowedAgain(t *testing.T) {
	f := newEngineFixture(t, at(2, 9, 0), true)

	_, err := f.svc.CheckIn(f.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	f.clk.Set(at(3, 9, 0))
	resp, err := f.svc.CheckIn(f.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-03", resp.Date)
}

func TestCheckIn_WithoutShiftAssignment(t *testing.T) {
	emp := testEmployee("emp-1")
	emp.EntryTime = ""
	f := newEngineFixture(t, at(2, 9, 0), true, emp)

	_, err := f.svc.CheckIn(f.ctx, attendance.CheckInRequest{})
	assert.ErrorIs(t, err, employee.ErrShiftNotAssigned)
}

func TestCheckIn_InvalidDressingRejected(t *testing.T) {
	f := newEngineFixture(t, at(2, 9, 0), true)

	_, err := f.svc.CheckIn(f.ctx, attendance.CheckInRequest{Dressing: "pajamas"})
	require.Error(t, err)
	assert.Empty(t, f.attRepo.records)
}

func TestCheckIn_EmptyDressingDefaultsToNone(t *testing.T) {
	f := newEngineFixture(t, at(2, 9, 0), true)

	resp, err := f.svc.CheckIn(f.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.DressingNone), resp.Dressing)
}

func TestCheckIn_UpdatesDayMirror(t *testing.T) {
	f := newEngineFixture(t, at(2, 9, 0), true)

	_, err := f.svc.CheckIn(f.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	require.NotNil(t, f.empRepo.mirrorCheckIn)
	assert.Nil(t, f.empRepo.mirrorCheckOut)
	require.NotNil(t, f.empRepo.mirrorStatus)
	assert.Equal(t, "present", *f.empRepo.mirrorStatus)
}

// ========================================
// Late-penalty accrual
// ========================================

// lateCheckIn records a late arrival on the given June day.
func lateCheckIn(t *testing.T, f *engineFixture, day int) {
	t.Helper()
	f.clk.Set(at(day, 10, 0))
	resp, err := f.svc.CheckIn(f.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)
	require.Equal(t, string(attendance.StatusLate), resp.Status)
}

func TestLatePenalty_EveryThirdLateDebitsOneLeave(t *testing.T) {
	f := newEngineFixture(t, at(1, 10, 0), true)

	lateCheckIn(t, f, 2)
	lateCheckIn(t, f, 3)
	emp, _ := f.empRepo.GetByID(f.ctx, f.employeeID)
	assert.Equal(t, 12, emp.CasualLeaves, "no debit before the third late")

	lateCheckIn(t, f, 4)
	emp, _ = f.empRepo.GetByID(f.ctx, f.employeeID)
	assert.Equal(t, 11, emp.CasualLeaves, "third late debits one casual leave")

	lateCheckIn(t, f, 5)
	lateCheckIn(t, f, 6)
	emp, _ = f.empRepo.GetByID(f.ctx, f.employeeID)
	assert.Equal(t, 11, emp.CasualLeaves, "fourth and fifth lates debit nothing")

	lateCheckIn(t, f, 7)
	emp, _ = f.empRepo.GetByID(f.ctx, f.employeeID)
	assert.Equal(t, 10, emp.CasualLeaves, "sixth late debits again")
}

func TestLatePenalty_FallsBackToAnnualWhenCasualExhausted(t *testing.T) {
	emp := testEmployee("emp-1")
	emp.CasualLeaves = 0
	f := newEngineFixture(t, at(1, 10, 0), true, emp)

	lateCheckIn(t, f, 2)
	lateCheckIn(t, f, 3)
	lateCheckIn(t, f, 4)

	got, _ := f.empRepo.GetByID(f.ctx, f.employeeID)
	assert.Equal(t, 0, got.CasualLeaves)
	assert.Equal(t, 11, got.AnnualLeaves)
}

func TestLatePenalty_NegativeAnnualWhenAllowed(t *testing.T) {
	emp := testEmployee("emp-1")
	emp.CasualLeaves = 0
	emp.AnnualLeaves = 0
	f := newEngineFixture(t, at(1, 10, 0), true, emp)

	lateCheckIn(t, f, 2)
	lateCheckIn(t, f, 3)
	lateCheckIn(t, f, 4)

	got, _ := f.empRepo.GetByID(f.ctx, f.employeeID)
	assert.Equal(t, -1, got.AnnualLeaves)
}

func TestLatePenalty_SkippedWhenNegativeDisallowed(t *testing.T) {
	emp := testEmployee("emp-1")
	emp.CasualLeaves = 0
	emp.AnnualLeaves = 0
	f := newEngineFixture(t, at(1, 10, 0), false, emp)

	lateCheckIn(t, f, 2)
	lateCheckIn(t, f, 3)
	lateCheckIn(t, f, 4)

	got, _ := f.empRepo.GetByID(f.ctx, f.employeeID)
	assert.Equal(t, 0, got.CasualLeaves)
	assert.Equal(t, 0, got.AnnualLeaves)
}

func TestLatePenalty_CountResetsAcrossMonths(t *testing.T) {
	f := newEngineFixture(t, at(1, 10, 0), true)

	lateCheckIn(t, f, 29)
	lateCheckIn(t, f, 30)

	// Two lates carried into July must not combine with June's count.
	f.clk.Set(time.Date(2025, time.July, 1, 10, 0, 0, 0, karachi))
	resp, err := f.svc.CheckIn(f.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)
	require.Equal(t, string(attendance.StatusLate), resp.Status)

	emp, _ := f.empRepo.GetByID(f.ctx, f.employeeID)
	assert.Equal(t, 12, emp.CasualLeaves)
}

// ========================================
// Check-out
// ========================================

func TestCheckOut_ClosesOpenRecord(t *testing.T) {
	f := newEngineFixture(t, at(2, 9, 0), true)

	_, err := f.svc.CheckIn(f.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	f.clk.Set(at(2, 18, 0))
	resp, err := f.svc.CheckOut(f.ctx, attendance.CheckOutRequest{})
	require.NoError(t, err)
	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status, "check-out never rewrites status")
}

func TestCheckOut_WithoutOpenRecord(t *testing.T) {
	f := newEngineFixture(t, at(2, 18, 0), true)

	_, err := f.svc.CheckOut(f.ctx, attendance.CheckOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_SecondAttemptRejected(t *testing.T) {
	f := newEngineFixture(t, at(2, 9, 0), true)

	_, err := f.svc.CheckIn(f.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	f.clk.Set(at(2, 18, 0))
	_, err = f.svc.CheckOut(f.ctx, attendance.CheckOutRequest{})
	require.NoError(t, err)

	f.clk.Set(at(2, 19, 0))
	_, err = f.svc.CheckOut(f.ctx, attendance.CheckOutRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

// ========================================
// Manual entries
// ========================================

func TestManualCheckIn_BackfilledLateCountsTowardPenalty(t *testing.T) {
	admin := testEmployee("admin-1")
	admin.Role = employee.RoleAdmin
	worker := testEmployee("emp-1")
	f := newEngineFixture(t, at(10, 12, 0), true, worker, admin)
	adminCtx := authedContext(t, admin.ID, employee.RoleAdmin)

	for day := 2; day <= 4; day++ {
		ts := at(day, 10, 0).Format(time.RFC3339)
		resp, err := f.svc.ManualCheckIn(adminCtx, attendance.ManualCheckInRequest{
			EmployeeID: worker.ID,
			Timestamp:  ts,
		})
		require.NoError(t, err)
		assert.Equal(t, string(attendance.StatusLate), resp.Status)
	}

	got, _ := f.empRepo.GetByID(f.ctx, worker.ID)
	assert.Equal(t, 11, got.CasualLeaves)
}

func TestManualCheckIn_PastDayDoesNotTouchMirror(t *testing.T) {
	f := newEngineFixture(t, at(10, 12, 0), true)

	ts := at(3, 9, 0).Format(time.RFC3339)
	_, err := f.svc.ManualCheckIn(f.ctx, attendance.ManualCheckInRequest{
		EmployeeID: f.employeeID,
		Timestamp:  ts,
	})
	require.NoError(t, err)
	assert.Zero(t, f.empRepo.mirrorCalls)
}

func TestManualCheckOut_BeforeCheckInRejected(t *testing.T) {
	f := newEngineFixture(t, at(2, 9, 0), true)

	_, err := f.svc.CheckIn(f.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	_, err = f.svc.ManualCheckOut(f.ctx, attendance.ManualCheckOutRequest{
		EmployeeID: f.employeeID,
		Timestamp:  at(2, 8, 0).Format(time.RFC3339),
	})
	assert.Error(t, err)
}

// ========================================
// Dressing and access scoping
// ========================================

func TestSetDressing_Updates(t *testing.T) {
	f := newEngineFixture(t, at(2, 9, 0), true)

	created, err := f.svc.CheckIn(f.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	resp, err := f.svc.SetDressing(f.ctx, attendance.SetDressingRequest{
		ID:       created.ID,
		Dressing: "formal",
	})
	require.NoError(t, err)
	assert.Equal(t, "formal", resp.Dressing)
}

func TestSetDressing_InvalidValue(t *testing.T) {
	f := newEngineFixture(t, at(2, 9, 0), true)

	created, err := f.svc.CheckIn(f.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	_, err = f.svc.SetDressing(f.ctx, attendance.SetDressingRequest{
		ID:       created.ID,
		Dressing: "beachwear",
	})
	assert.ErrorIs(t, err, attendance.ErrInvalidDressing)
}

func TestGetAttendance_OtherEmployeeForbidden(t *testing.T) {
	worker := testEmployee("emp-1")
	other := testEmployee("emp-2")
	f := newEngineFixture(t, at(2, 9, 0), true, worker, other)

	created, err := f.svc.CheckIn(f.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	otherCtx := authedContext(t, other.ID, employee.RoleEmployee)
	_, err = f.svc.GetAttendance(otherCtx, created.ID)
	assert.ErrorIs(t, err, attendance.ErrUnauthorized)
}

func TestListAttendance_NonAdminScopedToSelf(t *testing.T) {
	worker := testEmployee("emp-1")
	other := testEmployee("emp-2")
	f := newEngineFixture(t, at(2, 9, 0), true, worker, other)

	_, err := f.svc.CheckIn(f.ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	otherCtx := authedContext(t, other.ID, employee.RoleEmployee)
	_, err = f.svc.CheckIn(otherCtx, attendance.CheckInRequest{})
	require.NoError(t, err)

	// Even when asking for someone else's records, a non-admin only sees
	// their own.
	resp, err := f.svc.ListAttendance(otherCtx, attendance.AttendanceFilter{
		EmployeeID: &worker.ID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Attendances, 1)
	assert.Equal(t, other.ID, resp.Attendances[0].EmployeeID)
}
