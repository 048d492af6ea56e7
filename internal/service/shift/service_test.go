package shift

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShiftRepo struct {
	shifts map[string]*shift.Shift
	nextID int
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]*shift.Shift)}
}

func (f *fakeShiftRepo) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	for _, existing := range f.shifts {
		if strings.EqualFold(existing.Name, s.Name) {
			return shift.Shift{}, shift.ErrShiftNameExists
		}
	}
	f.nextID++
	s.ID = fmt.Sprintf("shift-%d", f.nextID)
	stored := s
	f.shifts[s.ID] = &stored
	return s, nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return *s, nil
}

func (f *fakeShiftRepo) GetByName(ctx context.Context, name string) (shift.Shift, error) {
	for _, s := range f.shifts {
		if strings.EqualFold(s.Name, name) {
			return *s, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) List(ctx context.Context, activeOnly bool) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range f.shifts {
		if activeOnly && s.Status != shift.StatusActive {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, s shift.Shift) error {
	if _, ok := f.shifts[s.ID]; !ok {
		return shift.ErrShiftNotFound
	}
	f.shifts[s.ID] = &s
	return nil
}

func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.shifts[id]; !ok {
		return shift.ErrShiftNotFound
	}
	delete(f.shifts, id)
	return nil
}

func TestCreateShift_AppliesDefaults(t *testing.T) {
	svc := NewShiftService(newFakeShiftRepo())

	resp, err := svc.CreateShift(context.Background(), shift.CreateShiftRequest{Name: "Morning"})
	require.NoError(t, err)

	assert.Equal(t, "09:00", resp.EntryTime)
	assert.Equal(t, "18:00", resp.ExitTime)
	assert.Equal(t, 60, resp.BreakDurationMinutes)
	assert.Equal(t, string(shift.WorkingDaysMonSat), resp.WorkingDays)
	assert.Equal(t, string(shift.StatusActive), resp.Status)
}

func TestCreateShift_NameUniquenessIsCaseInsensitive(t *testing.T) {
	svc := NewShiftService(newFakeShiftRepo())

	_, err := svc.CreateShift(context.Background(), shift.CreateShiftRequest{Name: "Morning"})
	require.NoError(t, err)

	_, err = svc.CreateShift(context.Background(), shift.CreateShiftRequest{Name: "morning"})
	assert.ErrorIs(t, err, shift.ErrShiftNameExists)
}

func TestUpdateShift_RenameToTakenNameRejected(t *testing.T) {
	svc := NewShiftService(newFakeShiftRepo())

	_, err := svc.CreateShift(context.Background(), shift.CreateShiftRequest{Name: "Morning"})
	require.NoError(t, err)
	evening, err := svc.CreateShift(context.Background(), shift.CreateShiftRequest{Name: "Evening"})
	require.NoError(t, err)

	name := "MORNING"
	_, err = svc.UpdateShift(context.Background(), shift.UpdateShiftRequest{ID: evening.ID, Name: &name})
	assert.ErrorIs(t, err, shift.ErrShiftNameExists)
}

func TestListShifts_ActiveOnlyFiltersInactive(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)

	_, err := svc.CreateShift(context.Background(), shift.CreateShiftRequest{Name: "Morning"})
	require.NoError(t, err)
	_, err = svc.CreateShift(context.Background(), shift.CreateShiftRequest{Name: "Night", Status: string(shift.StatusInactive)})
	require.NoError(t, err)

	all, err := svc.ListShifts(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all.Shifts, 2)

	active, err := svc.ListShifts(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, active.Shifts, 1)
	assert.Equal(t, "Morning", active.Shifts[0].Name)
}

func TestEnsureDefaults_IsIdempotent(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)

	require.NoError(t, svc.EnsureDefaults(context.Background()))
	first := len(repo.shifts)
	require.NoError(t, svc.EnsureDefaults(context.Background()))

	assert.Equal(t, first, len(repo.shifts))
	_, err := repo.GetByName(context.Background(), "Morning")
	assert.NoError(t, err)
}
