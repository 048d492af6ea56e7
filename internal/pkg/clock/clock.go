package clock

import (
	"fmt"
	"time"
)

// Clock provides the current instant. Services take a Clock instead of
// calling time.Now so that tests can pin arbitrary instants.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// NewSystemClock returns a Clock backed by the wall clock.
func NewSystemClock() Clock {
	return systemClock{}
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	Instant time.Time
}

func (f *Fixed) Now() time.Time {
	return f.Instant
}

// Set moves the fixed clock to a new instant.
func (f *Fixed) Set(t time.Time) {
	f.Instant = t
}

// NewFixed returns a Clock pinned to t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{Instant: t}
}

// ParseTimeOfDay parses a "HH:MM" wall-clock string into minutes since
// midnight. Shift entry/exit times are daily recurring rules, not instants,
// so they are stored and exchanged in this form.
func ParseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// At composes an instant from a calendar day and minutes since midnight in
// the given location.
func At(day time.Time, minutesSinceMidnight int, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, minutesSinceMidnight, 0, 0, loc)
}

// DayOf truncates an instant to its calendar day in the given location.
func DayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// SameDay reports whether two instants fall on the same calendar day in the
// given location.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return DayOf(a, loc).Equal(DayOf(b, loc))
}

// MonthBounds returns the first day of t's calendar month and the first day
// of the following month, in the given location.
func MonthBounds(t time.Time, loc *time.Location) (start, end time.Time) {
	local := t.In(loc)
	start = time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, 0)
	return start, end
}
