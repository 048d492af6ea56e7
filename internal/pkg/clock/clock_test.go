package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	minutes, err := ParseTimeOfDay("09:00")
	require.NoError(t, err)
	assert.Equal(t, 540, minutes)

	minutes, err = ParseTimeOfDay("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)

	minutes, err = ParseTimeOfDay("23:59")
	require.NoError(t, err)
	assert.Equal(t, 23*60+59, minutes)

	_, err = ParseTimeOfDay("9am")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
}

func TestAt(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Karachi")
	require.NoError(t, err)

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)
	instant := At(day, 540, loc)
	assert.Equal(t, time.Date(2024, 3, 15, 9, 0, 0, 0, loc), instant)
}

func TestDayOf(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Karachi")
	require.NoError(t, err)

	instant := time.Date(2024, 3, 15, 23, 45, 12, 0, loc)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, loc), DayOf(instant, loc))

	// A UTC instant late in the evening is already the next day in Karachi.
	utcEvening := time.Date(2024, 3, 15, 21, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, loc), DayOf(utcEvening, loc))
}

func TestSameDay(t *testing.T) {
	loc := time.UTC
	a := time.Date(2024, 3, 15, 0, 0, 1, 0, loc)
	b := time.Date(2024, 3, 15, 23, 59, 59, 0, loc)
	c := time.Date(2024, 3, 16, 0, 0, 0, 0, loc)

	assert.True(t, SameDay(a, b, loc))
	assert.False(t, SameDay(b, c, loc))
}

func TestMonthBounds(t *testing.T) {
	loc := time.UTC
	start, end := MonthBounds(time.Date(2024, 1, 31, 13, 0, 0, 0, loc), loc)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, loc), end)
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2024, 3, 15, 9, 4, 0, 0, time.UTC)
	clk := NewFixed(instant)
	assert.Equal(t, instant, clk.Now())

	later := instant.Add(2 * time.Minute)
	clk.Set(later)
	assert.Equal(t, later, clk.Now())
}
