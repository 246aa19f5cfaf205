package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t.Add(15 * time.Hour)
}

func TestWeekRangeStartsOnSunday(t *testing.T) {
	assert.Equal(t, DateRange{Start: "2025-01-05", End: "2025-01-11"}, WeekRange(day("2025-01-08")))
	assert.Equal(t, DateRange{Start: "2025-01-05", End: "2025-01-11"}, WeekRange(day("2025-01-05")))
	assert.Equal(t, DateRange{Start: "2025-01-05", End: "2025-01-11"}, WeekRange(day("2025-01-11")))
	// crosses a year boundary
	assert.Equal(t, DateRange{Start: "2024-12-29", End: "2025-01-04"}, WeekRange(day("2025-01-01")))
}

func TestMonthRange(t *testing.T) {
	assert.Equal(t, DateRange{Start: "2024-02-01", End: "2024-02-29"}, MonthRange(day("2024-02-10")))
	assert.Equal(t, DateRange{Start: "2025-12-01", End: "2025-12-31"}, MonthRange(day("2025-12-31")))
}

func TestLastNDaysOldestFirst(t *testing.T) {
	assert.Equal(t, []string{"2025-02-28", "2025-03-01", "2025-03-02"}, LastNDays(day("2025-03-02"), 3))
	assert.Empty(t, LastNDays(day("2025-03-02"), 0))
	assert.Len(t, LastNDays(day("2025-03-02"), 30), 30)
}

func TestDaysBetweenIsAbsolute(t *testing.T) {
	n, err := DaysBetween("2025-01-10", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	n, err = DaysBetween("2024-02-28", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = DaysBetween("2025-1-1", "2025-01-02")
	assert.Error(t, err)
}

func TestCalendarGrid(t *testing.T) {
	g := CalendarGrid(2025, time.February)
	assert.Equal(t, 28, g.DaysInMonth)
	assert.Equal(t, 6, g.StartingDayOfWeek) // Saturday

	g = CalendarGrid(2024, time.February)
	assert.Equal(t, 29, g.DaysInMonth)
	assert.Equal(t, 4, g.StartingDayOfWeek)
	assert.Equal(t, DateRange{Start: "2024-02-01", End: "2024-02-29"}, g.Range())
}

func TestDateRangeContainsIsInclusive(t *testing.T) {
	r := DateRange{Start: "2025-01-01", End: "2025-01-31"}
	assert.True(t, r.Contains("2025-01-01"))
	assert.True(t, r.Contains("2025-01-31"))
	assert.False(t, r.Contains("2024-12-31"))
	assert.False(t, r.Contains("2025-02-01"))
}

func TestCountdownTo(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 30, 0, 0, time.UTC)

	c, err := CountdownTo("2025-01-03", now)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Days)
	assert.Equal(t, 13, c.Hours)
	assert.Equal(t, 30, c.Minutes)
	assert.False(t, c.Passed)

	c, err = CountdownTo("2024-12-15", now)
	require.NoError(t, err)
	assert.True(t, c.Passed)
	assert.Zero(t, c.Days)
	assert.Zero(t, c.Hours)
	assert.Zero(t, c.Minutes)
}

func TestAddDaysAndWeekday(t *testing.T) {
	d, err := AddDays("2024-12-31", 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", d)

	wd, err := WeekdayOf("2025-01-05")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, wd)
}
