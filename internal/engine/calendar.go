package engine

import (
	"time"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

type Intensity string

const (
	IntensityNone   Intensity = "no-study"
	IntensityLight  Intensity = "light"
	IntensityMedium Intensity = "medium"
	IntensityHeavy  Intensity = "heavy"
)

// ClassifyHours buckets a day's hours: 0, (0,5), [5,8), [8,inf).
func ClassifyHours(hours float64) Intensity {
	switch {
	case hours <= 0:
		return IntensityNone
	case hours < 5:
		return IntensityLight
	case hours < 8:
		return IntensityMedium
	default:
		return IntensityHeavy
	}
}

type CalendarDay struct {
	Day       int       `json:"day"`
	Date      string    `json:"date"`
	Hours     float64   `json:"hours"`
	Intensity Intensity `json:"intensity"`
	IsToday   bool      `json:"isToday"`
}

// CalendarMonth is one month of calendar cells plus the month's stats.
// Days is indexed by day of month minus one.
type CalendarMonth struct {
	Grid  MonthGrid     `json:"grid"`
	Days  []CalendarDay `json:"days"`
	Stats RangeSummary  `json:"stats"`
}

func BuildCalendar(year int, month time.Month, logs []storage.DailyLog, tests []storage.MockTest, now time.Time) CalendarMonth {
	grid := CalendarGrid(year, month)
	byDate := HoursByDate(logs)
	today := FormatDate(now)

	days := make([]CalendarDay, 0, grid.DaysInMonth)
	for d := 1; d <= grid.DaysInMonth; d++ {
		date := grid.Date(d)
		h := byDate[date]
		days = append(days, CalendarDay{
			Day:       d,
			Date:      date,
			Hours:     h,
			Intensity: ClassifyHours(h),
			IsToday:   date == today,
		})
	}
	return CalendarMonth{
		Grid:  grid,
		Days:  days,
		Stats: SummarizeRange(grid.Range(), logs, tests),
	}
}

// Weeks lays the month out in Sunday-first rows. Leading and trailing blank
// cells are nil.
func (c CalendarMonth) Weeks() [][]*CalendarDay {
	var weeks [][]*CalendarDay
	week := make([]*CalendarDay, c.Grid.StartingDayOfWeek, 7)
	for i := range c.Days {
		week = append(week, &c.Days[i])
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]*CalendarDay, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, nil)
		}
		weeks = append(weeks, week)
	}
	return weeks
}
