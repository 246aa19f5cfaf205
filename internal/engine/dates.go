package engine

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the only date format records use. Range filters compare
// these strings lexicographically, which only works while they stay zero padded.
const DateLayout = "2006-01-02"

// DateRange is an inclusive range of ISO dates.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}

// civil drops the clock and zone from t, keeping its calendar day as UTC
// midnight so day arithmetic never crosses a DST boundary.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders the calendar day of t in t's own location.
func FormatDate(t time.Time) string {
	return civil(t).Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DateLayout), nil
}

func WeekdayOf(date string) (time.Weekday, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// WeekRange returns the Sunday-to-Saturday week containing ref.
func WeekRange(ref time.Time) DateRange {
	d := civil(ref)
	start := d.AddDate(0, 0, -int(d.Weekday()))
	return DateRange{
		Start: start.Format(DateLayout),
		End:   start.AddDate(0, 0, 6).Format(DateLayout),
	}
}

func MonthRange(ref time.Time) DateRange {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{
		Start: first.Format(DateLayout),
		End:   first.AddDate(0, 1, -1).Format(DateLayout),
	}
}

// LastNDays returns n dates ending at now's day, oldest first.
func LastNDays(now time.Time, n int) []string {
	if n <= 0 {
		return []string{}
	}
	today := civil(now)
	out := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, today.AddDate(0, 0, -i).Format(DateLayout))
	}
	return out
}

// DaysBetween is the absolute number of calendar days between two dates.
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseDate(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDate(b)
	if err != nil {
		return 0, err
	}
	days := math.Abs(tb.Sub(ta).Hours()) / 24
	return int(math.Ceil(days)), nil
}

// MonthGrid describes how a month is laid out on a Sunday-first grid.
type MonthGrid struct {
	Year              int        `json:"year"`
	Month             time.Month `json:"month"`
	DaysInMonth       int        `json:"daysInMonth"`
	StartingDayOfWeek int        `json:"startingDayOfWeek"` // 0 = Sunday
}

func CalendarGrid(year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return MonthGrid{
		Year:              first.Year(),
		Month:             first.Month(),
		DaysInMonth:       first.AddDate(0, 1, -1).Day(),
		StartingDayOfWeek: int(first.Weekday()),
	}
}

// Date returns the ISO date for a day of the grid's month.
func (g MonthGrid) Date(day int) string {
	return time.Date(g.Year, g.Month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}

func (g MonthGrid) Range() DateRange {
	return DateRange{Start: g.Date(1), End: g.Date(g.DaysInMonth)}
}

// Countdown is the time left until an exam, zero once it has passed.
type Countdown struct {
	Target  string `json:"target"`
	Days    int    `json:"days"`
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Passed  bool   `json:"passed"`
}

// CountdownTo measures from now to local midnight of target in now's zone.
func CountdownTo(target string, now time.Time) (Countdown, error) {
	t, err := time.ParseInLocation(DateLayout, target, now.Location())
	if err != nil {
		return Countdown{}, fmt.Errorf("parse exam date %q: %w", target, err)
	}
	c := Countdown{Target: target}
	diff := t.Sub(now)
	if diff <= 0 {
		c.Passed = true
		return c, nil
	}
	c.Days = int(diff / (24 * time.Hour))
	c.Hours = int(diff % (24 * time.Hour) / time.Hour)
	c.Minutes = int(diff % time.Hour / time.Minute)
	return c, nil
}
