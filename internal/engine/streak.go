package engine

import (
	"sort"
	"time"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

// CurrentStreak counts consecutive days ending today that each have a log
// with positive hours. A missing day ends the streak; today missing means 0.
func CurrentStreak(logs []storage.DailyLog, now time.Time) int {
	studied := make(map[string]bool, len(logs))
	for _, l := range logs {
		if l.StudyHours > 0 {
			studied[l.Date] = true
		}
	}
	day := civil(now)
	streak := 0
	for studied[day.Format(DateLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestRun is the longest run of consecutive calendar days in dates.
// Input order and duplicates do not matter. Dates must already be validated
// (see Snapshot.Validate); an unparseable date is skipped.
func LongestRun(dates []string) int {
	if len(dates) == 0 {
		return 0
	}
	sorted := append([]string(nil), dates...)
	sort.Strings(sorted)

	longest, run := 0, 0
	var prev time.Time
	for i, d := range sorted {
		if i > 0 && d == sorted[i-1] {
			continue
		}
		t, err := ParseDate(d)
		if err != nil {
			continue
		}
		if run > 0 && t.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = t
	}
	return longest
}

// LongestStreakInRange is the longest consecutive run of study days inside r,
// independent of today.
func LongestStreakInRange(logs []storage.DailyLog, r DateRange) int {
	var dates []string
	for _, l := range logs {
		if l.StudyHours > 0 && r.Contains(l.Date) {
			dates = append(dates, l.Date)
		}
	}
	return LongestRun(dates)
}
