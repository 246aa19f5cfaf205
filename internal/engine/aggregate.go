package engine

import (
	"math"
	"sort"
	"time"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

// Totals are the plain reductions shown on the dashboard.
type Totals struct {
	Hours           float64 `json:"hours"`
	Problems        int     `json:"problems"`
	Logs            int     `json:"logs"`
	StudyDays       int     `json:"studyDays"`
	Subjects        int     `json:"subjects"`
	MockTests       int     `json:"mockTests"`
	TopicsCompleted int     `json:"topicsCompleted"`
}

func ComputeTotals(logs []storage.DailyLog, subjects []storage.Subject, tests []storage.MockTest) Totals {
	t := Totals{
		Logs:      len(logs),
		Subjects:  len(subjects),
		MockTests: len(tests),
	}
	for _, l := range logs {
		t.Hours += l.StudyHours
		t.Problems += l.ProblemsSolved
		if l.StudyHours > 0 {
			t.StudyDays++
		}
	}
	for _, s := range subjects {
		t.TopicsCompleted += s.CompletedTopics
	}
	return t
}

// Round1 rounds to one decimal place. Only call it on final output.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ratio is part/total, 0 when total is not positive.
func ratio(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total
}

// Average is the mean of values rounded to one decimal, 0 for no values.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return Round1(sum / float64(len(values)))
}

// Percent is part/total as a whole-number percentage, 0 when total is 0.
func Percent(part, total float64) int {
	return int(math.Round(ratio(part, total) * 100))
}

// RangeSummary aggregates the logs and tests that fall inside a date range.
type RangeSummary struct {
	Range          DateRange `json:"range"`
	Hours          float64   `json:"hours"`
	Problems       int       `json:"problems"`
	Logs           int       `json:"logs"`
	StudyDays      int       `json:"studyDays"`
	MockTests      int       `json:"mockTests"`
	AvgPerStudyDay float64   `json:"avgPerStudyDay"`
	LongestStreak  int       `json:"longestStreak"`
}

func SummarizeRange(r DateRange, logs []storage.DailyLog, tests []storage.MockTest) RangeSummary {
	s := RangeSummary{Range: r}
	var studied []string
	for _, l := range logs {
		if !r.Contains(l.Date) {
			continue
		}
		s.Logs++
		s.Hours += l.StudyHours
		s.Problems += l.ProblemsSolved
		if l.StudyHours > 0 {
			s.StudyDays++
			studied = append(studied, l.Date)
		}
	}
	for _, t := range tests {
		if r.Contains(t.Date) {
			s.MockTests++
		}
	}
	s.AvgPerStudyDay = Round1(ratio(s.Hours, float64(s.StudyDays)))
	s.LongestStreak = LongestRun(studied)
	return s
}

// DayPoint is one day of a daily series.
type DayPoint struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// HoursByDate sums study hours per date.
func HoursByDate(logs []storage.DailyLog) map[string]float64 {
	out := make(map[string]float64, len(logs))
	for _, l := range logs {
		out[l.Date] += l.StudyHours
	}
	return out
}

// DailyHoursSeries returns hours for each of the last n days, oldest first.
func DailyHoursSeries(logs []storage.DailyLog, now time.Time, n int) []DayPoint {
	byDate := HoursByDate(logs)
	days := LastNDays(now, n)
	out := make([]DayPoint, 0, len(days))
	for _, d := range days {
		out = append(out, DayPoint{Date: d, Hours: byDate[d]})
	}
	return out
}

// SubjectHours is the total logged time per subject display name.
type SubjectHours struct {
	Subject string  `json:"subject"`
	Hours   float64 `json:"hours"`
}

// HoursBySubject groups log hours by subject, largest first. Logs without a
// subject are skipped.
func HoursBySubject(logs []storage.DailyLog) []SubjectHours {
	idx := map[string]int{}
	var out []SubjectHours
	for _, l := range logs {
		if l.Subject == "" {
			continue
		}
		i, ok := idx[l.Subject]
		if !ok {
			i = len(out)
			idx[l.Subject] = i
			out = append(out, SubjectHours{Subject: l.Subject})
		}
		out[i].Hours += l.StudyHours
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Hours > out[j].Hours })
	return out
}
