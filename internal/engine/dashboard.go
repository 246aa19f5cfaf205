package engine

import (
	"time"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

const recentActivityLimit = 5

type ExamCountdown struct {
	Exam string `json:"exam"`
	Countdown
}

type Dashboard struct {
	Date         string             `json:"date"`
	Totals       Totals             `json:"totals"`
	WeekHours    float64            `json:"weekHours"`
	Streak       int                `json:"streak"`
	AvgHours     float64            `json:"avgHours"`
	Goals        GoalProgress       `json:"goals"`
	Recent       []storage.DailyLog `json:"recent"`
	WeeklyHours  []DayPoint         `json:"weeklyHours"`
	Achievements []Achievement      `json:"achievements"`
	Countdowns   []ExamCountdown    `json:"countdowns"`
	Upcoming     []storage.Reminder `json:"upcoming"`
	Quote        string             `json:"quote"`
}

// BuildDashboard computes the overview page. AvgHours is per log, not per
// study day.
func BuildDashboard(s Snapshot, now time.Time) Dashboard {
	totals := ComputeTotals(s.Logs, s.Subjects, s.MockTests)
	week := SummarizeRange(WeekRange(now), s.Logs, nil)

	recent := SortLogsNewestFirst(s.Logs)
	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}

	d := Dashboard{
		Date:         FormatDate(now),
		Totals:       totals,
		WeekHours:    week.Hours,
		Streak:       CurrentStreak(s.Logs, now),
		AvgHours:     Round1(ratio(totals.Hours, float64(totals.Logs))),
		Goals:        ComputeGoalProgress(s.Goals, s.Logs, s.Subjects, s.MockTests, now),
		Recent:       recent,
		WeeklyHours:  DailyHoursSeries(s.Logs, now, 7),
		Achievements: NewAchievementChecker(MetricsFor(s.Logs, s.MockTests, now)).GetAchievements(),
		Countdowns:   examCountdowns(s.ExamDates, now),
		Upcoming:     UpcomingReminders(s.Reminders, now),
		Quote:        QuoteOfTheDay(now),
	}
	return d
}

func examCountdowns(d storage.ExamDates, now time.Time) []ExamCountdown {
	var out []ExamCountdown
	for _, e := range []struct{ name, date string }{{"GATE", d.Gate}, {"NET", d.Net}} {
		if e.date == "" {
			continue
		}
		c, err := CountdownTo(e.date, now)
		if err != nil {
			continue
		}
		out = append(out, ExamCountdown{Exam: e.name, Countdown: c})
	}
	return out
}

// UpcomingReminders returns reminders dated today or later, soonest first.
func UpcomingReminders(reminders []storage.Reminder, now time.Time) []storage.Reminder {
	today := FormatDate(now)
	out := []storage.Reminder{}
	for _, r := range SortRemindersByDate(reminders) {
		if r.Date >= today {
			out = append(out, r)
		}
	}
	return out
}

// Consistency measures how regularly the user studies.
type Consistency struct {
	CurrentStreak  int `json:"currentStreak"`
	LongestStreak  int `json:"longestStreak"`
	MonthStudyDays int `json:"monthStudyDays"`
	MonthPercent   int `json:"monthPercent"` // study days over days elapsed this month
	WeekStudyDays  int `json:"weekStudyDays"`
}

func ComputeConsistency(logs []storage.DailyLog, now time.Time) Consistency {
	month := SummarizeRange(MonthRange(now), logs, nil)
	week := SummarizeRange(WeekRange(now), logs, nil)

	var studied []string
	for _, l := range logs {
		if l.StudyHours > 0 {
			studied = append(studied, l.Date)
		}
	}
	return Consistency{
		CurrentStreak:  CurrentStreak(logs, now),
		LongestStreak:  LongestRun(studied),
		MonthStudyDays: month.StudyDays,
		MonthPercent:   Percent(float64(month.StudyDays), float64(now.Day())),
		WeekStudyDays:  week.StudyDays,
	}
}

type Analytics struct {
	Totals          Totals               `json:"totals"`
	AvgPerStudyDay  float64              `json:"avgPerStudyDay"`
	Consistency     Consistency          `json:"consistency"`
	Subjects        []SubjectPerformance `json:"subjects"`
	SubjectProgress []SubjectProgress    `json:"subjectProgress"`
	Weekday         [7]WeekdayStat       `json:"weekday"`
	Trend           []DayPoint           `json:"trend"`
	Distribution    []SubjectHours       `json:"distribution"`
	MockTests       MockTestSummary      `json:"mockTests"`
	MockTrend       []TrendPoint         `json:"mockTrend"`
	Insights        []Insight            `json:"insights"`
}

func BuildAnalytics(s Snapshot, now time.Time) Analytics {
	totals := ComputeTotals(s.Logs, s.Subjects, s.MockTests)
	return Analytics{
		Totals:          totals,
		AvgPerStudyDay:  Round1(ratio(totals.Hours, float64(totals.StudyDays))),
		Consistency:     ComputeConsistency(s.Logs, now),
		Subjects:        SubjectPerformances(s.Subjects, s.Logs),
		SubjectProgress: SubjectProgressSeries(s.Subjects),
		Weekday:         WeekdayProductivity(s.Logs),
		Trend:           DailyHoursSeries(s.Logs, now, 30),
		Distribution:    HoursBySubject(s.Logs),
		MockTests:       SummarizeMockTests(s.MockTests),
		MockTrend:       PerformanceTrend(s.MockTests),
		Insights:        Insights(InsightInput{Logs: s.Logs, Subjects: s.Subjects, MockTests: s.MockTests, Now: now}),
	}
}
