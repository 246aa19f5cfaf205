package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

func logOn(date string, hours float64) storage.DailyLog {
	return storage.DailyLog{ID: "log-" + date, Date: date, StudyHours: hours}
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 0.0, Average(nil))
	assert.Equal(t, 1.7, Average([]float64{1, 2, 2}))
	assert.Equal(t, 4.0, Average([]float64{4}))
}

func TestPercentGuardsZeroTotal(t *testing.T) {
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 0, Percent(5, 0))
	assert.Equal(t, 150, Percent(150, 100))
}

func TestComputeTotalsTreatsMissingAsZero(t *testing.T) {
	logs := []storage.DailyLog{
		{ID: "a", Date: "2025-01-01", StudyHours: 2.5, ProblemsSolved: 10},
		{ID: "b", Date: "2025-01-02"},
	}
	subjects := []storage.Subject{{ID: "s1", Name: "OS", CompletedTopics: 3}, {ID: "s2", Name: "CN"}}
	got := ComputeTotals(logs, subjects, []storage.MockTest{{ID: "t1"}})
	assert.Equal(t, Totals{Hours: 2.5, Problems: 10, Logs: 2, StudyDays: 1, Subjects: 2, MockTests: 1, TopicsCompleted: 3}, got)
}

func TestStreakStopsAtZeroHourDay(t *testing.T) {
	logs := []storage.DailyLog{
		logOn("2025-01-01", 5),
		logOn("2025-01-02", 3),
		logOn("2025-01-03", 0),
		logOn("2025-01-04", 6),
	}
	assert.Equal(t, 1, CurrentStreak(logs, day("2025-01-04")))
	assert.Equal(t, 2, LongestStreakInRange(logs, DateRange{Start: "2025-01-01", End: "2025-01-04"}))
}

func TestStreakCountsConsecutiveDaysEndingToday(t *testing.T) {
	logs := []storage.DailyLog{
		logOn("2025-01-10", 2),
		logOn("2025-01-09", 1),
		logOn("2025-01-08", 4),
		logOn("2025-01-06", 8), // gap on the 7th
	}
	assert.Equal(t, 3, CurrentStreak(logs, day("2025-01-10")))
	assert.Equal(t, 0, CurrentStreak(logs, day("2025-01-11")))
	assert.Equal(t, 0, CurrentStreak(nil, day("2025-01-10")))
}

func TestLongestRunIgnoresOrderAndDuplicates(t *testing.T) {
	dates := []string{"2025-01-03", "2025-01-01", "2025-01-02", "2025-01-02", "2025-01-05"}
	assert.Equal(t, 3, LongestRun(dates))
	assert.Equal(t, 0, LongestRun(nil))
	assert.Equal(t, 2, LongestRun([]string{"2024-02-29", "2024-03-01"}))
}

func TestSummarizeRange(t *testing.T) {
	logs := []storage.DailyLog{
		{ID: "a", Date: "2025-01-31", StudyHours: 9, ProblemsSolved: 1},
		{ID: "b", Date: "2025-02-01", StudyHours: 4, ProblemsSolved: 20},
		{ID: "c", Date: "2025-02-02", StudyHours: 0, ProblemsSolved: 5},
		{ID: "d", Date: "2025-02-03", StudyHours: 3},
	}
	tests := []storage.MockTest{{ID: "t1", Date: "2025-02-10"}, {ID: "t2", Date: "2025-03-01"}}

	s := SummarizeRange(MonthRange(day("2025-02-15")), logs, tests)
	assert.Equal(t, 7.0, s.Hours)
	assert.Equal(t, 25, s.Problems)
	assert.Equal(t, 3, s.Logs)
	assert.Equal(t, 2, s.StudyDays)
	assert.Equal(t, 1, s.MockTests)
	assert.Equal(t, 3.5, s.AvgPerStudyDay)
	assert.Equal(t, 1, s.LongestStreak)
}

func TestGoalProgressPerMetricUncapped(t *testing.T) {
	goals := storage.Goals{Monthly: storage.MonthlyGoals{StudyHours: 100}}
	logs := []storage.DailyLog{logOn("2025-01-02", 100), logOn("2025-01-03", 50), logOn("2024-12-31", 500)}

	p := ComputeGoalProgress(goals, logs, nil, nil, day("2025-01-20"))
	assert.Equal(t, GoalStudyHours, p.Metrics[0].Key)
	assert.Equal(t, 150.0, p.Metrics[0].Actual)
	assert.Equal(t, 150.0, p.Metrics[0].Percent)
	// zero targets contribute 0 rather than NaN
	for _, m := range p.Metrics[1:] {
		assert.Equal(t, 0.0, m.Percent)
	}
	assert.Equal(t, 37.5, p.Overall)

	assert.Equal(t, 100.0, OverallGoalPercent(p.Metrics[:1]))
}

func TestGoalProgressOverallCapped(t *testing.T) {
	goals := storage.Goals{Monthly: storage.MonthlyGoals{StudyHours: 10, TopicsComplete: 1, MockTests: 1, ProblemsSolved: 1}}
	logs := []storage.DailyLog{{ID: "a", Date: "2025-01-02", StudyHours: 20, ProblemsSolved: 3}}
	subjects := []storage.Subject{{ID: "s", Name: "Algo", CompletedTopics: 2}}
	tests := []storage.MockTest{{ID: "t", Date: "2025-01-05", Score: 1, TotalMarks: 2}}

	p := ComputeGoalProgress(goals, logs, subjects, tests, day("2025-01-20"))
	assert.Equal(t, []float64{200, 200, 100, 300}, []float64{p.Metrics[0].Percent, p.Metrics[1].Percent, p.Metrics[2].Percent, p.Metrics[3].Percent})
	assert.Equal(t, 100.0, p.Overall)
	assert.Equal(t, 100, p.OverallPercent())
}

func TestWeekdayProductivity(t *testing.T) {
	logs := []storage.DailyLog{
		logOn("2025-01-05", 4), // Sunday
		logOn("2025-01-12", 6), // Sunday
		logOn("2025-01-06", 3), // Monday
	}
	stats := WeekdayProductivity(logs)
	assert.Equal(t, time.Sunday, stats[0].Day)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, 5.0, stats[0].Average)
	assert.Equal(t, 3.0, stats[1].Average)
	assert.Equal(t, 0.0, stats[2].Average)
	assert.Equal(t, time.Saturday, stats[6].Day)
}

func TestSubjectCompletion(t *testing.T) {
	assert.Equal(t, 0, SubjectCompletion(storage.Subject{CompletedTopics: 3}))
	assert.Equal(t, 67, SubjectCompletion(storage.Subject{TotalTopics: 3, CompletedTopics: 2}))
	assert.Equal(t, StatusLow, StatusFor(29))
	assert.Equal(t, StatusMedium, StatusFor(30))
	assert.Equal(t, StatusHigh, StatusFor(70))
}

func TestSubjectPerformancesMatchByIDThenName(t *testing.T) {
	subjects := []storage.Subject{
		{ID: "s1", Name: "Algorithms", TotalTopics: 10, CompletedTopics: 8},
		{ID: "s2", Name: "Networks", TotalTopics: 10, CompletedTopics: 1},
	}
	logs := []storage.DailyLog{
		{ID: "a", Date: "2025-01-01", SubjectID: "s1", Subject: "Old Name", EnergyLevel: 5},
		{ID: "b", Date: "2025-01-02", Subject: "algorithms", EnergyLevel: 4},
		{ID: "c", Date: "2025-01-03", SubjectID: "s2", Subject: "Networks", EnergyLevel: 2},
		{ID: "d", Date: "2025-01-04", SubjectID: "s2", Subject: "Networks"},
	}
	perf := SubjectPerformances(subjects, logs)
	assert.Equal(t, 4.5, perf[0].AvgEnergy)
	assert.Equal(t, StatusHigh, perf[0].Status)
	assert.Equal(t, 2.0, perf[1].AvgEnergy)
	assert.Equal(t, StatusLow, perf[1].Status)
}

func TestMockTestSummaryExcludesUnscorable(t *testing.T) {
	tests := []storage.MockTest{
		{ID: "a", Date: "2025-01-03", Score: 80, TotalMarks: 100},
		{ID: "b", Date: "2025-01-02", Score: 50, TotalMarks: 0},
		{ID: "c", Date: "2025-01-01", Score: 30, TotalMarks: 60},
	}
	s := SummarizeMockTests(tests)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 2, s.Scored)
	assert.Equal(t, 80.0, s.Best)
	assert.Equal(t, 50.0, s.Worst)
	assert.Equal(t, 65.0, s.Average)

	assert.Equal(t, MockTestSummary{}, SummarizeMockTests(nil))

	trend := PerformanceTrend(tests)
	assert.Equal(t, []TrendPoint{{Date: "2025-01-01", Percent: 50}, {Date: "2025-01-03", Percent: 80}}, trend)
}

func TestDailyHoursSeries(t *testing.T) {
	logs := []storage.DailyLog{logOn("2025-01-10", 2), logOn("2025-01-08", 5), logOn("2024-12-01", 9)}
	series := DailyHoursSeries(logs, day("2025-01-10"), 3)
	assert.Equal(t, []DayPoint{{"2025-01-08", 5}, {"2025-01-09", 0}, {"2025-01-10", 2}}, series)
}

func TestHoursBySubjectLargestFirst(t *testing.T) {
	logs := []storage.DailyLog{
		{ID: "a", Date: "2025-01-01", Subject: "OS", StudyHours: 2},
		{ID: "b", Date: "2025-01-02", Subject: "DBMS", StudyHours: 5},
		{ID: "c", Date: "2025-01-03", Subject: "OS", StudyHours: 1},
		{ID: "d", Date: "2025-01-04", StudyHours: 7},
	}
	assert.Equal(t, []SubjectHours{{"DBMS", 5}, {"OS", 3}}, HoursBySubject(logs))
}

func TestComputeConsistency(t *testing.T) {
	logs := []storage.DailyLog{
		logOn("2025-02-27", 5),
		logOn("2025-02-28", 2),
		logOn("2025-03-01", 2),
		logOn("2025-03-02", 3),
		logOn("2025-03-03", 1),
		logOn("2025-03-05", 0),
		logOn("2025-03-10", 2),
		logOn("2025-03-11", 4),
		logOn("2025-03-12", 1),
	}
	got := ComputeConsistency(logs, day("2025-03-12"))
	assert.Equal(t, Consistency{
		CurrentStreak:  3,
		LongestStreak:  5,
		MonthStudyDays: 6,
		MonthPercent:   50,
		WeekStudyDays:  3,
	}, got)

	assert.Equal(t, Consistency{}, ComputeConsistency(nil, day("2025-03-12")))
}

func TestUnparseableDatesAreLeftOut(t *testing.T) {
	logs := []storage.DailyLog{logOn("2025-01-06", 2), logOn("06/01/2025", 9)}
	wd := WeekdayProductivity(logs)
	total := 0
	for _, s := range wd {
		total += s.Count
	}
	assert.Equal(t, 1, total)
	assert.Equal(t, 2.0, wd[time.Monday].Hours)

	assert.Equal(t, 2, LongestRun([]string{"2025-01-06", "bad", "2025-01-07"}))
}
