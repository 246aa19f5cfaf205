package engine

import (
	"math"
	"time"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

const (
	GoalStudyHours     = "studyHours"
	GoalTopicsComplete = "topicsComplete"
	GoalMockTests      = "mockTests"
	GoalProblemsSolved = "problemsSolved"
)

// GoalMetric compares one monthly actual against its target. Percent is not
// capped and can exceed 100.
type GoalMetric struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Actual  float64 `json:"actual"`
	Target  float64 `json:"target"`
	Percent float64 `json:"percent"`
}

// GoalProgress holds the four monthly metrics in fixed order. Overall is
// their mean capped at 100.
type GoalProgress struct {
	Month   DateRange    `json:"month"`
	Metrics []GoalMetric `json:"metrics"`
	Overall float64      `json:"overall"`
}

func (p GoalProgress) OverallPercent() int {
	return int(math.Round(p.Overall))
}

// ComputeGoalProgress measures this month's hours, tests and problems plus
// completed topics across all subjects against the monthly goals.
func ComputeGoalProgress(goals storage.Goals, logs []storage.DailyLog, subjects []storage.Subject, tests []storage.MockTest, now time.Time) GoalProgress {
	month := MonthRange(now)
	sum := SummarizeRange(month, logs, tests)

	topics := 0
	for _, s := range subjects {
		topics += s.CompletedTopics
	}

	g := goals.Monthly
	metrics := []GoalMetric{
		newGoalMetric(GoalStudyHours, "Study Hours", sum.Hours, g.StudyHours),
		newGoalMetric(GoalTopicsComplete, "Topics Completed", float64(topics), float64(g.TopicsComplete)),
		newGoalMetric(GoalMockTests, "Mock Tests", float64(sum.MockTests), float64(g.MockTests)),
		newGoalMetric(GoalProblemsSolved, "Problems Solved", float64(sum.Problems), float64(g.ProblemsSolved)),
	}
	return GoalProgress{
		Month:   month,
		Metrics: metrics,
		Overall: OverallGoalPercent(metrics),
	}
}

func newGoalMetric(key, label string, actual, target float64) GoalMetric {
	return GoalMetric{
		Key:     key,
		Label:   label,
		Actual:  actual,
		Target:  target,
		Percent: ratio(actual, target) * 100,
	}
}

// OverallGoalPercent is the mean of the metric percentages, capped at 100.
func OverallGoalPercent(metrics []GoalMetric) float64 {
	if len(metrics) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range metrics {
		sum += m.Percent
	}
	return math.Min(100, sum/float64(len(metrics)))
}
