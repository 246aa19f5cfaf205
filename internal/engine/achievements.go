package engine

import (
	"time"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

// Achievement represents a badge the user can earn.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      bool   `json:"earned"`
}

// CumulativeMetrics are the running totals achievements are judged on.
type CumulativeMetrics struct {
	Logs      int
	Streak    int
	Hours     float64
	Problems  int
	MockTests int
}

func MetricsFor(logs []storage.DailyLog, tests []storage.MockTest, now time.Time) CumulativeMetrics {
	totals := ComputeTotals(logs, nil, tests)
	return CumulativeMetrics{
		Logs:      totals.Logs,
		Streak:    CurrentStreak(logs, now),
		Hours:     totals.Hours,
		Problems:  totals.Problems,
		MockTests: totals.MockTests,
	}
}

type achievementRule struct {
	id, name, desc, icon string
	earned               func(m CumulativeMetrics) bool
}

var achievementRules = []achievementRule{
	{"first_steps", "First Steps", "Log your first study session", "🔥", func(m CumulativeMetrics) bool { return m.Logs > 0 }},
	{"consistent_learner", "Consistent Learner", "7 day streak", "📚", func(m CumulativeMetrics) bool { return m.Streak >= 7 }},
	{"dedication", "Dedication", "30 day streak", "⭐", func(m CumulativeMetrics) bool { return m.Streak >= 30 }},
	{"century", "Century", "100 hours studied", "💯", func(m CumulativeMetrics) bool { return m.Hours >= 100 }},
	{"problem_solver", "Problem Solver", "100 problems solved", "💻", func(m CumulativeMetrics) bool { return m.Problems >= 100 }},
	{"test_taker", "Test Taker", "Complete 10 mock tests", "🎯", func(m CumulativeMetrics) bool { return m.MockTests >= 10 }},
}

// AchievementChecker calculates which achievements are currently earned.
// Every call re-evaluates from the metrics it was built with.
type AchievementChecker struct {
	metrics CumulativeMetrics
}

func NewAchievementChecker(m CumulativeMetrics) *AchievementChecker {
	return &AchievementChecker{metrics: m}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	out := make([]Achievement, 0, len(achievementRules))
	for _, r := range achievementRules {
		out = append(out, Achievement{
			ID:          r.id,
			Name:        r.name,
			Description: r.desc,
			Icon:        r.icon,
			Earned:      r.earned(c.metrics),
		})
	}
	return out
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns total number of achievements.
func (c *AchievementChecker) CountTotal() int {
	return len(achievementRules)
}
