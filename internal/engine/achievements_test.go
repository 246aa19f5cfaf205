package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

func earnedIDs(list []Achievement) []string {
	var ids []string
	for _, a := range list {
		if a.Earned {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

func TestAchievementsNoneEarnedOnEmptyState(t *testing.T) {
	c := NewAchievementChecker(CumulativeMetrics{})
	assert.Equal(t, 6, c.CountTotal())
	assert.Equal(t, 0, c.CountEarned())
	assert.Len(t, c.GetAchievements(), 6)
}

func TestAchievementThresholds(t *testing.T) {
	c := NewAchievementChecker(CumulativeMetrics{Logs: 1, Streak: 30, Hours: 100, Problems: 99, MockTests: 10})
	assert.Equal(t, []string{"first_steps", "consistent_learner", "dedication", "century", "test_taker"}, earnedIDs(c.GetAchievements()))
	assert.Equal(t, 5, c.CountEarned())

	c = NewAchievementChecker(CumulativeMetrics{Logs: 3, Streak: 6, Hours: 99.9, Problems: 100, MockTests: 9})
	assert.Equal(t, []string{"first_steps", "problem_solver"}, earnedIDs(c.GetAchievements()))
}

func TestAchievementsReevaluateFromCurrentState(t *testing.T) {
	now := day("2025-01-07")
	var logs []storage.DailyLog
	for _, d := range LastNDays(now, 7) {
		logs = append(logs, logOn(d, 1))
	}
	m := MetricsFor(logs, nil, now)
	assert.Equal(t, 7, m.Streak)
	assert.Contains(t, earnedIDs(NewAchievementChecker(m).GetAchievements()), "consistent_learner")

	// a day later without a log the streak badge is gone again
	m = MetricsFor(logs, nil, day("2025-01-08"))
	assert.NotContains(t, earnedIDs(NewAchievementChecker(m).GetAchievements()), "consistent_learner")
}
