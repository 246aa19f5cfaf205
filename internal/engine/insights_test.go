package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

func insightIDs(list []Insight) []string {
	ids := make([]string, 0, len(list))
	for _, in := range list {
		ids = append(ids, in.ID)
	}
	return ids
}

func testsNewestFirst(pcts ...float64) []storage.MockTest {
	dates := []string{"2025-03-05", "2025-03-04", "2025-03-03", "2025-03-02", "2025-03-01"}
	out := make([]storage.MockTest, 0, len(pcts))
	for i, p := range pcts {
		out = append(out, storage.MockTest{ID: dates[i], Date: dates[i], Score: p, TotalMarks: 100})
	}
	return out
}

func TestMockTrendInsight(t *testing.T) {
	now := day("2025-03-10")

	got := Insights(InsightInput{MockTests: testsNewestFirst(80, 70, 60), Now: now})
	assert.Equal(t, []string{InsightImproving}, insightIDs(got))

	got = Insights(InsightInput{MockTests: testsNewestFirst(60, 70, 80), Now: now})
	assert.Equal(t, []string{InsightDeclining}, insightIDs(got))

	// a tie is not an improvement
	got = Insights(InsightInput{MockTests: testsNewestFirst(70, 90, 70), Now: now})
	assert.Equal(t, []string{InsightDeclining}, insightIDs(got))

	got = Insights(InsightInput{MockTests: testsNewestFirst(90, 10), Now: now})
	assert.Empty(t, got)
}

func TestMockTrendInsightSortsByDate(t *testing.T) {
	tests := testsNewestFirst(80, 70, 60)
	tests[0], tests[2] = tests[2], tests[0]
	got := Insights(InsightInput{MockTests: tests, Now: day("2025-03-10")})
	assert.Equal(t, []string{InsightImproving}, insightIDs(got))
}

func TestMockTrendInsightScoresMissingTotalAsZero(t *testing.T) {
	now := day("2025-03-10")

	tests := testsNewestFirst(50, 0, 40, 90)
	tests[1].TotalMarks = 0
	got := Insights(InsightInput{MockTests: tests, Now: now})
	assert.Equal(t, []string{InsightImproving}, insightIDs(got))

	got = Insights(InsightInput{MockTests: tests[:3], Now: now})
	assert.Equal(t, []string{InsightImproving}, insightIDs(got))

	tests = testsNewestFirst(80, 70, 60)
	tests[0].TotalMarks = 0
	got = Insights(InsightInput{MockTests: tests, Now: now})
	assert.Equal(t, []string{InsightDeclining}, insightIDs(got))
}

func TestStudyPatternInsight(t *testing.T) {
	now := day("2025-03-10")

	got := Insights(InsightInput{Logs: []storage.DailyLog{logOn("2025-01-01", 8), logOn("2025-01-03", 8)}, Now: now})
	assert.Equal(t, []string{InsightExcellentPattern}, insightIDs(got))
	assert.Equal(t, "You're averaging 8.0 hours per day. Keep it up!", got[0].Description)

	got = Insights(InsightInput{Logs: []storage.DailyLog{logOn("2025-01-01", 4), logOn("2025-01-03", 5)}, Now: now})
	assert.Equal(t, []string{InsightIncreaseTime}, insightIDs(got))
	assert.Equal(t, InsightWarning, got[0].Kind)

	got = Insights(InsightInput{Logs: []storage.DailyLog{logOn("2025-01-01", 6)}, Now: now})
	assert.Empty(t, got)
}

func TestWeakSubjectsInsightNamesAll(t *testing.T) {
	subjects := []storage.Subject{
		{ID: "1", Name: "Operating Systems", TotalTopics: 12, CompletedTopics: 5},
		{ID: "2", Name: "Algorithms", TotalTopics: 10, CompletedTopics: 5},
		{ID: "3", Name: "Compilers", TotalTopics: 0},
	}
	got := Insights(InsightInput{Subjects: subjects, Now: day("2025-03-10")})
	assert.Equal(t, []string{InsightWeakSubjects}, insightIDs(got))
	assert.Equal(t, "2 subject(s) need more attention: Operating Systems, Compilers", got[0].Description)
}

func TestInsightsFireInFixedOrder(t *testing.T) {
	now := day("2025-03-10")
	var logs []storage.DailyLog
	for _, d := range LastNDays(now, 7) {
		logs = append(logs, logOn(d, 9))
	}
	in := InsightInput{
		Logs:      logs,
		Subjects:  []storage.Subject{{ID: "1", Name: "OS", TotalTopics: 10, CompletedTopics: 1}},
		MockTests: testsNewestFirst(90, 80, 70),
		Now:       now,
	}
	got := Insights(in)
	assert.Equal(t, []string{InsightExcellentPattern, InsightWeakSubjects, InsightImproving, InsightConsistency}, insightIDs(got))
	assert.Contains(t, got[3].Description, "7 days in a row")

	// stateless: same input, same output
	assert.Equal(t, got, Insights(in))
}

func TestInsightsEmpty(t *testing.T) {
	got := Insights(InsightInput{Now: day("2025-03-10")})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
