package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

type InsightKind string

const (
	InsightPositive InsightKind = "positive"
	InsightWarning  InsightKind = "warning"
)

const (
	InsightExcellentPattern = "excellent_pattern"
	InsightIncreaseTime     = "increase_time"
	InsightWeakSubjects     = "weak_subjects"
	InsightImproving        = "improving"
	InsightDeclining        = "declining"
	InsightConsistency      = "consistency"
)

type Insight struct {
	ID          string      `json:"id"`
	Kind        InsightKind `json:"kind"`
	Icon        string      `json:"icon"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
}

// InsightInput is everything the rules look at.
type InsightInput struct {
	Logs      []storage.DailyLog
	Subjects  []storage.Subject
	MockTests []storage.MockTest
	Now       time.Time
}

type insightRule func(in InsightInput) (Insight, bool)

// insightRules run in display order.
var insightRules = []insightRule{
	studyPatternInsight,
	weakSubjectsInsight,
	mockTrendInsight,
	consistencyInsight,
}

// Insights evaluates every rule against the current records. Nothing is
// remembered between calls.
func Insights(in InsightInput) []Insight {
	out := []Insight{}
	for _, rule := range insightRules {
		if ins, ok := rule(in); ok {
			out = append(out, ins)
		}
	}
	return out
}

func studyPatternInsight(in InsightInput) (Insight, bool) {
	if len(in.Logs) == 0 {
		return Insight{}, false
	}
	total := 0.0
	for _, l := range in.Logs {
		total += l.StudyHours
	}
	avg := total / float64(len(in.Logs))
	switch {
	case avg >= 8:
		return Insight{
			ID:          InsightExcellentPattern,
			Kind:        InsightPositive,
			Icon:        "🌟",
			Title:       "Excellent Study Pattern",
			Description: fmt.Sprintf("You're averaging %.1f hours per day. Keep it up!", avg),
		}, true
	case avg < 5:
		return Insight{
			ID:          InsightIncreaseTime,
			Kind:        InsightWarning,
			Icon:        "⚠️",
			Title:       "Increase Study Time",
			Description: fmt.Sprintf("Current average is %.1fh/day. Aim for at least 6-8 hours.", avg),
		}, true
	}
	return Insight{}, false
}

func weakSubjectsInsight(in InsightInput) (Insight, bool) {
	weak := WeakSubjects(in.Subjects)
	if len(weak) == 0 {
		return Insight{}, false
	}
	names := make([]string, 0, len(weak))
	for _, s := range weak {
		names = append(names, s.Name)
	}
	return Insight{
		ID:          InsightWeakSubjects,
		Kind:        InsightWarning,
		Icon:        "📚",
		Title:       "Focus on Weak Subjects",
		Description: fmt.Sprintf("%d subject(s) need more attention: %s", len(weak), strings.Join(names, ", ")),
	}, true
}

// mockTrendInsight compares the newest test with the third newest. A test
// without total marks counts as 0% here. Exactly one of improving/declining
// fires once three tests exist.
func mockTrendInsight(in InsightInput) (Insight, bool) {
	if len(in.MockTests) < 3 {
		return Insight{}, false
	}
	recent := SortNewestFirst(in.MockTests)[:3]
	pcts := make([]float64, len(recent))
	for i, t := range recent {
		pcts[i], _ = TestPercent(t)
	}
	if pcts[0] > pcts[2] {
		return Insight{
			ID:          InsightImproving,
			Kind:        InsightPositive,
			Icon:        "📈",
			Title:       "Performance Improving",
			Description: "Your mock test scores show an upward trend. Great progress!",
		}, true
	}
	return Insight{
		ID:          InsightDeclining,
		Kind:        InsightWarning,
		Icon:        "📉",
		Title:       "Review Your Strategy",
		Description: "Recent mock test scores show a decline. Consider revising weak areas.",
	}, true
}

func consistencyInsight(in InsightInput) (Insight, bool) {
	streak := CurrentStreak(in.Logs, in.Now)
	if streak < 7 {
		return Insight{}, false
	}
	return Insight{
		ID:          InsightConsistency,
		Kind:        InsightPositive,
		Icon:        "🔥",
		Title:       "Amazing Consistency!",
		Description: fmt.Sprintf("You've studied %d days in a row. Consistency is key to success!", streak),
	}, true
}
