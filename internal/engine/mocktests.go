package engine

import (
	"math"
	"sort"
	"strings"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

// TestPercent is score/totalMarks*100. ok is false when the test has no
// positive total and so cannot be scored.
func TestPercent(t storage.MockTest) (float64, bool) {
	if t.TotalMarks <= 0 {
		return 0, false
	}
	return t.Score / t.TotalMarks * 100, true
}

// MockTestSummary aggregates percentages over scorable tests. All three
// figures are 0 when nothing can be scored.
type MockTestSummary struct {
	Count   int     `json:"count"`
	Scored  int     `json:"scored"`
	Average float64 `json:"average"`
	Best    float64 `json:"best"`
	Worst   float64 `json:"worst"`
}

func SummarizeMockTests(tests []storage.MockTest) MockTestSummary {
	s := MockTestSummary{Count: len(tests)}
	var pcts []float64
	for _, t := range tests {
		if p, ok := TestPercent(t); ok {
			pcts = append(pcts, p)
		}
	}
	s.Scored = len(pcts)
	if len(pcts) == 0 {
		return s
	}
	s.Best, s.Worst = math.Inf(-1), math.Inf(1)
	for _, p := range pcts {
		s.Best = math.Max(s.Best, p)
		s.Worst = math.Min(s.Worst, p)
	}
	s.Average = Average(pcts)
	return s
}

// SortNewestFirst orders tests by date descending, keeping input order for
// tests on the same day.
func SortNewestFirst(tests []storage.MockTest) []storage.MockTest {
	out := append([]storage.MockTest(nil), tests...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// FilterByExam keeps tests whose exam label matches, ignoring case. An empty
// exam keeps everything.
func FilterByExam(tests []storage.MockTest, exam string) []storage.MockTest {
	exam = strings.TrimSpace(exam)
	if exam == "" {
		return tests
	}
	var out []storage.MockTest
	for _, t := range tests {
		if strings.EqualFold(t.Exam, exam) {
			out = append(out, t)
		}
	}
	return out
}

type TrendPoint struct {
	Date    string  `json:"date"`
	Exam    string  `json:"exam"`
	Percent float64 `json:"percent"`
}

// PerformanceTrend lists scorable tests oldest first.
func PerformanceTrend(tests []storage.MockTest) []TrendPoint {
	sorted := SortNewestFirst(tests)
	out := make([]TrendPoint, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		p, ok := TestPercent(sorted[i])
		if !ok {
			continue
		}
		out = append(out, TrendPoint{Date: sorted[i].Date, Exam: sorted[i].Exam, Percent: Round1(p)})
	}
	return out
}
