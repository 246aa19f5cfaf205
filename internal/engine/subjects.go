package engine

import (
	"strings"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

type StatusLevel string

const (
	StatusLow    StatusLevel = "low"
	StatusMedium StatusLevel = "medium"
	StatusHigh   StatusLevel = "high"
)

// StatusFor grades a completion percentage.
func StatusFor(percent int) StatusLevel {
	switch {
	case percent < 30:
		return StatusLow
	case percent < 70:
		return StatusMedium
	default:
		return StatusHigh
	}
}

// subjectRatio is the unrounded completion percentage.
func subjectRatio(s storage.Subject) float64 {
	return ratio(float64(s.CompletedTopics), float64(s.TotalTopics)) * 100
}

// SubjectCompletion is completedTopics/totalTopics as a rounded percentage,
// 0 when the subject has no topics.
func SubjectCompletion(s storage.Subject) int {
	return Percent(float64(s.CompletedTopics), float64(s.TotalTopics))
}

type SubjectPerformance struct {
	SubjectID  string      `json:"subjectId"`
	Name       string      `json:"name"`
	HoursSpent float64     `json:"hoursSpent"`
	Completion int         `json:"completion"`
	AvgEnergy  float64     `json:"avgEnergy"`
	Status     StatusLevel `json:"status"`
}

// SubjectPerformances rates every subject. Logs are matched by subject id,
// falling back to the display name for logs that predate ids.
func SubjectPerformances(subjects []storage.Subject, logs []storage.DailyLog) []SubjectPerformance {
	out := make([]SubjectPerformance, 0, len(subjects))
	for _, s := range subjects {
		var energy []float64
		for _, l := range logs {
			// unrecorded energy is not averaged
			if !logBelongsTo(l, s) || l.EnergyLevel <= 0 {
				continue
			}
			energy = append(energy, float64(l.EnergyLevel))
		}
		pct := SubjectCompletion(s)
		out = append(out, SubjectPerformance{
			SubjectID:  s.ID,
			Name:       s.Name,
			HoursSpent: s.HoursSpent,
			Completion: pct,
			AvgEnergy:  Average(energy),
			Status:     StatusFor(pct),
		})
	}
	return out
}

func logBelongsTo(l storage.DailyLog, s storage.Subject) bool {
	if l.SubjectID != "" {
		return l.SubjectID == s.ID
	}
	return l.Subject != "" && strings.EqualFold(l.Subject, s.Name)
}

// WeakSubjects are subjects below half completion, in input order.
func WeakSubjects(subjects []storage.Subject) []storage.Subject {
	var out []storage.Subject
	for _, s := range subjects {
		if subjectRatio(s) < 50 {
			out = append(out, s)
		}
	}
	return out
}

// SubjectProgress is one bar of the subject progress chart.
type SubjectProgress struct {
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
}

func SubjectProgressSeries(subjects []storage.Subject) []SubjectProgress {
	out := make([]SubjectProgress, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, SubjectProgress{
			Name:      s.Name,
			Completed: s.CompletedTopics,
			Total:     s.TotalTopics,
			Percent:   SubjectCompletion(s),
		})
	}
	return out
}
