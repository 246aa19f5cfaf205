package engine

import (
	"sort"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

func SortLogsNewestFirst(logs []storage.DailyLog) []storage.DailyLog {
	out := append([]storage.DailyLog(nil), logs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

func SortRemindersByDate(reminders []storage.Reminder) []storage.Reminder {
	out := append([]storage.Reminder(nil), reminders...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// DayDetail is everything recorded on one date.
type DayDetail struct {
	Date      string             `json:"date"`
	Log       *storage.DailyLog  `json:"log"`
	Intensity Intensity          `json:"intensity"`
	MockTests []storage.MockTest `json:"mockTests"`
	Reminders []storage.Reminder `json:"reminders"`
}

func BuildDayDetail(s Snapshot, date string) DayDetail {
	d := DayDetail{Date: date, Intensity: IntensityNone, MockTests: []storage.MockTest{}, Reminders: []storage.Reminder{}}
	for i := range s.Logs {
		if s.Logs[i].Date == date {
			l := s.Logs[i]
			d.Log = &l
			d.Intensity = ClassifyHours(l.StudyHours)
			break
		}
	}
	for _, t := range s.MockTests {
		if t.Date == date {
			d.MockTests = append(d.MockTests, t)
		}
	}
	for _, r := range s.Reminders {
		if r.Date == date {
			d.Reminders = append(d.Reminders, r)
		}
	}
	return d
}
