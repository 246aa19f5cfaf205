package engine

import (
	"time"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

type WeekdayStat struct {
	Day     time.Weekday `json:"day"`
	Hours   float64      `json:"hours"`
	Count   int          `json:"count"`
	Average float64      `json:"average"`
}

// WeekdayProductivity buckets logs by day of week, Sunday first. Logs must
// already be validated (see Snapshot.Validate); a log with an unparseable
// date is left out of every bucket.
func WeekdayProductivity(logs []storage.DailyLog) [7]WeekdayStat {
	var out [7]WeekdayStat
	for i := range out {
		out[i].Day = time.Weekday(i)
	}
	for _, l := range logs {
		wd, err := WeekdayOf(l.Date)
		if err != nil {
			continue
		}
		out[wd].Hours += l.StudyHours
		out[wd].Count++
	}
	for i := range out {
		out[i].Average = Round1(ratio(out[i].Hours, float64(out[i].Count)))
	}
	return out
}
