package engine

import "github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"

// Snapshot is a read-only copy of every record the computations need.
type Snapshot struct {
	Logs      []storage.DailyLog
	Subjects  []storage.Subject
	MockTests []storage.MockTest
	Reminders []storage.Reminder
	Goals     storage.Goals
	ExamDates storage.ExamDates
	Settings  storage.Settings
}

// Validate fails on the first record without an id or a well-formed date.
// The returned error is a *storage.RecordError.
func (s Snapshot) Validate() error {
	for i := range s.Logs {
		if err := storage.CheckRecord("daily log", s.Logs[i].ID, &s.Logs[i]); err != nil {
			return err
		}
	}
	for i := range s.Subjects {
		if err := storage.CheckRecord("subject", s.Subjects[i].ID, &s.Subjects[i]); err != nil {
			return err
		}
	}
	for i := range s.MockTests {
		if err := storage.CheckRecord("mock test", s.MockTests[i].ID, &s.MockTests[i]); err != nil {
			return err
		}
	}
	for i := range s.Reminders {
		if err := storage.CheckRecord("reminder", s.Reminders[i].ID, &s.Reminders[i]); err != nil {
			return err
		}
	}
	return nil
}
