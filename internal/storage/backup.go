package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

const DocumentVersion = "1.0.0"

// Document is the full backup of the store. A nil collection or singleton
// means the section was absent and is left untouched on import.
type Document struct {
	Version    string     `json:"version"`
	ExportDate string     `json:"exportDate"`
	DailyLogs  []DailyLog `json:"dailyLogs"`
	Subjects   []Subject  `json:"subjects"`
	MockTests  []MockTest `json:"mockTests"`
	Goals      *Goals     `json:"goals"`
	ExamDates  *ExamDates `json:"examDates"`
	Reminders  []Reminder `json:"reminders"`
	Settings   *Settings  `json:"settings"`
}

type ImportStats struct {
	DailyLogs int
	Subjects  int
	MockTests int
	Reminders int
	Linked    int // legacy logs matched to a subject by name
}

// Export reads the whole store into a Document stamped with now.
func Export(ctx context.Context, db *sql.DB, now time.Time) (*Document, error) {
	logs, err := NewDailyLogRepo(db).ListAll(ctx)
	if err != nil {
		return nil, err
	}
	subjects, err := NewSubjectRepo(db).ListAll(ctx)
	if err != nil {
		return nil, err
	}
	tests, err := NewMockTestRepo(db).ListAll(ctx)
	if err != nil {
		return nil, err
	}
	reminders, err := NewReminderRepo(db).ListAll(ctx)
	if err != nil {
		return nil, err
	}
	settings := NewSettingsRepo(db)
	goals, err := settings.Goals(ctx)
	if err != nil {
		return nil, err
	}
	exams, err := settings.ExamDates(ctx)
	if err != nil {
		return nil, err
	}
	prefs, err := settings.Settings(ctx)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Version:    DocumentVersion,
		ExportDate: now.UTC().Format(time.RFC3339),
		DailyLogs:  nonNil(logs),
		Subjects:   nonNil(subjects),
		MockTests:  nonNil(tests),
		Goals:      &goals,
		ExamDates:  &exams,
		Reminders:  nonNil(reminders),
		Settings:   &prefs,
	}
	return doc, nil
}

// Validate checks every record in the document before anything is written.
func (d *Document) Validate() error {
	seenDates := map[string]string{}
	for i := range d.DailyLogs {
		l := &d.DailyLogs[i]
		if err := CheckRecord("daily log", l.ID, l); err != nil {
			return err
		}
		if other, ok := seenDates[l.Date]; ok {
			return &RecordError{Kind: "daily log", ID: l.ID, Field: "Date", Err: fmt.Errorf("date %s already used by %s", l.Date, other)}
		}
		seenDates[l.Date] = l.ID
	}
	for i := range d.Subjects {
		if err := CheckRecord("subject", d.Subjects[i].ID, &d.Subjects[i]); err != nil {
			return err
		}
	}
	for i := range d.MockTests {
		if err := CheckRecord("mock test", d.MockTests[i].ID, &d.MockTests[i]); err != nil {
			return err
		}
	}
	for i := range d.Reminders {
		if err := CheckRecord("reminder", d.Reminders[i].ID, &d.Reminders[i]); err != nil {
			return err
		}
	}
	if d.Goals != nil {
		if err := CheckRecord("goals", "", d.Goals); err != nil {
			return err
		}
	}
	if d.ExamDates != nil {
		if err := CheckRecord("exam dates", "", d.ExamDates); err != nil {
			return err
		}
	}
	return nil
}

// Import replaces each section present in doc inside a single transaction.
func Import(ctx context.Context, db *sql.DB, doc *Document) (ImportStats, error) {
	var stats ImportStats
	if err := doc.Validate(); err != nil {
		return stats, err
	}

	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		subjects := NewSubjectRepo(tx)
		if doc.Subjects != nil {
			if err := subjects.DeleteAll(ctx); err != nil {
				return err
			}
			for i := range doc.Subjects {
				if err := subjects.Save(ctx, &doc.Subjects[i]); err != nil {
					return err
				}
				stats.Subjects++
			}
		}

		if doc.DailyLogs != nil {
			logs := NewDailyLogRepo(tx)
			if err := logs.DeleteAll(ctx); err != nil {
				return err
			}
			for i := range doc.DailyLogs {
				l := doc.DailyLogs[i]
				if l.SubjectID == "" && l.Subject != "" {
					s, err := subjects.GetByName(ctx, l.Subject)
					if err != nil {
						return err
					}
					if s != nil {
						l.SubjectID = s.ID
						stats.Linked++
					}
				}
				if err := logs.Upsert(ctx, &l); err != nil {
					return err
				}
				stats.DailyLogs++
			}
		}

		if doc.MockTests != nil {
			tests := NewMockTestRepo(tx)
			if err := tests.DeleteAll(ctx); err != nil {
				return err
			}
			for i := range doc.MockTests {
				if err := tests.Save(ctx, &doc.MockTests[i]); err != nil {
					return err
				}
				stats.MockTests++
			}
		}

		if doc.Reminders != nil {
			reminders := NewReminderRepo(tx)
			if err := reminders.DeleteAll(ctx); err != nil {
				return err
			}
			for i := range doc.Reminders {
				if err := reminders.Save(ctx, &doc.Reminders[i]); err != nil {
					return err
				}
				stats.Reminders++
			}
		}

		settings := NewSettingsRepo(tx)
		if doc.Goals != nil {
			if err := settings.SetGoals(ctx, *doc.Goals); err != nil {
				return err
			}
		}
		if doc.ExamDates != nil {
			if err := settings.SetExamDates(ctx, *doc.ExamDates); err != nil {
				return err
			}
		}
		if doc.Settings != nil {
			if err := settings.SetSettings(ctx, *doc.Settings); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ImportStats{}, fmt.Errorf("import: %w", err)
	}
	return stats, nil
}

// WriteDocument encodes doc as indented JSON.
func WriteDocument(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	return nil
}

func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}
	return &doc, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
