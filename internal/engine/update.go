package engine

import (
	"context"
	"database/sql"
	"strings"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

// UpdateSubject replaces a subject's fields. hoursSpent and lastStudied are
// kept unless in.HoursSpent is set. A rename is written through to every
// log linked to the subject.
func (s *Service) UpdateSubject(ctx context.Context, ref string, in SubjectInput) (*storage.Subject, error) {
	name, err := normalizeName("subject name", in.Name)
	if err != nil {
		return nil, err
	}
	in.Name = name
	if err := validateInput("subject", in); err != nil {
		return nil, err
	}

	var updated *storage.Subject
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		subjects := storage.NewSubjectRepo(tx)
		sub, err := resolveSubject(ctx, subjects, ref)
		if err != nil {
			return err
		}
		renamed := sub.Name != name

		sub.Name = name
		sub.TotalTopics = in.TotalTopics
		sub.CompletedTopics = in.CompletedTopics
		if in.HoursSpent > 0 {
			sub.HoursSpent = in.HoursSpent
		}
		if err := subjects.Save(ctx, sub); err != nil {
			return err
		}
		if renamed {
			if err := storage.NewDailyLogRepo(tx).RenameSubject(ctx, sub.ID, name); err != nil {
				return err
			}
		}
		updated = sub
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteSubject removes a subject. Its logs keep the display name.
func (s *Service) DeleteSubject(ctx context.Context, ref string) error {
	return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		subjects := storage.NewSubjectRepo(tx)
		sub, err := resolveSubject(ctx, subjects, ref)
		if err != nil {
			return err
		}
		if err := storage.NewDailyLogRepo(tx).UnlinkSubject(ctx, sub.ID); err != nil {
			return err
		}
		return subjects.Delete(ctx, sub.ID)
	})
}

func (s *Service) UpdateMockTest(ctx context.Context, id string, in MockTestInput) (*storage.MockTest, error) {
	in.Exam = strings.TrimSpace(in.Exam)
	if err := validateInput("mock test", in); err != nil {
		return nil, err
	}
	t, err := s.tests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NotFoundError{Kind: "mock test", ID: id}
	}
	t.Date = in.Date
	t.Exam = in.Exam
	t.Score = in.Score
	t.TotalMarks = in.TotalMarks
	t.Rank = in.Rank
	t.Notes = strings.TrimSpace(in.Notes)
	if err := s.tests.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) SetGoals(ctx context.Context, monthly storage.MonthlyGoals) error {
	if err := validateInput("goals", monthly); err != nil {
		return err
	}
	return s.settings.SetGoals(ctx, storage.Goals{Monthly: monthly})
}

// SetExamDates updates the exam dates; empty arguments keep the current value.
func (s *Service) SetExamDates(ctx context.Context, gate, net string) (storage.ExamDates, error) {
	d, err := s.settings.ExamDates(ctx)
	if err != nil {
		return storage.ExamDates{}, err
	}
	if gate = strings.TrimSpace(gate); gate != "" {
		d.Gate = gate
	}
	if net = strings.TrimSpace(net); net != "" {
		d.Net = net
	}
	if err := validateInput("exam dates", d); err != nil {
		return storage.ExamDates{}, err
	}
	if err := s.settings.SetExamDates(ctx, d); err != nil {
		return storage.ExamDates{}, err
	}
	return d, nil
}

func (s *Service) SetDarkMode(ctx context.Context, on bool) error {
	st, err := s.settings.Settings(ctx)
	if err != nil {
		return err
	}
	st.DarkMode = on
	return s.settings.SetSettings(ctx, st)
}

// ClearAll wipes every record and setting.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := storage.ClearAll(ctx, s.db); err != nil {
		return err
	}
	s.log.Warn("all data cleared")
	return nil
}
