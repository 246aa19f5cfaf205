package engine

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

type SubjectInput struct {
	Name            string  `validate:"required"`
	TotalTopics     int     `validate:"gte=0"`
	CompletedTopics int     `validate:"gte=0"`
	HoursSpent      float64 `validate:"gte=0"`
}

type MockTestInput struct {
	Date       string  `validate:"required,datetime=2006-01-02"`
	Exam       string  `validate:"required"`
	Score      float64 `validate:"gte=0"`
	TotalMarks float64 `validate:"gt=0"`
	Rank       *int    `validate:"omitempty,gt=0"`
	Notes      string
}

type ReminderInput struct {
	Title string `validate:"required"`
	Date  string `validate:"required,datetime=2006-01-02"`
	Notes string
}

func (s *Service) CreateSubject(ctx context.Context, in SubjectInput) (*storage.Subject, error) {
	name, err := normalizeName("subject name", in.Name)
	if err != nil {
		return nil, err
	}
	in.Name = name
	if err := validateInput("subject", in); err != nil {
		return nil, err
	}

	sub := &storage.Subject{
		ID:              uuid.NewString(),
		Name:            name,
		TotalTopics:     in.TotalTopics,
		CompletedTopics: in.CompletedTopics,
		HoursSpent:      in.HoursSpent,
	}
	if err := s.subjects.Save(ctx, sub); err != nil {
		return nil, err
	}
	s.log.Infof("created subject %s (%s)", sub.Name, sub.ID)
	return sub, nil
}

func (s *Service) CreateMockTest(ctx context.Context, in MockTestInput) (*storage.MockTest, error) {
	in.Exam = strings.TrimSpace(in.Exam)
	if err := validateInput("mock test", in); err != nil {
		return nil, err
	}

	t := &storage.MockTest{
		ID:         uuid.NewString(),
		Date:       in.Date,
		Exam:       in.Exam,
		Score:      in.Score,
		TotalMarks: in.TotalMarks,
		Rank:       in.Rank,
		Notes:      strings.TrimSpace(in.Notes),
	}
	if err := s.tests.Save(ctx, t); err != nil {
		return nil, err
	}
	s.log.Infof("recorded mock test %s on %s", t.Exam, t.Date)
	return t, nil
}

func (s *Service) CreateReminder(ctx context.Context, in ReminderInput) (*storage.Reminder, error) {
	title, err := normalizeName("reminder title", in.Title)
	if err != nil {
		return nil, err
	}
	in.Title = title
	if err := validateInput("reminder", in); err != nil {
		return nil, err
	}

	r := &storage.Reminder{
		ID:    uuid.NewString(),
		Title: title,
		Date:  in.Date,
		Notes: strings.TrimSpace(in.Notes),
	}
	if err := s.reminders.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) DeleteMockTest(ctx context.Context, id string) error {
	return notFound(s.tests.Delete(ctx, id), "mock test", id)
}

func (s *Service) DeleteReminder(ctx context.Context, id string) error {
	return notFound(s.reminders.Delete(ctx, id), "reminder", id)
}
