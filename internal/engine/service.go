package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/logging"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

type Service struct {
	db        *sql.DB
	logs      *storage.DailyLogRepo
	subjects  *storage.SubjectRepo
	tests     *storage.MockTestRepo
	reminders *storage.ReminderRepo
	settings  *storage.SettingsRepo

	now func() time.Time
	log logging.Logger
}

type Option func(*Service)

// WithClock fixes the service's notion of "now".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Service) { s.log = l }
}

func NewService(db *sql.DB, opts ...Option) *Service {
	s := &Service{
		db:        db,
		logs:      storage.NewDailyLogRepo(db),
		subjects:  storage.NewSubjectRepo(db),
		tests:     storage.NewMockTestRepo(db),
		reminders: storage.NewReminderRepo(db),
		settings:  storage.NewSettingsRepo(db),
		now:       time.Now,
		log:       logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) DailyLogRepo() *storage.DailyLogRepo { return s.logs }
func (s *Service) SubjectRepo() *storage.SubjectRepo   { return s.subjects }
func (s *Service) MockTestRepo() *storage.MockTestRepo { return s.tests }
func (s *Service) ReminderRepo() *storage.ReminderRepo { return s.reminders }
func (s *Service) SettingsRepo() *storage.SettingsRepo { return s.settings }
func (s *Service) Now() time.Time                      { return s.now() }

func normalizeName(kind, name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", fmt.Errorf("%s is required", kind)
	}
	return n, nil
}

func validateInput(kind string, in any) error {
	if err := storage.ValidateStruct(in); err != nil {
		return fmt.Errorf("invalid %s: %w", kind, err)
	}
	return nil
}

// Snapshot loads every record and checks it before any computation sees it.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	var err error
	if snap.Logs, err = s.logs.ListAll(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Subjects, err = s.subjects.ListAll(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.MockTests, err = s.tests.ListAll(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Reminders, err = s.reminders.ListAll(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Goals, err = s.settings.Goals(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.ExamDates, err = s.settings.ExamDates(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Settings, err = s.settings.Settings(ctx); err != nil {
		return Snapshot{}, err
	}
	if err := snap.Validate(); err != nil {
		s.log.Errorf("snapshot rejected: %v", err)
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	return BuildDashboard(snap, s.now()), nil
}

func (s *Service) Analytics(ctx context.Context) (Analytics, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return Analytics{}, err
	}
	return BuildAnalytics(snap, s.now()), nil
}

func (s *Service) Insights(ctx context.Context) ([]Insight, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Insights(InsightInput{Logs: snap.Logs, Subjects: snap.Subjects, MockTests: snap.MockTests, Now: s.now()}), nil
}

func (s *Service) Achievements(ctx context.Context) ([]Achievement, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return NewAchievementChecker(MetricsFor(snap.Logs, snap.MockTests, s.now())).GetAchievements(), nil
}

func (s *Service) GoalProgress(ctx context.Context) (GoalProgress, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return GoalProgress{}, err
	}
	return ComputeGoalProgress(snap.Goals, snap.Logs, snap.Subjects, snap.MockTests, s.now()), nil
}

// Calendar builds the given month. A zero year means the current month.
func (s *Service) Calendar(ctx context.Context, year int, month time.Month) (CalendarMonth, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return CalendarMonth{}, err
	}
	now := s.now()
	if year == 0 {
		year, month = now.Year(), now.Month()
	}
	return BuildCalendar(year, month, snap.Logs, snap.MockTests, now), nil
}

func (s *Service) DayDetail(ctx context.Context, date string) (DayDetail, error) {
	if _, err := ParseDate(date); err != nil {
		return DayDetail{}, err
	}
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return DayDetail{}, err
	}
	return BuildDayDetail(snap, date), nil
}

// MockTests lists tests newest first, optionally limited to one exam.
func (s *Service) MockTests(ctx context.Context, exam string) ([]storage.MockTest, MockTestSummary, error) {
	all, err := s.tests.ListAll(ctx)
	if err != nil {
		return nil, MockTestSummary{}, err
	}
	filtered := FilterByExam(all, exam)
	return filtered, SummarizeMockTests(filtered), nil
}

// ResolveSubject finds a subject by id, then by name.
func (s *Service) ResolveSubject(ctx context.Context, ref string) (*storage.Subject, error) {
	return resolveSubject(ctx, s.subjects, ref)
}

func resolveSubject(ctx context.Context, repo *storage.SubjectRepo, ref string) (*storage.Subject, error) {
	ref = strings.TrimSpace(ref)
	sub, err := repo.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		sub, err = repo.GetByName(ctx, ref)
		if err != nil {
			return nil, err
		}
	}
	if sub == nil {
		return nil, NotFoundError{Kind: "subject", ID: ref}
	}
	return sub, nil
}

func notFound(err error, kind, id string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return NotFoundError{Kind: kind, ID: id}
	}
	return err
}
