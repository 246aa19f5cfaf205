package engine

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

type LogInput struct {
	Date           string  `validate:"required,datetime=2006-01-02"`
	StudyHours     float64 `validate:"gte=0,lte=24"`
	ExamFocus      string
	Subject        string // subject id or name; empty for none
	ProblemsSolved int `validate:"gte=0"`
	Platform       string
	Topics         string
	MockTestScore  *int
	EnergyLevel    int `validate:"omitempty,gte=1,lte=5"` // 0 means not recorded
	Notes          string
	Checklist      map[string]bool
}

type LogResult struct {
	Log     storage.DailyLog
	Updated bool // an existing log for the date was replaced
}

// LogStudy saves the log for in.Date, replacing any log already on that day,
// and keeps the linked subject's hoursSpent and lastStudied in step.
func (s *Service) LogStudy(ctx context.Context, in LogInput) (*LogResult, error) {
	if strings.TrimSpace(in.Date) == "" {
		in.Date = FormatDate(s.now())
	}
	if err := validateInput("daily log", in); err != nil {
		return nil, err
	}

	var res LogResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		logs := storage.NewDailyLogRepo(tx)
		subjects := storage.NewSubjectRepo(tx)

		prev, err := logs.GetByDate(ctx, in.Date)
		if err != nil {
			return err
		}

		log := storage.DailyLog{
			ID:             uuid.NewString(),
			Date:           in.Date,
			StudyHours:     in.StudyHours,
			ExamFocus:      strings.TrimSpace(in.ExamFocus),
			ProblemsSolved: in.ProblemsSolved,
			Platform:       strings.TrimSpace(in.Platform),
			Topics:         strings.TrimSpace(in.Topics),
			MockTestScore:  in.MockTestScore,
			EnergyLevel:    in.EnergyLevel,
			Notes:          strings.TrimSpace(in.Notes),
			Checklist:      in.Checklist,
		}
		if prev != nil {
			log.ID = prev.ID
			res.Updated = true
		}
		if strings.TrimSpace(in.Subject) != "" {
			sub, err := resolveSubject(ctx, subjects, in.Subject)
			if err != nil {
				return err
			}
			log.SubjectID = sub.ID
			log.Subject = sub.Name
		}

		if err := logs.Upsert(ctx, &log); err != nil {
			return err
		}
		if err := moveSubjectHours(ctx, subjects, prev, &log); err != nil {
			return err
		}
		res.Log = log
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Infof("logged %.1fh on %s (updated=%t)", res.Log.StudyHours, res.Log.Date, res.Updated)
	return &res, nil
}

// moveSubjectHours takes prev's hours off its subject and credits next's
// subject. Either side may be nil or unlinked.
func moveSubjectHours(ctx context.Context, subjects *storage.SubjectRepo, prev, next *storage.DailyLog) error {
	if prev != nil && next != nil && prev.SubjectID != "" && prev.SubjectID == next.SubjectID {
		return ignoreMissing(subjects.AddHours(ctx, next.SubjectID, next.StudyHours-prev.StudyHours, next.Date))
	}
	if prev != nil && prev.SubjectID != "" {
		if err := ignoreMissing(subjects.AddHours(ctx, prev.SubjectID, -prev.StudyHours, "")); err != nil {
			return err
		}
	}
	if next != nil && next.SubjectID != "" {
		return subjects.AddHours(ctx, next.SubjectID, next.StudyHours, next.Date)
	}
	return nil
}

// ignoreMissing swallows ErrNotFound for subjects deleted since a log was written.
func ignoreMissing(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	return err
}

// DeleteLog removes a log and takes its hours back off its subject.
func (s *Service) DeleteLog(ctx context.Context, id string) error {
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		logs := storage.NewDailyLogRepo(tx)
		l, err := logs.Get(ctx, id)
		if err != nil {
			return err
		}
		if l == nil {
			return NotFoundError{Kind: "daily log", ID: id}
		}
		if err := logs.Delete(ctx, id); err != nil {
			return err
		}
		return moveSubjectHours(ctx, storage.NewSubjectRepo(tx), l, nil)
	})
	if err != nil {
		return err
	}
	s.log.Infof("deleted daily log %s", id)
	return nil
}

// RecentLogs returns up to n logs, newest first. n <= 0 returns all.
// LogsInRange returns the logs inside r, newest first.
func (s *Service) LogsInRange(ctx context.Context, r DateRange) ([]storage.DailyLog, error) {
	return s.logs.ListRange(ctx, r.Start, r.End)
}

func (s *Service) RecentLogs(ctx context.Context, n int) ([]storage.DailyLog, error) {
	logs, err := s.logs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 && len(logs) > n {
		logs = logs[:n]
	}
	return logs, nil
}
