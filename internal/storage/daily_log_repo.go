package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type DailyLogRepo struct {
	db DBTX
}

func NewDailyLogRepo(db DBTX) *DailyLogRepo {
	return &DailyLogRepo{db: db}
}

const dailyLogColumns = `id, date, study_hours, exam_focus, subject_id, subject, problems_solved,
	platform, topics, mock_test_score, energy_level, notes, checklist`

// Upsert writes log keyed by date. An existing log for the same date keeps its
// id; log.ID is updated to whatever id ends up stored.
func (r *DailyLogRepo) Upsert(ctx context.Context, log *DailyLog) error {
	var checklistJSON *string
	if len(log.Checklist) > 0 {
		data, err := json.Marshal(log.Checklist)
		if err != nil {
			return fmt.Errorf("marshal checklist: %w", err)
		}
		s := string(data)
		checklistJSON = &s
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO daily_logs (`+dailyLogColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			study_hours = excluded.study_hours,
			exam_focus = excluded.exam_focus,
			subject_id = excluded.subject_id,
			subject = excluded.subject,
			problems_solved = excluded.problems_solved,
			platform = excluded.platform,
			topics = excluded.topics,
			mock_test_score = excluded.mock_test_score,
			energy_level = excluded.energy_level,
			notes = excluded.notes,
			checklist = excluded.checklist
	`, log.ID, log.Date, log.StudyHours, log.ExamFocus, nullString(log.SubjectID), log.Subject, log.ProblemsSolved,
		log.Platform, log.Topics, log.MockTestScore, log.EnergyLevel, log.Notes, checklistJSON)
	if err != nil {
		return fmt.Errorf("daily log upsert: %w", err)
	}

	var id string
	if err := r.db.QueryRowContext(ctx, `SELECT id FROM daily_logs WHERE date = ?`, log.Date).Scan(&id); err != nil {
		return fmt.Errorf("daily log upsert id: %w", err)
	}
	log.ID = id
	return nil
}

func (r *DailyLogRepo) Get(ctx context.Context, id string) (*DailyLog, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+dailyLogColumns+` FROM daily_logs WHERE id = ?`, id)
	return scanDailyLogRow(row)
}

func (r *DailyLogRepo) GetByDate(ctx context.Context, date string) (*DailyLog, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+dailyLogColumns+` FROM daily_logs WHERE date = ?`, date)
	return scanDailyLogRow(row)
}

// ListAll returns every log, newest first.
func (r *DailyLogRepo) ListAll(ctx context.Context) ([]DailyLog, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+dailyLogColumns+` FROM daily_logs ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("daily log list: %w", err)
	}
	defer rows.Close()
	return scanDailyLogs(rows)
}

// ListRange returns logs with start <= date <= end, newest first.
func (r *DailyLogRepo) ListRange(ctx context.Context, start, end string) ([]DailyLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+dailyLogColumns+` FROM daily_logs
		WHERE date >= ? AND date <= ?
		ORDER BY date DESC
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("daily log list range: %w", err)
	}
	defer rows.Close()
	return scanDailyLogs(rows)
}

func (r *DailyLogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM daily_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("daily log delete: %w", err)
	}
	return expectAffected(res, "daily log", id)
}

// RenameSubject rewrites the display name on every log linked to subjectID.
func (r *DailyLogRepo) RenameSubject(ctx context.Context, subjectID, name string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE daily_logs SET subject = ? WHERE subject_id = ?`, name, subjectID); err != nil {
		return fmt.Errorf("daily log rename subject: %w", err)
	}
	return nil
}

// UnlinkSubject drops the subject reference but keeps the display name.
func (r *DailyLogRepo) UnlinkSubject(ctx context.Context, subjectID string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE daily_logs SET subject_id = NULL WHERE subject_id = ?`, subjectID); err != nil {
		return fmt.Errorf("daily log unlink subject: %w", err)
	}
	return nil
}

func (r *DailyLogRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM daily_logs`); err != nil {
		return fmt.Errorf("daily log delete all: %w", err)
	}
	return nil
}

func scanDailyLogs(rows *sql.Rows) ([]DailyLog, error) {
	var out []DailyLog
	for rows.Next() {
		l, err := scanDailyLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("daily log rows: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDailyLogRow(row *sql.Row) (*DailyLog, error) {
	l, err := scanDailyLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

func scanDailyLog(s scanner) (*DailyLog, error) {
	var (
		l         DailyLog
		subjectID sql.NullString
		score     sql.NullInt64
		checklist sql.NullString
	)
	if err := s.Scan(&l.ID, &l.Date, &l.StudyHours, &l.ExamFocus, &subjectID, &l.Subject, &l.ProblemsSolved,
		&l.Platform, &l.Topics, &score, &l.EnergyLevel, &l.Notes, &checklist); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("daily log scan: %w", err)
	}
	if subjectID.Valid {
		l.SubjectID = subjectID.String
	}
	if score.Valid {
		v := int(score.Int64)
		l.MockTestScore = &v
	}
	if checklist.Valid && checklist.String != "" {
		if err := json.Unmarshal([]byte(checklist.String), &l.Checklist); err != nil {
			return nil, fmt.Errorf("unmarshal checklist: %w", err)
		}
	}
	return &l, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func expectAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", kind, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}
