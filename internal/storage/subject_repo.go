package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type SubjectRepo struct {
	db DBTX
}

func NewSubjectRepo(db DBTX) *SubjectRepo {
	return &SubjectRepo{db: db}
}

const subjectColumns = `id, name, total_topics, completed_topics, hours_spent, last_studied`

// Save inserts s or replaces the subject with the same id.
func (r *SubjectRepo) Save(ctx context.Context, s *Subject) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subjects (`+subjectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			total_topics = excluded.total_topics,
			completed_topics = excluded.completed_topics,
			hours_spent = excluded.hours_spent,
			last_studied = excluded.last_studied
	`, s.ID, s.Name, s.TotalTopics, s.CompletedTopics, s.HoursSpent, s.LastStudied)
	if err != nil {
		return fmt.Errorf("subject save: %w", err)
	}
	return nil
}

func (r *SubjectRepo) Get(ctx context.Context, id string) (*Subject, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+subjectColumns+` FROM subjects WHERE id = ?`, id)
	return scanSubjectRow(row)
}

// GetByName matches names case-insensitively and returns the oldest match.
func (r *SubjectRepo) GetByName(ctx context.Context, name string) (*Subject, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+subjectColumns+` FROM subjects
		WHERE name = ? COLLATE NOCASE
		ORDER BY rowid
		LIMIT 1
	`, name)
	return scanSubjectRow(row)
}

// ListAll returns subjects in creation order.
func (r *SubjectRepo) ListAll(ctx context.Context) ([]Subject, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+subjectColumns+` FROM subjects ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("subject list: %w", err)
	}
	defer rows.Close()

	var out []Subject
	for rows.Next() {
		s, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("subject rows: %w", err)
	}
	return out, nil
}

// AddHours adjusts hours_spent by delta (never below zero) and moves
// last_studied forward to studiedOn when it is later. An empty studiedOn
// leaves last_studied alone.
func (r *SubjectRepo) AddHours(ctx context.Context, id string, delta float64, studiedOn string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE subjects SET
			hours_spent = MAX(0, hours_spent + ?),
			last_studied = CASE
				WHEN ? = '' THEN last_studied
				WHEN last_studied IS NULL OR last_studied < ? THEN ?
				ELSE last_studied
			END
		WHERE id = ?
	`, delta, studiedOn, studiedOn, studiedOn, id)
	if err != nil {
		return fmt.Errorf("subject add hours: %w", err)
	}
	return expectAffected(res, "subject", id)
}

func (r *SubjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("subject delete: %w", err)
	}
	return expectAffected(res, "subject", id)
}

func (r *SubjectRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM subjects`); err != nil {
		return fmt.Errorf("subject delete all: %w", err)
	}
	return nil
}

func scanSubjectRow(row *sql.Row) (*Subject, error) {
	s, err := scanSubject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func scanSubject(sc scanner) (*Subject, error) {
	var (
		s           Subject
		lastStudied sql.NullString
	)
	if err := sc.Scan(&s.ID, &s.Name, &s.TotalTopics, &s.CompletedTopics, &s.HoursSpent, &lastStudied); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("subject scan: %w", err)
	}
	if lastStudied.Valid {
		v := lastStudied.String
		s.LastStudied = &v
	}
	return &s, nil
}
