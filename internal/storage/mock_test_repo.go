package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type MockTestRepo struct {
	db DBTX
}

func NewMockTestRepo(db DBTX) *MockTestRepo {
	return &MockTestRepo{db: db}
}

const mockTestColumns = `id, date, exam, score, total_marks, rank, notes`

func (r *MockTestRepo) Save(ctx context.Context, t *MockTest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO mock_tests (`+mockTestColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			exam = excluded.exam,
			score = excluded.score,
			total_marks = excluded.total_marks,
			rank = excluded.rank,
			notes = excluded.notes
	`, t.ID, t.Date, t.Exam, t.Score, t.TotalMarks, t.Rank, t.Notes)
	if err != nil {
		return fmt.Errorf("mock test save: %w", err)
	}
	return nil
}

func (r *MockTestRepo) Get(ctx context.Context, id string) (*MockTest, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+mockTestColumns+` FROM mock_tests WHERE id = ?`, id)
	t, err := scanMockTest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

// ListAll returns tests newest first; same-day tests keep latest-inserted first.
func (r *MockTestRepo) ListAll(ctx context.Context) ([]MockTest, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+mockTestColumns+` FROM mock_tests ORDER BY date DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("mock test list: %w", err)
	}
	defer rows.Close()

	var out []MockTest
	for rows.Next() {
		t, err := scanMockTest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mock test rows: %w", err)
	}
	return out, nil
}

func (r *MockTestRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mock_tests WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mock test delete: %w", err)
	}
	return expectAffected(res, "mock test", id)
}

func (r *MockTestRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM mock_tests`); err != nil {
		return fmt.Errorf("mock test delete all: %w", err)
	}
	return nil
}

func scanMockTest(sc scanner) (*MockTest, error) {
	var (
		t    MockTest
		rank sql.NullInt64
	)
	if err := sc.Scan(&t.ID, &t.Date, &t.Exam, &t.Score, &t.TotalMarks, &rank, &t.Notes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("mock test scan: %w", err)
	}
	if rank.Valid {
		v := int(rank.Int64)
		t.Rank = &v
	}
	return &t, nil
}
