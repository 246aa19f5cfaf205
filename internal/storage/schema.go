package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS subjects (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			total_topics INTEGER NOT NULL DEFAULT 0,
			completed_topics INTEGER NOT NULL DEFAULT 0,
			hours_spent REAL NOT NULL DEFAULT 0,
			last_studied TEXT
		);`,
		// One log per calendar day; upserts key on date.
		`CREATE TABLE IF NOT EXISTS daily_logs (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL UNIQUE,
			study_hours REAL NOT NULL DEFAULT 0,
			exam_focus TEXT NOT NULL DEFAULT '',
			subject_id TEXT,
			subject TEXT NOT NULL DEFAULT '',
			problems_solved INTEGER NOT NULL DEFAULT 0,
			platform TEXT NOT NULL DEFAULT '',
			topics TEXT NOT NULL DEFAULT '',
			mock_test_score INTEGER,
			energy_level INTEGER NOT NULL DEFAULT 0,
			notes TEXT NOT NULL DEFAULT '',
			checklist TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS mock_tests (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			exam TEXT NOT NULL DEFAULT '',
			score REAL NOT NULL DEFAULT 0,
			total_marks REAL NOT NULL DEFAULT 0,
			rank INTEGER,
			notes TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS reminders (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			date TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT ''
		);`,
		// goals, exam_dates and settings live here as JSON documents.
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_daily_logs_subject_id ON daily_logs(subject_id);`,
		`CREATE INDEX IF NOT EXISTS idx_mock_tests_date ON mock_tests(date);`,
		`CREATE INDEX IF NOT EXISTS idx_reminders_date ON reminders(date);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Columns added after the first release (ignore if already present)
	alterStmts := []string{
		`ALTER TABLE daily_logs ADD COLUMN subject_id TEXT;`,
	}
	for _, stmt := range alterStmts {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return fmt.Errorf("migrate alter: %w", err)
		}
	}

	return nil
}

// ClearAll removes every record and setting.
func ClearAll(ctx context.Context, db *sql.DB) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, table := range []string{"daily_logs", "subjects", "mock_tests", "reminders", "settings"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		return nil
	})
}
