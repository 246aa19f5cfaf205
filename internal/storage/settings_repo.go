package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	keyGoals     = "goals"
	keyExamDates = "exam_dates"
	keySettings  = "settings"
)

// SettingsRepo stores the singleton documents (goals, exam dates, UI
// settings) as JSON values.
type SettingsRepo struct {
	db DBTX
}

func NewSettingsRepo(db DBTX) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Goals(ctx context.Context) (Goals, error) {
	g := DefaultGoals()
	if _, err := r.get(ctx, keyGoals, &g); err != nil {
		return Goals{}, err
	}
	return g, nil
}

func (r *SettingsRepo) SetGoals(ctx context.Context, g Goals) error {
	return r.put(ctx, keyGoals, g)
}

func (r *SettingsRepo) ExamDates(ctx context.Context) (ExamDates, error) {
	d := DefaultExamDates()
	if _, err := r.get(ctx, keyExamDates, &d); err != nil {
		return ExamDates{}, err
	}
	return d, nil
}

func (r *SettingsRepo) SetExamDates(ctx context.Context, d ExamDates) error {
	return r.put(ctx, keyExamDates, d)
}

func (r *SettingsRepo) Settings(ctx context.Context) (Settings, error) {
	var s Settings
	if _, err := r.get(ctx, keySettings, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (r *SettingsRepo) SetSettings(ctx context.Context, s Settings) error {
	return r.put(ctx, keySettings, s)
}

func (r *SettingsRepo) get(ctx context.Context, key string, dst any) (bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("settings get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("settings decode %s: %w", key, err)
	}
	return true, nil
}

func (r *SettingsRepo) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("settings encode %s: %w", key, err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(data))
	if err != nil {
		return fmt.Errorf("settings put %s: %w", key, err)
	}
	return nil
}
