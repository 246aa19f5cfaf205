package storage

import (
	"context"
	"fmt"
)

type ReminderRepo struct {
	db DBTX
}

func NewReminderRepo(db DBTX) *ReminderRepo {
	return &ReminderRepo{db: db}
}

func (r *ReminderRepo) Save(ctx context.Context, rem *Reminder) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminders (id, title, date, notes)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			date = excluded.date,
			notes = excluded.notes
	`, rem.ID, rem.Title, rem.Date, rem.Notes)
	if err != nil {
		return fmt.Errorf("reminder save: %w", err)
	}
	return nil
}

// ListAll returns reminders soonest first.
func (r *ReminderRepo) ListAll(ctx context.Context) ([]Reminder, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, date, notes FROM reminders ORDER BY date ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("reminder list: %w", err)
	}
	defer rows.Close()

	var out []Reminder
	for rows.Next() {
		var rem Reminder
		if err := rows.Scan(&rem.ID, &rem.Title, &rem.Date, &rem.Notes); err != nil {
			return nil, fmt.Errorf("reminder scan: %w", err)
		}
		out = append(out, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reminder rows: %w", err)
	}
	return out, nil
}

func (r *ReminderRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("reminder delete: %w", err)
	}
	return expectAffected(res, "reminder", id)
}

func (r *ReminderRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reminders`); err != nil {
		return fmt.Errorf("reminder delete all: %w", err)
	}
	return nil
}
