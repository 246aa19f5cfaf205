package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestDailyLogUpsertKeepsIDPerDate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewDailyLogRepo(db)

	score := 72
	first := &DailyLog{ID: "a", Date: "2025-01-02", StudyHours: 3, MockTestScore: &score, Checklist: map[string]bool{"revision": true}}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	second := &DailyLog{ID: "b", Date: "2025-01-02", StudyHours: 6, Notes: "again"}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("upsert same date: %v", err)
	}
	if second.ID != "a" {
		t.Fatalf("id=%s, want existing id a", second.ID)
	}

	got, err := repo.GetByDate(ctx, "2025-01-02")
	if err != nil || got == nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if got.StudyHours != 6 || got.Notes != "again" || got.MockTestScore != nil || got.Checklist != nil {
		t.Fatalf("log not replaced: %+v", got)
	}

	if err := repo.Upsert(ctx, &DailyLog{ID: "c", Date: "2025-01-05", StudyHours: 1, MockTestScore: &score, Checklist: map[string]bool{"sleep": false}}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 2 || all[0].Date != "2025-01-05" {
		t.Fatalf("want newest first, got %+v", all)
	}
	if all[0].MockTestScore == nil || *all[0].MockTestScore != 72 {
		t.Fatalf("score not stored: %+v", all[0])
	}
	if v, ok := all[0].Checklist["sleep"]; !ok || v {
		t.Fatalf("checklist not stored: %+v", all[0].Checklist)
	}

	missing, err := repo.GetByDate(ctx, "2030-01-01")
	if err != nil || missing != nil {
		t.Fatalf("missing date: log=%v err=%v", missing, err)
	}
	if err := repo.Delete(ctx, "zzz"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestSubjectAddHoursClampsAndTracksLastStudied(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewSubjectRepo(db)

	if err := repo.Save(ctx, &Subject{ID: "s", Name: "Operating Systems", TotalTopics: 12}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.AddHours(ctx, "s", 2, "2025-01-03"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.AddHours(ctx, "s", -5, ""); err != nil {
		t.Fatalf("subtract: %v", err)
	}
	s, _ := repo.Get(ctx, "s")
	if s.HoursSpent != 0 {
		t.Fatalf("hours=%v, want clamp to 0", s.HoursSpent)
	}
	if s.LastStudied == nil || *s.LastStudied != "2025-01-03" {
		t.Fatalf("lastStudied=%v", s.LastStudied)
	}

	byName, err := repo.GetByName(ctx, "operating systems")
	if err != nil || byName == nil || byName.ID != "s" {
		t.Fatalf("GetByName: %v %v", byName, err)
	}
	if err := repo.AddHours(ctx, "nope", 1, "2025-01-03"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("add to missing subject: %v", err)
	}
}

func TestMockTestsNewestFirstAndRemindersSoonestFirst(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	tests := NewMockTestRepo(db)
	for _, mt := range []MockTest{
		{ID: "1", Date: "2025-01-01", Exam: "GATE", Score: 60, TotalMarks: 100},
		{ID: "2", Date: "2025-03-01", Exam: "GATE", Score: 70, TotalMarks: 100},
		{ID: "3", Date: "2025-02-01", Exam: "NET", Score: 80, TotalMarks: 100},
	} {
		mt := mt
		if err := tests.Save(ctx, &mt); err != nil {
			t.Fatalf("save test: %v", err)
		}
	}
	list, err := tests.ListAll(ctx)
	if err != nil {
		t.Fatalf("list tests: %v", err)
	}
	if list[0].ID != "2" || list[1].ID != "3" || list[2].ID != "1" {
		t.Fatalf("order=%v", []string{list[0].ID, list[1].ID, list[2].ID})
	}

	reminders := NewReminderRepo(db)
	_ = reminders.Save(ctx, &Reminder{ID: "r1", Title: "Mock series", Date: "2025-11-20"})
	_ = reminders.Save(ctx, &Reminder{ID: "r2", Title: "Registration", Date: "2025-11-05"})
	rs, err := reminders.ListAll(ctx)
	if err != nil {
		t.Fatalf("list reminders: %v", err)
	}
	if len(rs) != 2 || rs[0].ID != "r2" {
		t.Fatalf("reminders=%+v", rs)
	}
}

func TestSettingsDefaults(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewSettingsRepo(db)

	g, err := repo.Goals(ctx)
	if err != nil {
		t.Fatalf("goals: %v", err)
	}
	if g != DefaultGoals() {
		t.Fatalf("goals=%+v", g)
	}
	d, _ := repo.ExamDates(ctx)
	if d.Gate != "2026-02-01" || d.Net != "2025-12-15" {
		t.Fatalf("exam dates=%+v", d)
	}

	if err := repo.SetSettings(ctx, Settings{DarkMode: true}); err != nil {
		t.Fatalf("set settings: %v", err)
	}
	s, _ := repo.Settings(ctx)
	if !s.DarkMode {
		t.Fatalf("dark mode not saved")
	}

	if err := ClearAll(ctx, db); err != nil {
		t.Fatalf("clear: %v", err)
	}
	s, _ = repo.Settings(ctx)
	if s.DarkMode {
		t.Fatalf("settings survived ClearAll")
	}
}

func TestCheckRecordReportsField(t *testing.T) {
	err := CheckRecord("reminder", "r", &Reminder{ID: "r", Title: "x", Date: "2025/01/01"})
	var rerr *RecordError
	if !errors.As(err, &rerr) || rerr.Field != "Date" {
		t.Fatalf("want Date RecordError, got %v", err)
	}
	if err := CheckRecord("reminder", "r", &Reminder{ID: "r", Title: "x", Date: "2025-01-01"}); err != nil {
		t.Fatalf("valid reminder rejected: %v", err)
	}
}
