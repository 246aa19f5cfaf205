package engine

import (
	"context"
	"database/sql"
	"math/rand"

	"github.com/google/uuid"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

var (
	sampleSubjects = []storage.Subject{
		{Name: "Data Structures", TotalTopics: 12, CompletedTopics: 8, HoursSpent: 45},
		{Name: "Algorithms", TotalTopics: 15, CompletedTopics: 10, HoursSpent: 52},
		{Name: "Database Management", TotalTopics: 10, CompletedTopics: 6, HoursSpent: 30},
		{Name: "Operating Systems", TotalTopics: 12, CompletedTopics: 5, HoursSpent: 28},
		{Name: "Computer Networks", TotalTopics: 10, CompletedTopics: 7, HoursSpent: 35},
	}
	sampleExams = []string{"GATE", "UGC NET", "SEBI Grade A"}

	// offsets are days before today
	sampleTests = []struct {
		offset int
		exam   string
		score  float64
		rank   int
		notes  string
	}{
		{4, "GATE", 72, 450, "Good performance in algorithms"},
		{9, "UGC NET", 65, 320, "Need to improve database concepts"},
		{17, "GATE", 68, 520, "OS weak areas identified"},
		{25, "SEBI Grade A", 70, 280, "Aptitude section strong"},
		{33, "GATE", 63, 650, "Networks section needs work"},
	}
	sampleReminders = []struct {
		offset int
		title  string
		notes  string
	}{
		{-16, "GATE Registration Deadline", "Don't forget to register!"},
		{-6, "Mock Test Series", "Start full-length mock tests"},
	}
	checklistItems = []struct {
		name   string
		chance float64
	}{
		{"studyHours", 0.3}, {"problemTarget", 0.4}, {"revision", 0.5}, {"formulaSheets", 0.6},
		{"aptitude", 0.5}, {"exercise", 0.4}, {"sleep", 0.3},
	}
)

// SeedSample fills an empty store with two weeks of sample data. It does
// nothing and returns false when any daily log already exists.
func (s *Service) SeedSample(ctx context.Context, rng *rand.Rand) (bool, error) {
	existing, err := s.logs.ListAll(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	today := civil(s.now())
	day := func(offset int) string {
		return today.AddDate(0, 0, -offset).Format(DateLayout)
	}

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		subjects := storage.NewSubjectRepo(tx)
		created := make([]storage.Subject, 0, len(sampleSubjects))
		for i, sub := range sampleSubjects {
			sub.ID = uuid.NewString()
			last := day(i + 1)
			sub.LastStudied = &last
			if err := subjects.Save(ctx, &sub); err != nil {
				return err
			}
			created = append(created, sub)
		}

		logs := storage.NewDailyLogRepo(tx)
		for i := 13; i >= 0; i-- {
			sub := created[rng.Intn(len(created))]
			checklist := make(map[string]bool, len(checklistItems))
			for _, c := range checklistItems {
				checklist[c.name] = rng.Float64() > c.chance
			}
			l := storage.DailyLog{
				ID:             uuid.NewString(),
				Date:           day(i),
				StudyHours:     float64(rng.Intn(5) + 4),
				ExamFocus:      sampleExams[rng.Intn(len(sampleExams))],
				SubjectID:      sub.ID,
				Subject:        sub.Name,
				ProblemsSolved: rng.Intn(30) + 10,
				Platform:       "LeetCode, GFG",
				Topics:         "Arrays, Linked Lists, Trees, Dynamic Programming",
				EnergyLevel:    rng.Intn(2) + 3,
				Notes:          "Good progress. Need to review weak areas.",
				Checklist:      checklist,
			}
			if i%4 == 0 {
				score := rng.Intn(30) + 60
				l.MockTestScore = &score
			}
			if err := logs.Upsert(ctx, &l); err != nil {
				return err
			}
		}

		tests := storage.NewMockTestRepo(tx)
		for _, st := range sampleTests {
			rank := st.rank
			t := storage.MockTest{
				ID:         uuid.NewString(),
				Date:       day(st.offset),
				Exam:       st.exam,
				Score:      st.score,
				TotalMarks: 100,
				Rank:       &rank,
				Notes:      st.notes,
			}
			if err := tests.Save(ctx, &t); err != nil {
				return err
			}
		}

		reminders := storage.NewReminderRepo(tx)
		for _, sr := range sampleReminders {
			r := storage.Reminder{ID: uuid.NewString(), Title: sr.title, Date: day(sr.offset), Notes: sr.notes}
			if err := reminders.Save(ctx, &r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	s.log.Info("sample data initialized")
	return true, nil
}
