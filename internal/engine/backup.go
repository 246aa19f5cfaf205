package engine

import (
	"context"
	"time"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

func (s *Service) Export(ctx context.Context) (*storage.Document, error) {
	doc, err := storage.Export(ctx, s.db, s.now())
	if err != nil {
		return nil, err
	}
	s.log.Infof("exported %d logs, %d subjects, %d mock tests", len(doc.DailyLogs), len(doc.Subjects), len(doc.MockTests))
	return doc, nil
}

// Import replaces the sections present in doc. Nothing is written if any
// record fails validation.
func (s *Service) Import(ctx context.Context, doc *storage.Document) (storage.ImportStats, error) {
	stats, err := storage.Import(ctx, s.db, doc)
	if err != nil {
		s.log.Errorf("import failed: %v", err)
		return stats, err
	}
	s.log.Infof("imported %d logs (%d linked by name), %d subjects, %d mock tests, %d reminders",
		stats.DailyLogs, stats.Linked, stats.Subjects, stats.MockTests, stats.Reminders)
	return stats, nil
}

// BackupFilename names an export taken on now's date.
func BackupFilename(now time.Time) string {
	return "study-tracker-backup-" + FormatDate(now) + ".json"
}
