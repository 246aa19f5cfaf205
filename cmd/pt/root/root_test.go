package root

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute(), out.String())
	return out.String()
}

func useTempDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.db")
	dbFlag, cfg = path, nil
	t.Cleanup(func() { dbFlag = "" })
	return path
}

func TestSubjectAndLogCommands(t *testing.T) {
	useTempDB(t)

	run(t, newSubjectCmd(), "add", "Operating Systems", "--topics", "12", "--done", "3")
	run(t, newLogCmd(), "--date", "2025-01-02", "--hours", "4", "--subject", "operating systems", "--energy", "4")

	out := run(t, newLogsCmd())
	assert.Contains(t, out, "2025-01-02")
	assert.Contains(t, out, "Operating Systems")

	out = run(t, newSubjectCmd(), "list")
	assert.Contains(t, out, "3/12")
	assert.Contains(t, out, "4h")

	out = run(t, newLogCmd(), "--date", "2025-01-02", "--hours", "1")
	assert.Contains(t, out, "Updated")
}

func TestExportThenImport(t *testing.T) {
	useTempDB(t)
	run(t, newLogCmd(), "--date", "2025-03-01", "--hours", "2.5", "--check", "revision,sleep")

	file := filepath.Join(t.TempDir(), "backup.json")
	run(t, newExportCmd(), file)

	f, err := os.Open(file)
	require.NoError(t, err)
	doc, err := storage.ReadDocument(f)
	_ = f.Close()
	require.NoError(t, err)
	require.Len(t, doc.DailyLogs, 1)
	assert.True(t, doc.DailyLogs[0].Checklist["sleep"])

	useTempDB(t)
	out := run(t, newImportCmd(), file)
	assert.Contains(t, out, "Import complete")
	assert.True(t, strings.Contains(run(t, newLogsCmd()), "2025-03-01"))
}

func TestMockTestEditKeepsUnchangedFields(t *testing.T) {
	useTempDB(t)
	run(t, newMockTestCmd(), "add", "--date", "2025-04-01", "--exam", "NET", "--score", "30", "--total", "50", "--rank", "12")

	svc, cleanup, err := openService(context.Background())
	require.NoError(t, err)
	tests, err := svc.MockTestRepo().ListAll(context.Background())
	cleanup()
	require.NoError(t, err)
	require.Len(t, tests, 1)

	out := run(t, newMockTestCmd(), "edit", tests[0].ID, "--score", "45")
	assert.Contains(t, out, "Updated NET on 2025-04-01: 45/50")

	out = run(t, newMockTestCmd(), "list")
	assert.Contains(t, out, "45/50")
	assert.Contains(t, out, "rank 12")

	cmd := newMockTestCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"edit", "missing", "--score", "1"})
	assert.Error(t, cmd.Execute())
}

func TestLogsFilteredByMonth(t *testing.T) {
	useTempDB(t)
	run(t, newLogCmd(), "--date", "2025-05-31", "--hours", "1")
	run(t, newLogCmd(), "--date", "2025-06-02", "--hours", "2")

	out := run(t, newLogsCmd(), "--month", "2025-06")
	assert.Contains(t, out, "2025-06-02")
	assert.NotContains(t, out, "2025-05-31")

	cmd := newLogsCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--month", "June"})
	assert.Error(t, cmd.Execute())
}

func TestClearRequiresConfirmation(t *testing.T) {
	useTempDB(t)
	cmd := newClearCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())
}
