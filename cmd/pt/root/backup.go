package root

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/ui"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write a JSON backup (use - for stdout)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc, err := svc.Export(ctx)
			if err != nil {
				return err
			}

			path := engine.BackupFilename(svc.Now())
			if len(args) == 1 {
				path = args[0]
			}
			if path == "-" {
				return storage.WriteDocument(cmd.OutOrStdout(), doc)
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			if err := storage.WriteDocument(f, doc); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", path, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Exported %d logs, %d subjects, %d mock tests to %s",
				ui.IconDone, len(doc.DailyLogs), len(doc.Subjects), len(doc.MockTests), path)))
			return nil
		},
	}

	return cmd
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore a JSON backup (use - for stdin)",
		Long: `Restore a JSON backup written by export.

Every section present in the file replaces the stored section of the same
kind; sections missing from the file are left alone. The whole file is
validated first and nothing is written if any record is invalid.`,
		Args: oneArg("file"),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()
				r = f
			}
			doc, err := storage.ReadDocument(r)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			stats, err := svc.Import(ctx, doc)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Import complete"))
			fmt.Fprintln(out, ui.LabelValue("Daily logs", stats.DailyLogs))
			fmt.Fprintln(out, ui.LabelValue("Subjects", stats.Subjects))
			fmt.Fprintln(out, ui.LabelValue("Mock tests", stats.MockTests))
			fmt.Fprintln(out, ui.LabelValue("Reminders", stats.Reminders))
			if stats.Linked > 0 {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d logs linked to subjects by name", stats.Linked)))
			}
			return nil
		},
	}

	return cmd
}
