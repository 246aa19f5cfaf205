package root

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/ui"
)

func newLogCmd() *cobra.Command {
	var in engine.LogInput
	var score int
	var checked []string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log (or replace) a day of study",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if cmd.Flags().Changed("score") {
				in.MockTestScore = &score
			}
			if len(checked) > 0 {
				in.Checklist = map[string]bool{}
				for _, item := range checked {
					in.Checklist[strings.TrimSpace(item)] = true
				}
			}

			res, err := svc.LogStudy(ctx, in)
			if err != nil {
				return err
			}
			verb := "Logged"
			if res.Updated {
				verb = "Updated"
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s %s %s: %s", ui.IconDone, verb, res.Log.Date, ui.Hours(res.Log.StudyHours))))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id "+res.Log.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Date, "date", "", "Date YYYY-MM-DD (default today)")
	cmd.Flags().Float64VarP(&in.StudyHours, "hours", "H", 0, "Hours studied")
	cmd.Flags().StringVarP(&in.Subject, "subject", "s", "", "Subject id or name")
	cmd.Flags().StringVar(&in.ExamFocus, "exam", "", "Exam focus (GATE|NET|Both)")
	cmd.Flags().IntVarP(&in.ProblemsSolved, "problems", "p", 0, "Problems solved")
	cmd.Flags().StringVar(&in.Platform, "platform", "", "Practice platform")
	cmd.Flags().StringVarP(&in.Topics, "topics", "t", "", "Topics covered")
	cmd.Flags().IntVar(&score, "score", 0, "Mock test score for the day")
	cmd.Flags().IntVarP(&in.EnergyLevel, "energy", "e", 0, "Energy level (1-5)")
	cmd.Flags().StringVarP(&in.Notes, "notes", "n", "", "Notes")
	cmd.Flags().StringSliceVar(&checked, "check", nil, "Checklist items done today (repeatable)")

	cmd.AddCommand(newLogRmCmd())
	return cmd
}

func newLogRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a daily log",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteLog(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Deleted log "+args[0]))
			return nil
		},
	}
}

func newLogsCmd() *cobra.Command {
	var limit int
	var month string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "List daily logs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var logs []storage.DailyLog
			if month != "" {
				m, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("invalid --month %q, want YYYY-MM", month)
				}
				logs, err = svc.LogsInRange(ctx, engine.MonthRange(m))
				if err != nil {
					return err
				}
				if limit > 0 && len(logs) > limit {
					logs = logs[:limit]
				}
			} else {
				logs, err = svc.RecentLogs(ctx, limit)
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBook, "Daily Logs"))
			if len(logs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no logs yet; try `pt log --hours 2`)"))
				return nil
			}
			for _, l := range logs {
				fmt.Fprintln(cmd.OutOrStdout(), formatLog(l))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Show at most N logs (0 for all)")
	cmd.Flags().StringVarP(&month, "month", "m", "", "Only logs in month YYYY-MM")
	return cmd
}

func formatLog(l storage.DailyLog) string {
	parts := []string{ui.Key.Render(l.Date), ui.Hours(l.StudyHours)}
	if l.Subject != "" {
		parts = append(parts, l.Subject)
	}
	if l.ProblemsSolved > 0 {
		parts = append(parts, fmt.Sprintf("%d problems", l.ProblemsSolved))
	}
	if l.EnergyLevel > 0 {
		parts = append(parts, fmt.Sprintf("energy %d/5", l.EnergyLevel))
	}
	if l.MockTestScore != nil {
		parts = append(parts, fmt.Sprintf("mock %d", *l.MockTestScore))
	}
	line := "- " + strings.Join(parts, " · ") + " " + ui.Muted.Render("("+l.ID+")")
	if l.Topics != "" {
		line += "\n  " + ui.Muted.Render(l.Topics)
	}
	return line
}
