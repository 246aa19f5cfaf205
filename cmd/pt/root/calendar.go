package root

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/ui"
)

func newCalendarCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month of study intensity",
		RunE: func(cmd *cobra.Command, args []string) error {
			var year int
			var m time.Month
			if month != "" {
				t, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("invalid --month %q, want YYYY-MM", month)
				}
				year, m = t.Year(), t.Month()
			}

			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cal, err := svc.Calendar(ctx, year, m)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Calendar(cal))
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Hours", ui.Hours(cal.Stats.Hours)))
			fmt.Fprintln(out, ui.LabelValue("Study days", cal.Stats.StudyDays))
			fmt.Fprintln(out, ui.LabelValue("Avg per study day", ui.Hours(cal.Stats.AvgPerStudyDay)))
			fmt.Fprintln(out, ui.LabelValue("Longest streak", cal.Stats.LongestStreak))
			fmt.Fprintln(out, ui.LabelValue("Problems", cal.Stats.Problems))
			fmt.Fprintln(out, ui.LabelValue("Mock tests", cal.Stats.MockTests))
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month YYYY-MM (default current)")
	return cmd
}

func newDayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day <date>",
		Short: "Show everything recorded on a date",
		Args:  oneArg("date"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := svc.DayDetail(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCalendar, d.Date))
			if d.Log == nil {
				fmt.Fprintln(out, ui.Muted.Render("No study logged."))
			} else {
				fmt.Fprintln(out, formatLog(*d.Log))
				if d.Log.Notes != "" {
					fmt.Fprintln(out, ui.LabelValue("Notes", d.Log.Notes))
				}
				items := make([]string, 0, len(d.Log.Checklist))
				for item := range d.Log.Checklist {
					items = append(items, item)
				}
				sort.Strings(items)
				for _, item := range items {
					mark := "[ ]"
					if d.Log.Checklist[item] {
						mark = "[x]"
					}
					fmt.Fprintf(out, "  %s %s\n", mark, item)
				}
			}
			fmt.Fprintln(out, ui.LabelValue("Intensity", d.Intensity))
			for _, t := range d.MockTests {
				line := fmt.Sprintf("%s %s %g/%g", ui.IconTarget, t.Exam, t.Score, t.TotalMarks)
				if pct, ok := engine.TestPercent(t); ok {
					line += fmt.Sprintf(" (%.1f%%)", pct)
				}
				fmt.Fprintln(out, line)
			}
			for _, r := range d.Reminders {
				fmt.Fprintf(out, "%s %s\n", ui.IconInfo, r.Title)
			}
			return nil
		},
	}
}
