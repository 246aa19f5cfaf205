package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"dashboard"},
		Short:   "Show the study dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := svc.Dashboard(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Study Dashboard · "+d.Date))
			fmt.Fprintln(out, ui.LabelValue("Total hours", ui.Hours(d.Totals.Hours)))
			fmt.Fprintln(out, ui.LabelValue("This week", ui.Hours(d.WeekHours)))
			fmt.Fprintln(out, ui.LabelValue("Current streak", fmt.Sprintf("%d days %s", d.Streak, ui.IconFire)))
			fmt.Fprintln(out, ui.LabelValue("Avg per log", ui.Hours(d.AvgHours)))
			fmt.Fprintln(out, ui.LabelValue("Problems solved", d.Totals.Problems))
			fmt.Fprintln(out, ui.LabelValue("Mock tests", d.Totals.MockTests))
			fmt.Fprintln(out, ui.LabelValue("Topics completed", d.Totals.TopicsCompleted))
			fmt.Fprintln(out, "")

			if len(d.Countdowns) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconClock+" Exams"))
				for _, c := range d.Countdowns {
					fmt.Fprintf(out, "- %s %s %s\n", ui.Key.Render(c.Exam), c.Target, countdownText(c.Countdown))
				}
				fmt.Fprintln(out, "")
			}

			printGoals(out, d.Goals)
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconChart+" Last 7 days"))
			for _, p := range d.WeeklyHours {
				fmt.Fprintf(out, "- %s %s %s\n", p.Date, ui.Bar(p.Hours/12, 24), ui.Hours(p.Hours))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconBook+" Recent activity"))
			if len(d.Recent) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no logs yet)"))
			}
			for _, l := range d.Recent {
				fmt.Fprintln(out, formatLog(l))
			}
			fmt.Fprintln(out, "")

			if len(d.Upcoming) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconCalendar+" Upcoming"))
				for _, r := range d.Upcoming {
					fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(r.Date), r.Title)
				}
				fmt.Fprintln(out, "")
			}

			earned := 0
			for _, a := range d.Achievements {
				if a.Earned {
					earned++
				}
			}
			fmt.Fprintln(out, ui.LabelValue(ui.IconTrophy+" Achievements", fmt.Sprintf("%d/%d", earned, len(d.Achievements))))
			fmt.Fprintln(out, ui.Muted.Render("“"+d.Quote+"”"))
			return nil
		},
	}

	return cmd
}
