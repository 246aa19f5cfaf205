package root

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/ui"
)

func newGoalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Show or set monthly goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showGoals(cmd)
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show this month's goal progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showGoals(cmd)
		},
	}, newGoalsSetCmd())
	return cmd
}

func showGoals(cmd *cobra.Command) error {
	ctx := cmd.Context()
	svc, cleanup, err := openService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	p, err := svc.GoalProgress(ctx)
	if err != nil {
		return err
	}
	printGoals(cmd.OutOrStdout(), p)
	return nil
}

func printGoals(w io.Writer, p engine.GoalProgress) {
	fmt.Fprintln(w, ui.H2.Render(fmt.Sprintf("%s Monthly goals %s to %s (%d%% overall)", ui.IconTarget, p.Month.Start, p.Month.End, p.OverallPercent())))
	for _, m := range p.Metrics {
		style := ui.Muted
		if m.Percent >= 100 {
			style = ui.Good
		}
		fmt.Fprintf(w, "- %-18s %s %s\n", m.Label, ui.Bar(m.Percent/100, 20),
			style.Render(fmt.Sprintf("%g / %g (%.0f%%)", m.Actual, m.Target, m.Percent)))
	}
}

func newGoalsSetCmd() *cobra.Command {
	var hours float64
	var topics, tests, problems int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change monthly targets; unset flags keep their value",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			g, err := svc.SettingsRepo().Goals(ctx)
			if err != nil {
				return err
			}
			m := g.Monthly
			flags := cmd.Flags()
			if flags.Changed("hours") {
				m.StudyHours = hours
			}
			if flags.Changed("topics") {
				m.TopicsComplete = topics
			}
			if flags.Changed("tests") {
				m.MockTests = tests
			}
			if flags.Changed("problems") {
				m.ProblemsSolved = problems
			}
			if err := svc.SetGoals(ctx, m); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Goals saved"))
			p, err := svc.GoalProgress(ctx)
			if err != nil {
				return err
			}
			printGoals(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 0, "Study hours per month")
	cmd.Flags().IntVar(&topics, "topics", 0, "Topics completed")
	cmd.Flags().IntVar(&tests, "tests", 0, "Mock tests per month")
	cmd.Flags().IntVar(&problems, "problems", 0, "Problems solved per month")
	return cmd
}

func newExamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exam",
		Short: "Exam dates and countdowns",
	}

	var gate, net string
	set := &cobra.Command{
		Use:   "set",
		Short: "Set exam dates (YYYY-MM-DD)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := svc.SetExamDates(ctx, gate, net)
			if err != nil {
				return err
			}
			now := svc.Now()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Exam dates saved"))
			for _, ec := range []struct{ name, date string }{{"GATE", d.Gate}, {"NET", d.Net}} {
				if ec.date == "" {
					continue
				}
				c, err := engine.CountdownTo(ec.date, now)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue(ec.name, ec.date+" "+countdownText(c)))
			}
			return nil
		},
	}
	set.Flags().StringVar(&gate, "gate", "", "GATE exam date")
	set.Flags().StringVar(&net, "net", "", "NET exam date")

	cmd.AddCommand(set)
	return cmd
}

func countdownText(c engine.Countdown) string {
	if c.Passed {
		return ui.Muted.Render("(passed)")
	}
	return ui.Warn.Render(fmt.Sprintf("(%d days %d hours %d min)", c.Days, c.Hours, c.Minutes))
}
