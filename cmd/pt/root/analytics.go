package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/ui"
)

func newAnalyticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show consistency, subject and weekday analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			a, err := svc.Analytics(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Analytics"))
			fmt.Fprintln(out, ui.LabelValue("Total hours", ui.Hours(a.Totals.Hours)))
			fmt.Fprintln(out, ui.LabelValue("Study days", a.Totals.StudyDays))
			fmt.Fprintln(out, ui.LabelValue("Avg per study day", ui.Hours(a.AvgPerStudyDay)))
			fmt.Fprintln(out, ui.LabelValue("Current / longest streak", fmt.Sprintf("%d / %d days", a.Consistency.CurrentStreak, a.Consistency.LongestStreak)))
			fmt.Fprintln(out, ui.LabelValue("This month", fmt.Sprintf("%d study days (%d%%)", a.Consistency.MonthStudyDays, a.Consistency.MonthPercent)))
			fmt.Fprintln(out, ui.LabelValue("This week", fmt.Sprintf("%d study days", a.Consistency.WeekStudyDays)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Subjects"))
			if len(a.Subjects) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no subjects)"))
			}
			for _, s := range a.Subjects {
				energy := "-"
				if s.AvgEnergy > 0 {
					energy = fmt.Sprintf("%.1f", s.AvgEnergy)
				}
				fmt.Fprintf(out, "- %-22s %s %3d%% %s energy %s %s\n",
					s.Name, ui.Bar(float64(s.Completion)/100, 16), s.Completion, ui.Hours(s.HoursSpent), energy, ui.StatusText(s.Status))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Time by subject"))
			for _, d := range a.Distribution {
				fmt.Fprintf(out, "- %-22s %s\n", d.Subject, ui.Hours(d.Hours))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Average hours by weekday"))
			for _, w := range a.Weekday {
				fmt.Fprintf(out, "- %-9s %s %s %s\n", w.Day, ui.Bar(w.Average/12, 20), ui.Hours(w.Average), ui.Muted.Render(fmt.Sprintf("(%d logs)", w.Count)))
			}
			fmt.Fprintln(out, "")

			if a.MockTests.Count > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconTarget+" Mock tests"))
				fmt.Fprintln(out, ui.LabelValue("Taken", a.MockTests.Count))
				if a.MockTests.Scored > 0 {
					fmt.Fprintln(out, ui.LabelValue("Average / best / worst", fmt.Sprintf("%.1f%% / %.1f%% / %.1f%%", a.MockTests.Average, a.MockTests.Best, a.MockTests.Worst)))
				}
				for _, p := range a.MockTrend {
					fmt.Fprintf(out, "- %s %-4s %s %.1f%%\n", p.Date, p.Exam, ui.Bar(p.Percent/100, 20), p.Percent)
				}
				fmt.Fprintln(out, "")
			}

			printInsights(cmd, a.Insights)
			return nil
		},
	}
}

func printInsights(cmd *cobra.Command, list []engine.Insight) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.H2.Render(ui.IconSparkle+" Insights"))
	if len(list) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("Keep logging to unlock insights."))
		return
	}
	for _, in := range list {
		fmt.Fprintln(out, ui.InsightText(in))
	}
}

func newInsightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show study insights",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := svc.Insights(ctx)
			if err != nil {
				return err
			}
			printInsights(cmd, list)
			return nil
		},
	}
}

func newAchievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show earned and locked achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := svc.Achievements(ctx)
			if err != nil {
				return err
			}
			earned := 0
			for _, a := range list {
				if a.Earned {
					earned++
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTrophy, fmt.Sprintf("Achievements %d/%d", earned, len(list))))
			for _, a := range list {
				fmt.Fprintln(cmd.OutOrStdout(), "- "+ui.AchievementText(a))
			}
			return nil
		},
	}
}
