package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/ui"
)

func newMockTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "test",
		Aliases: []string{"tests", "mock"},
		Short:   "Record and review mock tests",
	}
	cmd.AddCommand(newMockTestAddCmd(), newMockTestEditCmd(), newMockTestListCmd(), newMockTestRmCmd())
	return cmd
}

func newMockTestAddCmd() *cobra.Command {
	var in engine.MockTestInput
	var rank int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a mock test",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if in.Date == "" {
				in.Date = engine.FormatDate(svc.Now())
			}
			if cmd.Flags().Changed("rank") {
				in.Rank = &rank
			}
			t, err := svc.CreateMockTest(ctx, in)
			if err != nil {
				return err
			}
			pct, _ := engine.TestPercent(*t)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s %s on %s: %g/%g (%.1f%%)", ui.IconTarget, t.Exam, t.Date, t.Score, t.TotalMarks, pct)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id "+t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Date, "date", "", "Date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&in.Exam, "exam", "GATE", "Exam (GATE|NET)")
	cmd.Flags().Float64Var(&in.Score, "score", 0, "Score")
	cmd.Flags().Float64Var(&in.TotalMarks, "total", 100, "Total marks")
	cmd.Flags().IntVar(&rank, "rank", 0, "Rank")
	cmd.Flags().StringVarP(&in.Notes, "notes", "n", "", "Notes")
	return cmd
}

func newMockTestEditCmd() *cobra.Command {
	var (
		date, exam, notes string
		score, total      float64
		rank              int
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a recorded mock test",
		Args:  oneArg("id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cur, err := svc.MockTestRepo().Get(ctx, args[0])
			if err != nil {
				return err
			}
			if cur == nil {
				return engine.NotFoundError{Kind: "mock test", ID: args[0]}
			}

			in := engine.MockTestInput{
				Date:       cur.Date,
				Exam:       cur.Exam,
				Score:      cur.Score,
				TotalMarks: cur.TotalMarks,
				Rank:       cur.Rank,
				Notes:      cur.Notes,
			}
			f := cmd.Flags()
			if f.Changed("date") {
				in.Date = date
			}
			if f.Changed("exam") {
				in.Exam = exam
			}
			if f.Changed("score") {
				in.Score = score
			}
			if f.Changed("total") {
				in.TotalMarks = total
			}
			if f.Changed("rank") {
				in.Rank = &rank
			}
			if f.Changed("notes") {
				in.Notes = notes
			}

			t, err := svc.UpdateMockTest(ctx, args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Updated %s on %s: %g/%g", ui.IconDone, t.Exam, t.Date, t.Score, t.TotalMarks)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD")
	cmd.Flags().StringVar(&exam, "exam", "", "Exam (GATE|NET)")
	cmd.Flags().Float64Var(&score, "score", 0, "Score")
	cmd.Flags().Float64Var(&total, "total", 0, "Total marks")
	cmd.Flags().IntVar(&rank, "rank", 0, "Rank")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes")
	return cmd
}

func newMockTestListCmd() *cobra.Command {
	var exam string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List mock tests, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tests, summary, err := svc.MockTests(ctx, exam)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTarget, "Mock Tests"))
			if len(tests) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no mock tests)"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Tests", summary.Count))
			if summary.Scored > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Average", fmt.Sprintf("%.1f%%", summary.Average)))
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Best / worst", fmt.Sprintf("%.1f%% / %.1f%%", summary.Best, summary.Worst)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")
			for _, t := range tests {
				line := fmt.Sprintf("- %s %s %g/%g", ui.Key.Render(t.Date), t.Exam, t.Score, t.TotalMarks)
				if pct, ok := engine.TestPercent(t); ok {
					line += fmt.Sprintf(" (%.1f%%)", pct)
				}
				if t.Rank != nil {
					line += fmt.Sprintf(" rank %d", *t.Rank)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line+" "+ui.Muted.Render("("+t.ID+")"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&exam, "exam", "", "Only this exam")
	return cmd
}

func newMockTestRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a mock test",
		Args:  oneArg("id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteMockTest(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Deleted mock test "+args[0]))
			return nil
		},
	}
}
