package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/ui"
)

func newSubjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subject",
		Aliases: []string{"subjects"},
		Short:   "Manage subjects",
	}
	cmd.AddCommand(newSubjectAddCmd(), newSubjectListCmd(), newSubjectEditCmd(), newSubjectRmCmd())
	return cmd
}

func oneArg(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New(name + " is required")
		}
		return nil
	}
}

func newSubjectAddCmd() *cobra.Command {
	var in engine.SubjectInput

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a subject",
		Args:  oneArg("name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in.Name = args[0]
			sub, err := svc.CreateSubject(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Added subject %s", ui.IconPlus, sub.Name)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id "+sub.ID))
			return nil
		},
	}

	cmd.Flags().IntVar(&in.TotalTopics, "topics", 0, "Total topics")
	cmd.Flags().IntVar(&in.CompletedTopics, "done", 0, "Completed topics")
	cmd.Flags().Float64Var(&in.HoursSpent, "hours", 0, "Hours already spent")
	return cmd
}

func newSubjectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List subjects with completion and status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			subjects, err := svc.SubjectRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBook, "Subjects"))
			if len(subjects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no subjects yet; try `pt subject add \"Operating Systems\" --topics 12`)"))
				return nil
			}
			for _, s := range subjects {
				pct := engine.SubjectCompletion(s)
				last := "never"
				if s.LastStudied != nil {
					last = *s.LastStudied
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %d/%d (%d%%) %s %s\n",
					ui.Key.Render(s.Name), ui.Bar(float64(pct)/100, 20), s.CompletedTopics, s.TotalTopics, pct,
					ui.StatusText(engine.StatusFor(pct)),
					ui.Muted.Render(fmt.Sprintf("%s · last %s · %s", ui.Hours(s.HoursSpent), last, s.ID)))
			}
			return nil
		},
	}
}

func newSubjectEditCmd() *cobra.Command {
	var in engine.SubjectInput

	cmd := &cobra.Command{
		Use:   "edit <id|name>",
		Short: "Edit a subject; a rename is applied to its logs",
		Args:  oneArg("subject"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cur, err := svc.ResolveSubject(ctx, args[0])
			if err != nil {
				return err
			}
			next := engine.SubjectInput{
				Name:            cur.Name,
				TotalTopics:     cur.TotalTopics,
				CompletedTopics: cur.CompletedTopics,
			}
			flags := cmd.Flags()
			if flags.Changed("name") {
				next.Name = in.Name
			}
			if flags.Changed("topics") {
				next.TotalTopics = in.TotalTopics
			}
			if flags.Changed("done") {
				next.CompletedTopics = in.CompletedTopics
			}
			if flags.Changed("hours") {
				next.HoursSpent = in.HoursSpent
			}

			sub, err := svc.UpdateSubject(ctx, cur.ID, next)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Updated %s: %d/%d topics, %s",
				ui.IconDone, sub.Name, sub.CompletedTopics, sub.TotalTopics, ui.Hours(sub.HoursSpent))))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "New name")
	cmd.Flags().IntVar(&in.TotalTopics, "topics", 0, "Total topics")
	cmd.Flags().IntVar(&in.CompletedTopics, "done", 0, "Completed topics")
	cmd.Flags().Float64Var(&in.HoursSpent, "hours", 0, "Override hours spent")
	return cmd
}

func newSubjectRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id|name>",
		Short: "Delete a subject; its logs keep the name",
		Args:  oneArg("subject"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteSubject(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Deleted subject "+args[0]))
			return nil
		},
	}
}
