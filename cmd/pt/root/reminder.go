package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/ui"
)

func newReminderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reminder",
		Aliases: []string{"reminders"},
		Short:   "Manage dated reminders",
	}
	cmd.AddCommand(newReminderAddCmd(), newReminderListCmd(), newReminderRmCmd())
	return cmd
}

func newReminderAddCmd() *cobra.Command {
	var in engine.ReminderInput

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a reminder",
		Args:  oneArg("title"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in.Title = args[0]
			r, err := svc.CreateReminder(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Reminder %q on %s", ui.IconCalendar, r.Title, r.Date)))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Date, "date", "", "Date YYYY-MM-DD")
	cmd.Flags().StringVarP(&in.Notes, "notes", "n", "", "Notes")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newReminderListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List upcoming reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := svc.ReminderRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			if !all {
				list = engine.UpcomingReminders(list, svc.Now())
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCalendar, "Reminders"))
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(nothing coming up)"))
				return nil
			}
			for _, r := range list {
				line := fmt.Sprintf("- %s %s", ui.Key.Render(r.Date), r.Title)
				if r.Notes != "" {
					line += " " + ui.Muted.Render(r.Notes)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line+" "+ui.Muted.Render("("+r.ID+")"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include past reminders")
	return cmd
}

func newReminderRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a reminder",
		Args:  oneArg("id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteReminder(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Deleted reminder "+args[0]))
			return nil
		},
	}
}
