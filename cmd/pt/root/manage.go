package root

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/ui"
)

func newClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all data and settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this deletes everything; re-run with --yes (consider `pt export` first)")
			}
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ClearAll(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" All data cleared"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
	return cmd
}

func newSeedCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty tracker with two weeks of sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !cmd.Flags().Changed("seed") {
				seed = svc.Now().UnixNano()
			}
			ok, err := svc.SeedSample(ctx, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(ui.IconInfo+" Logs already exist; nothing seeded"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSparkle+" Sample data added. Try `pt status`."))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible samples")
	return cmd
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change display settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st, err := svc.SettingsRepo().Settings(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Dark mode", onOff(st.DarkMode)))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "dark <on|off>",
		Short:     "Toggle the dark palette for the board",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			on := args[0] == "on"
			if err := svc.SetDarkMode(ctx, on); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Dark mode "+onOff(on)))
			return nil
		},
	})
	return cmd
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
