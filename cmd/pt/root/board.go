package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/api"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/tui"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/ui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
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
			ui.SetDarkMode(st.DarkMode)
			return tui.RunBoard(ctx, svc, cmd.OutOrStdout())
		},
	}

	return cmd
}

func newTimerCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run a Pomodoro timer (25 min work / 5 min break)",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := engine.ParseTimerMode(mode)
			if err != nil {
				return err
			}
			return tui.RunTimer(cmd.Context(), m, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "work", "Starting mode (work|break)")
	return cmd
}

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve read-only JSON views on localhost",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = cfg.HTTPAddr
			} else {
				c := *cfg
				c.HTTPAddr = addr
				if err := c.Validate(); err != nil {
					return err
				}
			}
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconChart, "Serving on http://"+addr+"/api/dashboard"))
			return api.Serve(ctx, addr, api.NewApp(svc, logger))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default $PT_HTTP_ADDR or 127.0.0.1:8088)")
	return cmd
}
