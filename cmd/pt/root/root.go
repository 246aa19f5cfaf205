package root

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/config"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/logging"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/ui"
)

const Version = "0.1.0"

var (
	cfg    *config.Config
	logger logging.Logger = logging.Nop()

	dbFlag       string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:           "pt",
	Short:         "Progress Tracker: a local study log with analytics",
	Long:          "Progress Tracker records daily study sessions, subjects, mock tests and reminders, and turns them into streaks, goals, insights and achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if dbFlag != "" {
			c.DBPath = dbFlag
		}
		if logLevelFlag != "" {
			c.LogLevel = logLevelFlag
			if err := c.Validate(); err != nil {
				return err
			}
		}
		l, err := logging.New(c.Env, c.LogLevel)
		if err != nil {
			return err
		}
		cfg, logger = c, l
		return nil
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "SQLite database path (default $PT_DB_PATH or ~/.progress-tracker.db)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug|info|warn|error)")

	rootCmd.AddCommand(
		newLogCmd(),
		newLogsCmd(),
		newSubjectCmd(),
		newMockTestCmd(),
		newReminderCmd(),
		newGoalsCmd(),
		newExamCmd(),
		newStatusCmd(),
		newAnalyticsCmd(),
		newInsightsCmd(),
		newAchievementsCmd(),
		newCalendarCmd(),
		newDayCmd(),
		newExportCmd(),
		newImportCmd(),
		newClearCmd(),
		newSeedCmd(),
		newSettingsCmd(),
		newTimerCmd(),
		newBoardCmd(),
		newServeCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
