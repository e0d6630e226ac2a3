package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/crmd/internal/jobs"
)

var cronOnce bool

var cronCmd = &cobra.Command{
	Use:   "cron",
	Short: "Run the scheduled batch jobs",
	Long: `Run the heartbeat and order-reminder jobs on their configured
intervals. The heartbeat appends a liveness line to its log file; the
reminder job logs every order placed within the lookback window.

With --once, both jobs run a single time and the command exits, which is
the mode to use from an external crontab.`,
	RunE: runCron,
}

func init() {
	rootCmd.AddCommand(cronCmd)

	cronCmd.Flags().BoolVar(&cronOnce, "once", false, "Run each job once and exit")
}

func runCron(cmd *cobra.Command, args []string) error {
	cfg, log, st, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	heartbeat := jobs.NewHeartbeat(st, log, cfg.Jobs.HeartbeatLog)
	reminders := jobs.NewOrderReminders(st, log, cfg.Jobs.ReminderLog, cfg.Jobs.ReminderWindow)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cronOnce {
		if err := heartbeat.Run(ctx); err != nil {
			return err
		}
		if err := reminders.Run(ctx); err != nil {
			return err
		}
		fmt.Println("✅ Jobs complete")
		return nil
	}

	fmt.Printf("⏰ Running jobs (heartbeat every %s, reminders every %s)...\n",
		cfg.Jobs.HeartbeatInterval, cfg.Jobs.ReminderInterval)

	scheduler := jobs.NewScheduler(heartbeat, reminders, cfg.Jobs.HeartbeatInterval, cfg.Jobs.ReminderInterval, log)
	if err := scheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
