package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"coldstore/internal/core/application/usecases/commands"
)

// defaultSweepSpec fires every 30 seconds, with seconds resolution enabled.
const defaultSweepSpec = "*/30 * * * * *"

// AlertSweepJob periodically re-derives the alert feed from store state:
// overdue pending orders and the aggregate temperature alert. The sweep is
// read-only with respect to the warehouse; it replaces the in-process alert
// set wholesale each tick.
type AlertSweepJob struct {
	handler commands.RecomputeAlertsCommandHandler
	cron    *cron.Cron
	spec    string
	logger  *slog.Logger
}

// NewAlertSweepJob creates the sweep. An empty spec falls back to the
// 30-second default.
func NewAlertSweepJob(handler commands.RecomputeAlertsCommandHandler, spec string, logger *slog.Logger) *AlertSweepJob {
	if spec == "" {
		spec = defaultSweepSpec
	}
	return &AlertSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		spec:    spec,
		logger:  logger.With("component", "alert_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *AlertSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		cmd, err := commands.NewRecomputeAlertsCommand(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Alert sweep skipped", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Alert sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Alert sweep started", "spec", j.spec)
	return nil
}

// Stop stops the sweep.
func (j *AlertSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Alert sweep stopped")
}
