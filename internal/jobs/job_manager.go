package jobs

import (
	"fmt"
	"log/slog"

	"coldstore/internal/core/application/usecases/commands"
	"coldstore/internal/core/ports"
)

// JobManager coordinates the background jobs: the periodic alert sweep and
// the change feed consumer.
type JobManager struct {
	alertSweepJob *AlertSweepJob
	changeFeedJob *ChangeFeedJob
}

// NewJobManager wires the jobs. The change feed may be nil, in which case
// only the sweep runs.
func NewJobManager(
	recomputeAlertsHandler commands.RecomputeAlertsCommandHandler,
	sweepSpec string,
	feed ports.ChangeFeed,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{
		alertSweepJob: NewAlertSweepJob(recomputeAlertsHandler, sweepSpec, logger),
	}
	if feed != nil {
		jm.changeFeedJob = NewChangeFeedJob(feed, recomputeAlertsHandler, logger)
	}
	return jm
}

// StartAll starts every configured job.
func (jm *JobManager) StartAll() error {
	if err := jm.alertSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start alert sweep: %w", err)
	}

	if jm.changeFeedJob != nil {
		if err := jm.changeFeedJob.Start(); err != nil {
			jm.alertSweepJob.Stop()
			return fmt.Errorf("failed to start change feed consumer: %w", err)
		}
	}
	return nil
}

// StopAll stops every running job gracefully.
func (jm *JobManager) StopAll() {
	if jm.changeFeedJob != nil {
		jm.changeFeedJob.Stop()
	}
	jm.alertSweepJob.Stop()
}
