// Package jobs provides the scheduled background tasks of the warehouse.
//
// AlertSweepJob re-derives the alert feed from store state on a cron
// schedule (every 30 seconds by default, using github.com/robfig/cron/v3
// with seconds resolution). ChangeFeedJob consumes the postgres
// notification stream and triggers the same derivation whenever another
// process changes persisted state.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(recomputeHandler, sweepSpec, feed, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The sweep only reads warehouse state; it replaces the in-process alert
// set atomically and never mutates persisted entities, except for expiring
// orders past the configured TTL when that extension is enabled.
package jobs
