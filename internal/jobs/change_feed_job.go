package jobs

import (
	"context"
	"log/slog"
	"time"

	"coldstore/internal/core/application/usecases/commands"
	"coldstore/internal/core/ports"
)

// ChangeFeedJob reacts to state changed by other processes. Whenever the
// feed reports a changed entity key, the alert set is re-derived so the
// feed stays current between sweep ticks.
type ChangeFeedJob struct {
	feed    ports.ChangeFeed
	handler commands.RecomputeAlertsCommandHandler
	done    chan struct{}
	logger  *slog.Logger
}

// NewChangeFeedJob creates the consumer over the given feed.
func NewChangeFeedJob(feed ports.ChangeFeed, handler commands.RecomputeAlertsCommandHandler, logger *slog.Logger) *ChangeFeedJob {
	return &ChangeFeedJob{
		feed:    feed,
		handler: handler,
		done:    make(chan struct{}),
		logger:  logger.With("component", "change_feed_job"),
	}
}

// Start begins consuming the feed.
func (j *ChangeFeedJob) Start() error {
	go j.consume()
	j.logger.InfoContext(context.Background(), "Change feed consumer started")
	return nil
}

// Stop closes the feed and waits for the consumer to drain.
func (j *ChangeFeedJob) Stop() {
	if err := j.feed.Close(); err != nil {
		j.logger.Warn("Change feed close failed", "error", err)
	}
	<-j.done
	j.logger.InfoContext(context.Background(), "Change feed consumer stopped")
}

func (j *ChangeFeedJob) consume() {
	defer close(j.done)

	for key := range j.feed.Changes() {
		ctx := context.Background()

		cmd, err := commands.NewRecomputeAlertsCommand(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Change reaction skipped", "key", key, "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Change reaction failed", "key", key, "error", err)
		}
	}
}
