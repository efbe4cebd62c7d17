// Package pglisten implements the change feed over postgres LISTEN/NOTIFY.
// Saving state fires pg_notify with the changed entity key; this listener
// turns those notifications into a channel of keys, so consumers can
// re-load the changed entity through the normal repository path.
package pglisten

import (
	"log/slog"
	"time"

	"github.com/lib/pq"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
)

// Listener implements ports.ChangeFeed over a dedicated postgres
// connection.
type Listener struct {
	listener *pq.Listener
	changes  chan string
	done     chan struct{}
	logger   *slog.Logger
}

// NewListener connects to the database and subscribes to the given
// notification channel.
func NewListener(dsn, channel string, logger *slog.Logger) (*Listener, error) {
	inner := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval,
		func(_ pq.ListenerEventType, err error) {
			if err != nil {
				logger.Warn("change feed connection event", "error", err)
			}
		})

	if err := inner.Listen(channel); err != nil {
		_ = inner.Close()
		return nil, err
	}

	l := &Listener{
		listener: inner,
		changes:  make(chan string),
		done:     make(chan struct{}),
		logger:   logger,
	}
	go l.pump()
	return l, nil
}

// Changes returns the stream of changed entity keys. The channel is closed
// when the feed shuts down.
func (l *Listener) Changes() <-chan string {
	return l.changes
}

// Close stops listening and releases the connection.
func (l *Listener) Close() error {
	close(l.done)
	return l.listener.Close()
}

func (l *Listener) pump() {
	defer close(l.changes)

	for {
		select {
		case <-l.done:
			return
		case notification, ok := <-l.listener.Notify:
			if !ok {
				return
			}
			// A nil notification signals a reconnect. Consumers re-load
			// on demand, so a gap in the stream is tolerable.
			if notification == nil {
				l.logger.Info("change feed reconnected")
				continue
			}
			select {
			case l.changes <- notification.Extra:
			case <-l.done:
				return
			}
		}
	}
}
