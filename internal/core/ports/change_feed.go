package ports

// ChangeFeed delivers the logical keys of entities changed by other
// processes. Saving state fires a notification; consumers re-load the
// changed key through the same normalization path as the initial load.
type ChangeFeed interface {
	// Changes returns the stream of changed entity keys. The channel is
	// closed when the feed shuts down.
	Changes() <-chan string

	// Close stops listening and releases the underlying connection.
	Close() error
}
