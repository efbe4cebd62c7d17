package ports

import "context"

// SequenceGenerator hands out the NNN counter for generated identifiers,
// atomic per (prefix, dateKey). Callers fall back to a random suffix when
// the generator fails, so an id is always produced.
type SequenceGenerator interface {
	// Next returns the next counter value for the prefix on the given day,
	// starting at 1.
	Next(ctx context.Context, prefix, dateKey string) (int, error)
}
