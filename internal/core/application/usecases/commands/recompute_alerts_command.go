package commands

import (
	"errors"
	"time"

	"coldstore/internal/pkg/guard"
)

var ErrRecomputeAlertsCommandIsNotConstructed = errors.New(
	"RecomputeAlertsCommand must be created via NewRecomputeAlertsCommand constructor",
)

// RecomputeAlertsCommand triggers a derivation of the active alert set. It
// runs on the periodic sweep and after every successful mutation; carrying
// the evaluation time in the command keeps derivation deterministic.
type RecomputeAlertsCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewRecomputeAlertsCommand creates a command evaluating alerts as of now.
func NewRecomputeAlertsCommand(now time.Time) (RecomputeAlertsCommand, error) {
	if now.IsZero() {
		return RecomputeAlertsCommand{}, errors.New("evaluation time is required")
	}

	return RecomputeAlertsCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecomputeAlertsCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeAlertsCommandIsNotConstructed)
}

// Now returns the evaluation time.
func (c RecomputeAlertsCommand) Now() time.Time {
	return c.now
}
