package queries

import (
	"errors"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/pkg/guard"
)

var ErrGetStatsQueryIsNotConstructed = errors.New(
	"GetStatsQuery must be created via NewGetStatsQuery constructor",
)

// GetStatsQuery retrieves the lifetime operation counters.
type GetStatsQuery struct {
	actor role.Role

	guard guard.ConstructorGuard
}

// NewGetStatsQuery creates a query for the operation counters.
func NewGetStatsQuery(actor role.Role) (GetStatsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetStatsQuery{}, err
	}

	return GetStatsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

// Actor returns the role invoking the query.
func (q GetStatsQuery) Actor() role.Role {
	return q.actor
}

// GetStatsQueryResponse carries the lifetime counters plus the current
// occupancy snapshot.
type GetStatsQueryResponse struct {
	InboundRegistrations int `json:"inboundRegistrations"`
	OutboundDispatches   int `json:"outboundDispatches"`
	StorageMoves         int `json:"storageMoves"`
	BoxesInbound         int `json:"boxesInbound"`
	BoxesInStorage       int `json:"boxesInStorage"`
	BoxesOutbound        int `json:"boxesOutbound"`
	BoxesDispatched      int `json:"boxesDispatched"`
	PendingOrders        int `json:"pendingOrders"`
}
