package queries

import (
	"context"
	"errors"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/domain/model/warehouse"
	"coldstore/internal/pkg/errs"
)

var ErrGetStatsQueryHandlerIsNotConstructed = errors.New(
	"GetStatsQueryHandler must be created via NewGetStatsQueryHandler constructor",
)

// GetStatsQueryHandler serves the lifetime counters and occupancy snapshot.
type GetStatsQueryHandler struct {
	warehouses WarehouseReader
	orders     WorkOrderReader
	policy     role.Policy

	isConstructed bool
}

// NewGetStatsQueryHandler creates a GetStatsQueryHandler.
func NewGetStatsQueryHandler(
	warehouses WarehouseReader,
	orders WorkOrderReader,
	policy role.Policy,
) (GetStatsQueryHandler, error) {
	if warehouses == nil {
		return GetStatsQueryHandler{}, errs.NewValueIsRequiredError("warehouses")
	}
	if orders == nil {
		return GetStatsQueryHandler{}, errs.NewValueIsRequiredError("orders")
	}

	return GetStatsQueryHandler{
		warehouses:    warehouses,
		orders:        orders,
		policy:        policy,
		isConstructed: true,
	}, nil
}

// Handle returns the lifetime counters together with current occupancy.
func (h GetStatsQueryHandler) Handle(ctx context.Context, query GetStatsQuery) (GetStatsQueryResponse, error) {
	if !h.isConstructed {
		return GetStatsQueryResponse{}, ErrGetStatsQueryHandlerIsNotConstructed
	}
	if err := query.Validate(); err != nil {
		return GetStatsQueryResponse{}, err
	}
	if err := h.policy.Authorize(query.Actor(), role.OpViewZones); err != nil {
		return GetStatsQueryResponse{}, err
	}

	aggregate, err := h.warehouses.Get(ctx)
	if err != nil {
		return GetStatsQueryResponse{}, err
	}

	pending, err := h.orders.GetAllPending(ctx)
	if err != nil {
		return GetStatsQueryResponse{}, err
	}

	stats := aggregate.Stats()

	return GetStatsQueryResponse{
		InboundRegistrations: stats.InboundRegistrations(),
		OutboundDispatches:   stats.OutboundDispatches(),
		StorageMoves:         stats.StorageMoves(),
		BoxesInbound:         len(aggregate.Inbound()),
		BoxesInStorage:       occupiedSlots(aggregate.Slots()),
		BoxesOutbound:        len(aggregate.Outbound()),
		BoxesDispatched:      len(aggregate.Dispatched()),
		PendingOrders:        len(pending),
	}, nil
}

func occupiedSlots(slots []warehouse.Slot) int {
	count := 0
	for _, slot := range slots {
		if slot.IsOccupied() {
			count++
		}
	}
	return count
}
