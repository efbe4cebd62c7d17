package services

import (
	"errors"
	"time"

	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/domain/model/warehouse"
	"coldstore/internal/core/domain/model/workorder"
)

var (
	// ErrNoEligibleSource is returned when the selected source has no box,
	// or the box already has a pending order on it.
	ErrNoEligibleSource = errors.New("no eligible source box at the given position")

	// ErrInvalidTarget is returned when the requested target position is
	// not free, already reserved by another pending order, or out of range.
	ErrInvalidTarget = errors.New("target position is not available")

	// ErrReviewOrdersDisabled is returned when a Review order is created
	// while the supervisor role is disabled.
	ErrReviewOrdersDisabled = errors.New("review orders are disabled in this configuration")
)

// OrderPlacer validates and creates work orders against current occupancy
// and the reservations held by the pending queue.
//
// Business rules:
//   - the source zone is Inbound or Storage; outbound boxes only leave
//     via dispatch, so they are never eligible sources
//   - the source must hold a box with no other pending order on it
//   - a ToStorage target must be a vacant, unreserved slot chosen by the
//     caller
//   - a ToOutbound target is always computed fresh from current outbound
//     occupancy plus reservations; a caller-supplied target is ignored
//   - Review orders only reference the Storage zone and carry no target
//
// Placement never touches the zone store; all effects are deferred to
// execution.
type OrderPlacer struct {
	allocator     PositionAllocator
	reviewEnabled bool
}

// NewOrderPlacer creates a new OrderPlacer. reviewEnabled mirrors whether
// the supervisor role is active; without it the Review order type is
// rejected outright.
func NewOrderPlacer(allocator PositionAllocator, reviewEnabled bool) OrderPlacer {
	return OrderPlacer{allocator: allocator, reviewEnabled: reviewEnabled}
}

// Place validates the request and returns a new pending work order.
func (p OrderPlacer) Place(
	w *warehouse.Warehouse,
	pending []*workorder.WorkOrder,
	orderType workorder.Type,
	sourceZone kernel.Zone,
	sourcePosition int,
	requestedTarget *int,
	createdBy role.Role,
	now time.Time,
) (*workorder.WorkOrder, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if err := orderType.Validate(); err != nil {
		return nil, err
	}
	if orderType == workorder.TypeReview && !p.reviewEnabled {
		return nil, ErrReviewOrdersDisabled
	}

	if sourceZone != kernel.ZoneInbound && sourceZone != kernel.ZoneStorage {
		return nil, ErrNoEligibleSource
	}
	if !w.HasBoxAt(sourceZone, sourcePosition) {
		return nil, ErrNoEligibleSource
	}
	if p.allocator.PendingSourceKeys(pending)[kernel.SourceKey(sourceZone, sourcePosition)] {
		return nil, ErrNoEligibleSource
	}

	target, err := p.resolveTarget(w, pending, orderType, requestedTarget)
	if err != nil {
		return nil, err
	}

	return workorder.NewWorkOrder(
		kernel.NewUUID(),
		orderType,
		sourceZone,
		sourcePosition,
		target,
		createdBy,
		now,
	)
}

func (p OrderPlacer) resolveTarget(
	w *warehouse.Warehouse,
	pending []*workorder.WorkOrder,
	orderType workorder.Type,
	requestedTarget *int,
) (*int, error) {
	switch orderType {
	case workorder.TypeToStorage:
		if requestedTarget == nil {
			return nil, ErrInvalidTarget
		}
		for _, available := range p.allocator.AvailableStorageTargets(w, pending) {
			if available == *requestedTarget {
				target := *requestedTarget
				return &target, nil
			}
		}
		return nil, ErrInvalidTarget
	case workorder.TypeToOutbound:
		target := p.allocator.NextOutboundPosition(w, pending)
		return &target, nil
	default:
		return nil, nil
	}
}
