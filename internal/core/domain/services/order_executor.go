package services

import (
	"errors"

	"coldstore/internal/core/domain/model/warehouse"
	"coldstore/internal/core/domain/model/workorder"
)

var (
	// ErrSourceGone is returned when the box an order references is no
	// longer at its source position at execution time.
	ErrSourceGone = errors.New("source box is no longer at its position")

	// ErrTargetOccupied is returned when the order's target position was
	// claimed by someone else between creation and execution.
	ErrTargetOccupied = errors.New("target position is already occupied")
)

// OrderExecutor applies a pending work order to the zone store. The source
// box is re-resolved from current state, never from a copy taken at
// creation time, and the target is re-checked; an order that lost either
// race fails with a typed error and leaves the store untouched, so the
// caller can keep or drop the order as it sees fit.
type OrderExecutor struct{}

// NewOrderExecutor creates a new OrderExecutor instance.
func NewOrderExecutor() OrderExecutor {
	return OrderExecutor{}
}

// Execute applies the order's movement to the warehouse. Review orders are
// a pure confirmation: the source must still exist, nothing moves and no
// counter changes. The caller removes the order from the queue on success.
func (e OrderExecutor) Execute(w *warehouse.Warehouse, order *workorder.WorkOrder) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if err := order.Validate(); err != nil {
		return err
	}

	if !w.HasBoxAt(order.SourceZone(), order.SourcePosition()) {
		return ErrSourceGone
	}

	switch order.Type() {
	case workorder.TypeReview:
		return nil
	case workorder.TypeToStorage:
		return e.classify(w.MoveToStorage(order.SourceZone(), order.SourcePosition(), e.target(order)))
	case workorder.TypeToOutbound:
		return e.classify(w.MoveToOutbound(order.SourceZone(), order.SourcePosition(), e.target(order)))
	default:
		return workorder.ErrWorkOrderIsNotConstructed
	}
}

func (e OrderExecutor) target(order *workorder.WorkOrder) int {
	if target := order.TargetPosition(); target != nil {
		return *target
	}
	return 0
}

func (e OrderExecutor) classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, warehouse.ErrPositionOccupied):
		return ErrTargetOccupied
	case errors.Is(err, warehouse.ErrNoBoxAtPosition):
		return ErrSourceGone
	default:
		return err
	}
}
