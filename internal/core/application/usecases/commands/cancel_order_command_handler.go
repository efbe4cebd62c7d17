package commands

import (
	"context"

	"coldstore/internal/core/domain/model/role"
)

// CancelOrderCommandHandler removes a pending order without executing it.
// Authorization is the gate: unless cancellation is enabled in the policy,
// no role passes it.
type CancelOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	policy     role.Policy
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory WorkOrderUoWFactory, policy role.Policy) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the cancellation.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), role.OpCancelOrder); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.WorkOrderRepository().Remove(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
