package commands

import (
	"context"
	"errors"
	"time"

	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/ports"
	"coldstore/internal/pkg/errs"
)

// ResolveAlertCommandHandler removes an alert from the board. For an
// overdue-order alert the underlying order is rescheduled first, so the
// next derivation does not immediately recreate the alert; the order may
// already be gone, which is fine, the alert is resolved regardless.
type ResolveAlertCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	policy     role.Policy
	board      ports.AlertBoard
}

// NewResolveAlertCommandHandler creates a handler for alert resolution.
func NewResolveAlertCommandHandler(uowFactory WorkOrderUoWFactory, policy role.Policy, board ports.AlertBoard) ResolveAlertCommandHandler {
	return ResolveAlertCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		board:      board,
	}
}

// Handle processes the resolution.
func (h *ResolveAlertCommandHandler) Handle(ctx context.Context, cmd ResolveAlertCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), role.OpResolveAlert); err != nil {
		return err
	}

	active, ok := h.board.Get(cmd.AlertID())
	if !ok {
		return errs.NewObjectNotFoundError("alertID", cmd.AlertID())
	}

	if orderID, overdue := active.OverdueOrderID(); overdue {
		if err := h.rescheduleOrder(ctx, orderID); err != nil {
			return err
		}
	}

	h.board.Remove(cmd.AlertID())
	return nil
}

// rescheduleOrder resets the order's creation timestamps. An order that
// already left the queue is not an error: its alert merely outlived it.
func (h *ResolveAlertCommandHandler) rescheduleOrder(ctx context.Context, orderID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.WorkOrderRepository()
	order, err := orderRepo.Get(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	order.Reschedule(time.Now())
	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
