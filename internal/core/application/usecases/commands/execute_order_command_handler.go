package commands

import (
	"context"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/domain/services"
)

// ExecuteOrderCommandHandler handles order execution: the source box is
// re-resolved and the target re-checked against live state, the movement is
// applied and the order leaves the queue, all in one transaction. A failed
// execution leaves both the zone store and the queue untouched, so the
// order can be retried once the obstacle is corrected. Executing an already
// executed order fails on the queue lookup: the first execution removed it.
type ExecuteOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     role.Policy
	executor   services.OrderExecutor
}

// NewExecuteOrderCommandHandler creates a handler for order execution.
func NewExecuteOrderCommandHandler(uowFactory UoWFactory, policy role.Policy, executor services.OrderExecutor) ExecuteOrderCommandHandler {
	return ExecuteOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		executor:   executor,
	}
}

// Handle processes the execution command.
func (h *ExecuteOrderCommandHandler) Handle(ctx context.Context, cmd ExecuteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), role.OpExecuteOrder); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.WorkOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	warehouseRepo := uow.WarehouseRepository()
	aggregate, err := warehouseRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = h.executor.Execute(aggregate, order); err != nil {
		return err
	}

	if err = warehouseRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	if err = orderRepo.Remove(ctx, order.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
