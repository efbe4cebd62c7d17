package commands

import (
	"context"
	"time"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/domain/services"
)

// CreateOrderCommandHandler handles work order placement. Validation runs
// against live occupancy and queue reservations inside one transaction; the
// zone store itself stays untouched until execution.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	policy     role.Policy
	placer     services.OrderPlacer
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, policy role.Policy, placer services.OrderPlacer) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		placer:     placer,
	}
}

// Handle validates the request against the current warehouse state and
// appends the new order to the pending queue.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), role.OpCreateOrder); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.WarehouseRepository().Get(ctx)
	if err != nil {
		return err
	}

	orderRepo := uow.WorkOrderRepository()
	pending, err := orderRepo.GetAllPending(ctx)
	if err != nil {
		return err
	}

	order, err := h.placer.Place(
		aggregate,
		pending,
		cmd.OrderType(),
		cmd.SourceZone(),
		cmd.SourcePosition(),
		cmd.TargetPosition(),
		cmd.Actor(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
