package commands

import (
	"context"

	"coldstore/internal/core/domain/model/role"
)

// DispatchBoxCommandHandler handles the final hand-over of a box from the
// outbound zone to the dispatched archive.
type DispatchBoxCommandHandler struct {
	uowFactory WarehouseUoWFactory
	policy     role.Policy
}

// NewDispatchBoxCommandHandler creates a handler for dispatch operations.
func NewDispatchBoxCommandHandler(uowFactory WarehouseUoWFactory, policy role.Policy) DispatchBoxCommandHandler {
	return DispatchBoxCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the dispatch command.
func (h *DispatchBoxCommandHandler) Handle(ctx context.Context, cmd DispatchBoxCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), role.OpDispatch); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	warehouseRepo := uow.WarehouseRepository()
	aggregate, err := warehouseRepo.Get(ctx)
	if err != nil {
		return err
	}

	if _, err = aggregate.Dispatch(cmd.Position()); err != nil {
		return err
	}

	if err = warehouseRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
