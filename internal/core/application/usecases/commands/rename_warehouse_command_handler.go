package commands

import (
	"context"

	"coldstore/internal/core/domain/model/role"
)

// RenameWarehouseCommandHandler updates the warehouse display name.
type RenameWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
	policy     role.Policy
}

// NewRenameWarehouseCommandHandler creates a handler for renames.
func NewRenameWarehouseCommandHandler(uowFactory WarehouseUoWFactory, policy role.Policy) RenameWarehouseCommandHandler {
	return RenameWarehouseCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the rename.
func (h *RenameWarehouseCommandHandler) Handle(ctx context.Context, cmd RenameWarehouseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), role.OpRenameWarehouse); err != nil {
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

	if err = aggregate.Rename(cmd.Name()); err != nil {
		return err
	}

	if err = warehouseRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
