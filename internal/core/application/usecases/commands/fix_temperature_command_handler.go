package commands

import (
	"context"

	"coldstore/internal/core/domain/model/role"
)

// FixTemperatureCommandHandler overwrites the recorded temperature of a
// located box.
type FixTemperatureCommandHandler struct {
	uowFactory WarehouseUoWFactory
	policy     role.Policy
}

// NewFixTemperatureCommandHandler creates a handler for temperature fixes.
func NewFixTemperatureCommandHandler(uowFactory WarehouseUoWFactory, policy role.Policy) FixTemperatureCommandHandler {
	return FixTemperatureCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the temperature correction.
func (h *FixTemperatureCommandHandler) Handle(ctx context.Context, cmd FixTemperatureCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), role.OpFixTemperature); err != nil {
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

	if err = aggregate.SetTemperature(cmd.Zone(), cmd.Position(), cmd.Temperature()); err != nil {
		return err
	}

	if err = warehouseRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
