package commands

import (
	"context"
	"time"

	"coldstore/internal/core/domain/model/box"
	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/domain/services"
	"coldstore/internal/core/ports"
)

// RegisterInboundBoxCommandHandler handles box arrivals: it allocates the
// lowest free inbound position, generates a fresh auto id and registers the
// box, counting the registration.
//
// Example:
//
//	handler := NewRegisterInboundBoxCommandHandler(uowFactory, policy, allocator, sequences)
//	cmd, _ := NewRegisterInboundBoxCommand(role.Custodian, "Salmon crate", -4.5)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("registration failed: %w", err)
//	}
type RegisterInboundBoxCommandHandler struct {
	uowFactory WarehouseUoWFactory
	policy     role.Policy
	allocator  services.PositionAllocator
	sequences  ports.SequenceGenerator
}

// NewRegisterInboundBoxCommandHandler creates a handler for inbound
// registrations.
func NewRegisterInboundBoxCommandHandler(
	uowFactory WarehouseUoWFactory,
	policy role.Policy,
	allocator services.PositionAllocator,
	sequences ports.SequenceGenerator,
) RegisterInboundBoxCommandHandler {
	return RegisterInboundBoxCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		allocator:  allocator,
		sequences:  sequences,
	}
}

// Handle processes the registration. The auto id uses the per-day sequence
// when available and a random suffix otherwise, so a sequence outage never
// blocks arrivals.
func (h *RegisterInboundBoxCommandHandler) Handle(ctx context.Context, cmd RegisterInboundBoxCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), role.OpRegisterInbound); err != nil {
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

	b, err := box.NewBox(
		h.allocator.NextInboundPosition(aggregate),
		h.nextAutoID(ctx),
		cmd.Name(),
		cmd.Temperature(),
	)
	if err != nil {
		return err
	}

	if err = aggregate.RegisterInbound(b); err != nil {
		return err
	}

	if err = warehouseRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *RegisterInboundBoxCommandHandler) nextAutoID(ctx context.Context) string {
	stamp := kernel.DateStamp(time.Now())
	seq, err := h.sequences.Next(ctx, kernel.PrefixBox, stamp)
	if err != nil {
		return kernel.RandomAutoID(kernel.PrefixBox, stamp)
	}
	return kernel.FormatAutoID(kernel.PrefixBox, stamp, seq)
}
