package commands

import (
	"context"
	"time"

	"coldstore/internal/core/domain/model/workorder"
	"coldstore/internal/core/domain/services"
	"coldstore/internal/core/ports"
)

// RecomputeAlertsCommandHandler derives the active alert set from current
// store and queue state and replaces the board wholesale. When an order TTL
// is configured, orders past it are expired first; the default TTL of zero
// disables expiry and lets the queue grow unbounded.
type RecomputeAlertsCommandHandler struct {
	uowFactory UoWFactory
	deriver    services.AlertDeriver
	board      ports.AlertBoard
	orderTTL   time.Duration
}

// NewRecomputeAlertsCommandHandler creates a handler for alert derivation.
func NewRecomputeAlertsCommandHandler(
	uowFactory UoWFactory,
	deriver services.AlertDeriver,
	board ports.AlertBoard,
	orderTTL time.Duration,
) RecomputeAlertsCommandHandler {
	return RecomputeAlertsCommandHandler{
		uowFactory: uowFactory,
		deriver:    deriver,
		board:      board,
		orderTTL:   orderTTL,
	}
}

// Handle processes one derivation tick.
func (h *RecomputeAlertsCommandHandler) Handle(ctx context.Context, cmd RecomputeAlertsCommand) error {
	if err := cmd.Validate(); err != nil {
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

	if h.orderTTL > 0 {
		if pending, err = h.expire(ctx, orderRepo, pending, cmd.Now()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.board.Replace(h.deriver.Derive(aggregate, pending, h.board.List(), cmd.Now()))
	return nil
}

func (h *RecomputeAlertsCommandHandler) expire(
	ctx context.Context,
	orderRepo ports.WorkOrderRepository,
	pending []*workorder.WorkOrder,
	now time.Time,
) ([]*workorder.WorkOrder, error) {
	kept := make([]*workorder.WorkOrder, 0, len(pending))
	for _, order := range pending {
		if order.Age(now) >= h.orderTTL {
			if err := orderRepo.Remove(ctx, order.ID()); err != nil {
				return nil, err
			}
			continue
		}
		kept = append(kept, order)
	}
	return kept, nil
}
