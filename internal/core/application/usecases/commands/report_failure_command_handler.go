package commands

import (
	"context"
	"fmt"

	"coldstore/internal/core/domain/model/alert"
	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/ports"
)

// ReportFailureCommandHandler files a manual failure-report alert for a
// pending order. The order is looked up so the report can describe it and
// so reports against unknown orders are rejected.
type ReportFailureCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	policy     role.Policy
	board      ports.AlertBoard
}

// NewReportFailureCommandHandler creates a handler for failure reports.
func NewReportFailureCommandHandler(uowFactory WorkOrderUoWFactory, policy role.Policy, board ports.AlertBoard) ReportFailureCommandHandler {
	return ReportFailureCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		board:      board,
	}
}

// Handle processes the failure report.
func (h *ReportFailureCommandHandler) Handle(ctx context.Context, cmd ReportFailureCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), role.OpReportFailure); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := uow.WorkOrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	report := alert.NewFailureReportAlert(
		kernel.NewUUID(),
		fmt.Sprintf("%s: %s", order.Describe(), cmd.Description()),
	)
	h.board.Upsert(report)
	return nil
}
