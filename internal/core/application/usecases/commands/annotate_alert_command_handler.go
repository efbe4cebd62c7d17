package commands

import (
	"context"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/ports"
	"coldstore/internal/pkg/errs"
)

// AnnotateAlertCommandHandler records an operator annotation on an active
// alert. The alert board is in-process derived state, so no transaction is
// involved.
type AnnotateAlertCommandHandler struct {
	policy role.Policy
	board  ports.AlertBoard
}

// NewAnnotateAlertCommandHandler creates a handler for alert annotations.
func NewAnnotateAlertCommandHandler(policy role.Policy, board ports.AlertBoard) AnnotateAlertCommandHandler {
	return AnnotateAlertCommandHandler{
		policy: policy,
		board:  board,
	}
}

// Handle processes the annotation.
func (h *AnnotateAlertCommandHandler) Handle(_ context.Context, cmd AnnotateAlertCommand) error {
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

	annotated, err := active.WithReason(cmd.Reason())
	if err != nil {
		return err
	}

	h.board.Upsert(annotated)
	return nil
}
