package queries

import (
	"context"
	"errors"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/ports"
	"coldstore/internal/pkg/errs"
)

var ErrGetAlertsQueryHandlerIsNotConstructed = errors.New(
	"GetAlertsQueryHandler must be created via NewGetAlertsQueryHandler constructor",
)

// GetAlertsQueryHandler serves the active alert feed.
type GetAlertsQueryHandler struct {
	board  ports.AlertBoard
	policy role.Policy

	isConstructed bool
}

// NewGetAlertsQueryHandler creates a GetAlertsQueryHandler.
func NewGetAlertsQueryHandler(board ports.AlertBoard, policy role.Policy) (GetAlertsQueryHandler, error) {
	if board == nil {
		return GetAlertsQueryHandler{}, errs.NewValueIsRequiredError("board")
	}

	return GetAlertsQueryHandler{
		board:         board,
		policy:        policy,
		isConstructed: true,
	}, nil
}

// Handle returns the active alerts in feed order. The board is derived
// in-process state, so no transaction is involved.
func (h GetAlertsQueryHandler) Handle(_ context.Context, query GetAlertsQuery) (GetAlertsQueryResponse, error) {
	if !h.isConstructed {
		return GetAlertsQueryResponse{}, ErrGetAlertsQueryHandlerIsNotConstructed
	}
	if err := query.Validate(); err != nil {
		return GetAlertsQueryResponse{}, err
	}
	if err := h.policy.Authorize(query.Actor(), role.OpViewZones); err != nil {
		return GetAlertsQueryResponse{}, err
	}

	active := h.board.List()
	responses := make([]AlertResponse, 0, len(active))
	for _, a := range active {
		var reason *string
		if r := a.Reason(); r != nil {
			text := string(*r)
			reason = &text
		}
		responses = append(responses, AlertResponse{
			ID:          a.ID(),
			Title:       a.Title(),
			Description: a.Description(),
			Reason:      reason,
		})
	}

	return GetAlertsQueryResponse{Alerts: responses}, nil
}
