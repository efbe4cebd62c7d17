package queries

import (
	"context"
	"errors"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/pkg/errs"
)

var ErrGetPendingOrdersQueryHandlerIsNotConstructed = errors.New(
	"GetPendingOrdersQueryHandler must be created via NewGetPendingOrdersQueryHandler constructor",
)

// GetPendingOrdersQueryHandler serves the pending order queue.
type GetPendingOrdersQueryHandler struct {
	orders WorkOrderReader
	policy role.Policy

	isConstructed bool
}

// NewGetPendingOrdersQueryHandler creates a GetPendingOrdersQueryHandler.
func NewGetPendingOrdersQueryHandler(orders WorkOrderReader, policy role.Policy) (GetPendingOrdersQueryHandler, error) {
	if orders == nil {
		return GetPendingOrdersQueryHandler{}, errs.NewValueIsRequiredError("orders")
	}

	return GetPendingOrdersQueryHandler{
		orders:        orders,
		policy:        policy,
		isConstructed: true,
	}, nil
}

// Handle returns all pending orders, oldest first.
func (h GetPendingOrdersQueryHandler) Handle(ctx context.Context, query GetPendingOrdersQuery) (GetPendingOrdersQueryResponse, error) {
	if !h.isConstructed {
		return GetPendingOrdersQueryResponse{}, ErrGetPendingOrdersQueryHandlerIsNotConstructed
	}
	if err := query.Validate(); err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}
	if err := h.policy.Authorize(query.Actor(), role.OpViewZones); err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	pending, err := h.orders.GetAllPending(ctx)
	if err != nil {
		return GetPendingOrdersQueryResponse{}, err
	}

	responses := make([]OrderResponse, 0, len(pending))
	for _, order := range pending {
		responses = append(responses, OrderResponse{
			ID:             order.ID().String(),
			Type:           order.Type().String(),
			SourceZone:     order.SourceZone().String(),
			SourcePosition: order.SourcePosition(),
			TargetPosition: order.TargetPosition(),
			CreatedBy:      order.CreatedBy().String(),
			CreatedAt:      order.CreatedAt(),
			Description:    order.Describe(),
		})
	}

	return GetPendingOrdersQueryResponse{Orders: responses}, nil
}
