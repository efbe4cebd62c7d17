package queries

import (
	"errors"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/pkg/guard"
)

var ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
	"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
)

// GetPendingOrdersQuery retrieves the pending order queue, oldest first.
type GetPendingOrdersQuery struct {
	actor role.Role

	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query for the pending order queue.
func NewGetPendingOrdersQuery(actor role.Role) (GetPendingOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetPendingOrdersQuery{}, err
	}

	return GetPendingOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// Actor returns the role invoking the query.
func (q GetPendingOrdersQuery) Actor() role.Role {
	return q.actor
}

// OrderResponse represents one pending work order.
type OrderResponse struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	SourceZone     string `json:"sourceZone"`
	SourcePosition int    `json:"sourcePosition"`
	TargetPosition *int   `json:"targetPosition"`
	CreatedBy      string `json:"createdBy"`
	CreatedAt      string `json:"createdAt"`
	Description    string `json:"description"`
}

// GetPendingOrdersQueryResponse lists pending orders, oldest first.
type GetPendingOrdersQueryResponse struct {
	Orders []OrderResponse `json:"orders"`
}
