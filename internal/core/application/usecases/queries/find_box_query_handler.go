package queries

import (
	"context"
	"errors"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/pkg/errs"
)

var ErrFindBoxQueryHandlerIsNotConstructed = errors.New(
	"FindBoxQueryHandler must be created via NewFindBoxQueryHandler constructor",
)

// FindBoxQueryHandler serves box lookup by auto id or exact name.
type FindBoxQueryHandler struct {
	warehouses WarehouseReader
	policy     role.Policy

	isConstructed bool
}

// NewFindBoxQueryHandler creates a FindBoxQueryHandler.
func NewFindBoxQueryHandler(warehouses WarehouseReader, policy role.Policy) (FindBoxQueryHandler, error) {
	if warehouses == nil {
		return FindBoxQueryHandler{}, errs.NewValueIsRequiredError("warehouses")
	}

	return FindBoxQueryHandler{
		warehouses:    warehouses,
		policy:        policy,
		isConstructed: true,
	}, nil
}

// Handle scans inbound, then storage, then outbound for the term. A miss
// is a regular response, not an error.
func (h FindBoxQueryHandler) Handle(ctx context.Context, query FindBoxQuery) (FindBoxQueryResponse, error) {
	if !h.isConstructed {
		return FindBoxQueryResponse{}, ErrFindBoxQueryHandlerIsNotConstructed
	}
	if err := query.Validate(); err != nil {
		return FindBoxQueryResponse{}, err
	}
	if err := h.policy.Authorize(query.Actor(), role.OpSearch); err != nil {
		return FindBoxQueryResponse{}, err
	}

	aggregate, err := h.warehouses.Get(ctx)
	if err != nil {
		return FindBoxQueryResponse{}, err
	}

	hit, found := aggregate.Search(query.Term())
	if !found {
		return FindBoxQueryResponse{}, nil
	}

	return FindBoxQueryResponse{
		Found:    true,
		Zone:     hit.Zone.String(),
		Position: hit.Position,
		AutoID:   hit.AutoID,
		Name:     hit.Name,
	}, nil
}
