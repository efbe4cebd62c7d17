package queries

import (
	"context"
	"errors"

	"coldstore/internal/core/domain/model/box"
	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/domain/model/warehouse"
	"coldstore/internal/pkg/errs"
)

var ErrGetZonesQueryHandlerIsNotConstructed = errors.New(
	"GetZonesQueryHandler must be created via NewGetZonesQueryHandler constructor",
)

// GetZonesQueryHandler serves the zone snapshot.
type GetZonesQueryHandler struct {
	warehouses WarehouseReader
	policy     role.Policy

	isConstructed bool
}

// NewGetZonesQueryHandler creates a GetZonesQueryHandler.
func NewGetZonesQueryHandler(warehouses WarehouseReader, policy role.Policy) (GetZonesQueryHandler, error) {
	if warehouses == nil {
		return GetZonesQueryHandler{}, errs.NewValueIsRequiredError("warehouses")
	}

	return GetZonesQueryHandler{
		warehouses:    warehouses,
		policy:        policy,
		isConstructed: true,
	}, nil
}

// Handle returns the warehouse identity and the content of all three zones.
func (h GetZonesQueryHandler) Handle(ctx context.Context, query GetZonesQuery) (GetZonesQueryResponse, error) {
	if !h.isConstructed {
		return GetZonesQueryResponse{}, ErrGetZonesQueryHandlerIsNotConstructed
	}
	if err := query.Validate(); err != nil {
		return GetZonesQueryResponse{}, err
	}
	if err := h.policy.Authorize(query.Actor(), role.OpViewZones); err != nil {
		return GetZonesQueryResponse{}, err
	}

	aggregate, err := h.warehouses.Get(ctx)
	if err != nil {
		return GetZonesQueryResponse{}, err
	}

	return GetZonesQueryResponse{
		WarehouseID:   aggregate.ID(),
		WarehouseName: aggregate.Name(),
		Inbound:       boxResponses(aggregate.Inbound()),
		Storage:       slotResponses(aggregate.Slots()),
		Outbound:      boxResponses(aggregate.Outbound()),
	}, nil
}

func boxResponses(boxes []*box.Box) []BoxResponse {
	responses := make([]BoxResponse, 0, len(boxes))
	for _, b := range boxes {
		responses = append(responses, BoxResponse{
			Position:    b.Position(),
			AutoID:      b.AutoID(),
			Name:        b.Name(),
			Temperature: b.Temperature(),
		})
	}
	return responses
}

func slotResponses(slots []warehouse.Slot) []SlotResponse {
	responses := make([]SlotResponse, 0, len(slots))
	for _, slot := range slots {
		responses = append(responses, SlotResponse{
			Position:    slot.Position(),
			AutoID:      slot.AutoID(),
			Name:        slot.Name(),
			Temperature: slot.Temperature(),
		})
	}
	return responses
}
