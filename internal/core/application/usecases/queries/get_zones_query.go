package queries

import (
	"errors"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/pkg/guard"
)

var ErrGetZonesQueryIsNotConstructed = errors.New(
	"GetZonesQuery must be created via NewGetZonesQuery constructor",
)

// GetZonesQuery retrieves a snapshot of all three zones plus the warehouse
// identity.
type GetZonesQuery struct {
	actor role.Role

	guard guard.ConstructorGuard
}

// NewGetZonesQuery creates a query for the zone snapshot.
func NewGetZonesQuery(actor role.Role) (GetZonesQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetZonesQuery{}, err
	}

	return GetZonesQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetZonesQuery) Validate() error {
	return q.guard.Validate(ErrGetZonesQueryIsNotConstructed)
}

// Actor returns the role invoking the query.
func (q GetZonesQuery) Actor() role.Role {
	return q.actor
}

// BoxResponse represents a box within the inbound or outbound zone.
type BoxResponse struct {
	Position    int     `json:"position"`
	AutoID      string  `json:"autoId"`
	Name        string  `json:"name"`
	Temperature float64 `json:"temperature"`
}

// SlotResponse represents one storage slot; a vacant slot has an empty
// AutoID and a nil Temperature.
type SlotResponse struct {
	Position    int      `json:"position"`
	AutoID      string   `json:"autoId"`
	Name        string   `json:"name"`
	Temperature *float64 `json:"temperature"`
}

// GetZonesQueryResponse is the full zone snapshot.
type GetZonesQueryResponse struct {
	WarehouseID   string         `json:"warehouseId"`
	WarehouseName string         `json:"warehouseName"`
	Inbound       []BoxResponse  `json:"inbound"`
	Storage       []SlotResponse `json:"storage"`
	Outbound      []BoxResponse  `json:"outbound"`
}
