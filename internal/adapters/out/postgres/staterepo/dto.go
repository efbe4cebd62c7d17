package staterepo

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"coldstore/internal/core/domain/model/box"
	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/domain/model/warehouse"
	"coldstore/internal/core/domain/model/workorder"
)

// WarehouseDTO is the identity record under the "warehouse" key.
type WarehouseDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SlotDTO is one storage slot under the "slots" key. ItemID is the legacy
// field name for Name and is accepted on read only.
type SlotDTO struct {
	Position    int      `json:"position"`
	AutoID      string   `json:"autoId"`
	Name        string   `json:"name"`
	ItemID      string   `json:"itemId,omitempty"`
	Temperature *float64 `json:"temperature"`
}

// BoxDTO is one box under the "inbound", "outbound" or "dispatched" keys.
// LegacyID is the legacy field name for Name and is accepted on read only.
type BoxDTO struct {
	Position    int     `json:"position"`
	AutoID      string  `json:"autoId"`
	Name        string  `json:"name"`
	LegacyID    string  `json:"id,omitempty"`
	Temperature float64 `json:"temperature"`
}

// OrderDTO is one pending order under the "orders" key. BoxPosition is the
// legacy field name for SourcePosition and is accepted on read only.
type OrderDTO struct {
	ID               string   `json:"id"`
	Type             string   `json:"type"`
	SourceZone       string   `json:"sourceZone"`
	SourcePosition   int      `json:"sourcePosition"`
	BoxPosition      *int     `json:"boxPosition,omitempty"`
	TargetPosition   *int     `json:"targetPosition"`
	CreatedBy        string   `json:"createdBy"`
	CreatedAt        string   `json:"createdAt"`
	CreatedAtEpochMs *float64 `json:"createdAtEpochMs"`
}

// StatsDTO holds the lifetime counters under the "stats" key. Missing
// counters read as zero.
type StatsDTO struct {
	InboundRegistrations int `json:"inboundRegistrations"`
	OutboundDispatches   int `json:"outboundDispatches"`
	StorageMoves         int `json:"storageMoves"`
}

func warehouseFromDomain(aggregate *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{ID: aggregate.ID(), Name: aggregate.Name()}
}

func slotsFromDomain(slots []warehouse.Slot) []SlotDTO {
	dtos := make([]SlotDTO, 0, len(slots))
	for _, slot := range slots {
		dtos = append(dtos, SlotDTO{
			Position:    slot.Position(),
			AutoID:      slot.AutoID(),
			Name:        slot.Name(),
			Temperature: slot.Temperature(),
		})
	}
	return dtos
}

func boxesFromDomain(boxes []*box.Box) []BoxDTO {
	dtos := make([]BoxDTO, 0, len(boxes))
	for _, b := range boxes {
		dtos = append(dtos, BoxDTO{
			Position:    b.Position(),
			AutoID:      b.AutoID(),
			Name:        b.Name(),
			Temperature: b.Temperature(),
		})
	}
	return dtos
}

func ordersFromDomain(orders []*workorder.WorkOrder) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		epoch := float64(o.CreatedAtEpochMs())
		dtos = append(dtos, OrderDTO{
			ID:               o.ID().String(),
			Type:             o.Type().String(),
			SourceZone:       o.SourceZone().String(),
			SourcePosition:   o.SourcePosition(),
			TargetPosition:   o.TargetPosition(),
			CreatedBy:        o.CreatedBy().String(),
			CreatedAt:        o.CreatedAt(),
			CreatedAtEpochMs: &epoch,
		})
	}
	return dtos
}

func statsFromDomain(stats warehouse.Stats) StatsDTO {
	return StatsDTO{
		InboundRegistrations: stats.InboundRegistrations(),
		OutboundDispatches:   stats.OutboundDispatches(),
		StorageMoves:         stats.StorageMoves(),
	}
}

// warehouseToDomain normalizes the identity record. An absent or malformed
// record yields a fresh identity; the generated id sticks on the next Save.
func warehouseToDomain(raw json.RawMessage, now time.Time) (WarehouseDTO, error) {
	fresh := WarehouseDTO{
		ID:   kernel.RandomAutoID(kernel.PrefixWarehouse, kernel.DateStamp(now)),
		Name: "Warehouse",
	}

	if raw == nil {
		return fresh, nil
	}

	var dto WarehouseDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return fresh, fmt.Errorf("%w: warehouse: %w", ErrMalformedPersistedState, err)
	}
	if dto.ID == "" {
		dto.ID = fresh.ID
	}
	if dto.Name == "" {
		dto.Name = fresh.Name
	}
	return dto, nil
}

// slotsToDomain normalizes the storage slots. The value must hold exactly
// SlotCount records; anything else rejects the whole value and the zone
// resets to vacant slots.
func slotsToDomain(raw json.RawMessage, now time.Time) ([]warehouse.Slot, error) {
	if raw == nil {
		return defaultSlots()
	}

	var dtos []SlotDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		slots, _ := defaultSlots()
		return slots, fmt.Errorf("%w: slots: %w", ErrMalformedPersistedState, err)
	}
	if len(dtos) != warehouse.SlotCount {
		slots, _ := defaultSlots()
		return slots, fmt.Errorf("%w: slots: expected %d records, got %d",
			ErrMalformedPersistedState, warehouse.SlotCount, len(dtos))
	}

	slots := make([]warehouse.Slot, 0, warehouse.SlotCount)
	for i, dto := range dtos {
		name := dto.Name
		if name == "" {
			name = dto.ItemID
		}
		autoID := dto.AutoID
		if autoID == "" && name != "" {
			autoID = kernel.RandomAutoID(kernel.PrefixBox, kernel.DateStamp(now))
		}

		slot, err := warehouse.RestoreSlot(i+1, autoID, name, dto.Temperature)
		if err != nil {
			slots, _ := defaultSlots()
			return slots, fmt.Errorf("%w: slots[%d]: %w", ErrMalformedPersistedState, i, err)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// boxesToDomain normalizes one box list key. A single bad record rejects
// the whole value and the zone resets to empty.
func boxesToDomain(key string, raw json.RawMessage) ([]*box.Box, error) {
	if raw == nil {
		return nil, nil
	}

	var dtos []BoxDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedPersistedState, key, err)
	}

	boxes := make([]*box.Box, 0, len(dtos))
	for i, dto := range dtos {
		name := dto.Name
		if name == "" {
			name = dto.LegacyID
		}

		b, err := box.NewBox(dto.Position, dto.AutoID, name, dto.Temperature)
		if err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %w", ErrMalformedPersistedState, key, i, err)
		}
		boxes = append(boxes, b)
	}
	return boxes, nil
}

// ordersToDomain normalizes the pending order queue. Legacy boxPosition is
// read as sourcePosition, a missing or non-finite creation epoch resets to
// now, an unknown creator role falls back to custodian. A structurally
// invalid record rejects the whole queue.
func ordersToDomain(raw json.RawMessage, now time.Time) ([]*workorder.WorkOrder, error) {
	if raw == nil {
		return nil, nil
	}

	var dtos []OrderDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, fmt.Errorf("%w: orders: %w", ErrMalformedPersistedState, err)
	}

	orders := make([]*workorder.WorkOrder, 0, len(dtos))
	for i, dto := range dtos {
		o, err := orderToDomain(dto, now)
		if err != nil {
			return nil, fmt.Errorf("%w: orders[%d]: %w", ErrMalformedPersistedState, i, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func orderToDomain(dto OrderDTO, now time.Time) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	orderType, err := workorder.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	zone, err := kernel.ZoneFromString(dto.SourceZone)
	if err != nil {
		return nil, err
	}

	sourcePosition := dto.SourcePosition
	if sourcePosition == 0 && dto.BoxPosition != nil {
		sourcePosition = *dto.BoxPosition
	}

	createdBy, err := role.RoleFromString(dto.CreatedBy)
	if err != nil {
		createdBy = role.Custodian
	}

	epochMs := now.UnixMilli()
	if dto.CreatedAtEpochMs != nil &&
		!math.IsNaN(*dto.CreatedAtEpochMs) && !math.IsInf(*dto.CreatedAtEpochMs, 0) {
		epochMs = int64(*dto.CreatedAtEpochMs)
	}

	createdAt := dto.CreatedAt
	if createdAt == "" {
		createdAt = time.UnixMilli(epochMs).Format("2006-01-02 15:04:05")
	}

	return workorder.RestoreWorkOrder(
		id, orderType, zone, sourcePosition, dto.TargetPosition, createdBy, createdAt, epochMs,
	)
}

// statsToDomain normalizes the counters; missing or negative values reset
// to zero counters.
func statsToDomain(raw json.RawMessage) (warehouse.Stats, error) {
	if raw == nil {
		return warehouse.Stats{}, nil
	}

	var dto StatsDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return warehouse.Stats{}, fmt.Errorf("%w: stats: %w", ErrMalformedPersistedState, err)
	}

	stats, err := warehouse.RestoreStats(dto.InboundRegistrations, dto.OutboundDispatches, dto.StorageMoves)
	if err != nil {
		return warehouse.Stats{}, fmt.Errorf("%w: stats: %w", ErrMalformedPersistedState, err)
	}
	return stats, nil
}

func defaultSlots() ([]warehouse.Slot, error) {
	slots := make([]warehouse.Slot, 0, warehouse.SlotCount)
	for position := 1; position <= warehouse.SlotCount; position++ {
		slot, err := warehouse.NewEmptySlot(position)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
