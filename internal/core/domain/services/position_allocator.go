package services

import (
	"coldstore/internal/core/domain/model/box"
	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/warehouse"
	"coldstore/internal/core/domain/model/workorder"
)

// PositionAllocator computes free positions per zone, honoring the positions
// already claimed as targets by pending orders. A reservation excludes a
// position from being offered again before the reserving order executes.
type PositionAllocator struct{}

// NewPositionAllocator creates a new PositionAllocator instance.
func NewPositionAllocator() PositionAllocator {
	return PositionAllocator{}
}

// NextFreePosition returns the smallest positive integer that is neither
// occupied nor reserved. Used for the dense Inbound and Outbound zones.
func (a PositionAllocator) NextFreePosition(occupied, reserved []int) int {
	taken := make(map[int]bool, len(occupied)+len(reserved))
	for _, p := range occupied {
		taken[p] = true
	}
	for _, p := range reserved {
		taken[p] = true
	}
	for position := 1; ; position++ {
		if !taken[position] {
			return position
		}
	}
}

// NextInboundPosition returns the position a newly registered box takes in
// the inbound zone.
func (a PositionAllocator) NextInboundPosition(w *warehouse.Warehouse) int {
	return a.NextFreePosition(boxPositions(w.Inbound()), nil)
}

// NextOutboundPosition returns the outbound position a new ToOutbound order
// reserves, accounting for targets already claimed by pending ToOutbound
// orders.
func (a PositionAllocator) NextOutboundPosition(w *warehouse.Warehouse, pending []*workorder.WorkOrder) int {
	return a.NextFreePosition(boxPositions(w.Outbound()), a.ReservedTargets(pending, workorder.TypeToOutbound))
}

// FreeStoragePositions returns the positions of all vacant storage slots.
func (a PositionAllocator) FreeStoragePositions(w *warehouse.Warehouse) []int {
	free := make([]int, 0, warehouse.SlotCount)
	for _, slot := range w.Slots() {
		if !slot.IsOccupied() {
			free = append(free, slot.Position())
		}
	}
	return free
}

// AvailableTargets removes reserved positions from the free set. A free slot
// already claimed by another pending order is not offered again.
func (a PositionAllocator) AvailableTargets(free, reserved []int) []int {
	blocked := make(map[int]bool, len(reserved))
	for _, p := range reserved {
		blocked[p] = true
	}
	available := make([]int, 0, len(free))
	for _, p := range free {
		if !blocked[p] {
			available = append(available, p)
		}
	}
	return available
}

// AvailableStorageTargets returns the storage slots a new ToStorage order
// may target right now.
func (a PositionAllocator) AvailableStorageTargets(w *warehouse.Warehouse, pending []*workorder.WorkOrder) []int {
	return a.AvailableTargets(
		a.FreeStoragePositions(w),
		a.ReservedTargets(pending, workorder.TypeToStorage),
	)
}

// ReservedTargets collects the target positions claimed by pending orders of
// the given type.
func (a PositionAllocator) ReservedTargets(pending []*workorder.WorkOrder, orderType workorder.Type) []int {
	reserved := make([]int, 0, len(pending))
	for _, o := range pending {
		if o.Type() != orderType {
			continue
		}
		if target := o.TargetPosition(); target != nil {
			reserved = append(reserved, *target)
		}
	}
	return reserved
}

// PendingSourceKeys collects the "zone:position" source keys of all pending
// orders. A box whose key appears here already has work scheduled and is not
// an eligible source for another order.
func (a PositionAllocator) PendingSourceKeys(pending []*workorder.WorkOrder) map[string]bool {
	keys := make(map[string]bool, len(pending))
	for _, o := range pending {
		keys[o.SourceKey()] = true
	}
	return keys
}

// AvailableSources filters a zone's boxes down to those without pending work.
func (a PositionAllocator) AvailableSources(zone kernel.Zone, boxes []*box.Box, pendingSourceKeys map[string]bool) []*box.Box {
	available := make([]*box.Box, 0, len(boxes))
	for _, b := range boxes {
		if !pendingSourceKeys[kernel.SourceKey(zone, b.Position())] {
			available = append(available, b)
		}
	}
	return available
}

func boxPositions(boxes []*box.Box) []int {
	positions := make([]int, 0, len(boxes))
	for _, b := range boxes {
		positions = append(positions, b.Position())
	}
	return positions
}
