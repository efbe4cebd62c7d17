package warehouse

import (
	"errors"
	"sort"

	"coldstore/internal/core/domain/model/box"
	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/pkg/errs"
	"coldstore/internal/pkg/guard"
)

var ErrWarehouseIsNotConstructed = errors.New(
	"warehouse is not constructed. Use NewWarehouse or RestoreWarehouse")

var (
	// ErrNoBoxAtPosition is returned when an operation addresses a zone
	// position where no box is present.
	ErrNoBoxAtPosition = errors.New("no box at the given position")

	// ErrPositionOccupied is returned when a box is placed at a zone
	// position that already holds one.
	ErrPositionOccupied = errors.New("position is already occupied")
)

// SearchHit locates a box found by Search.
type SearchHit struct {
	Zone     kernel.Zone
	Position int
	AutoID   string
	Name     string
}

// Warehouse is the zone store. It owns the twelve storage slots, the
// Inbound and Outbound box lists, the append-only Dispatched archive and
// the activity counters.
type Warehouse struct {
	id         string
	name       string
	slots      []Slot
	inbound    []*box.Box
	outbound   []*box.Box
	dispatched []*box.Box
	stats      Stats

	guard guard.ConstructorGuard
}

// NewWarehouse creates an empty warehouse: twelve vacant slots, no boxes,
// zeroed counters. The id is the generated "BOD-YYYYMMDD-NNN" identity and
// never changes afterwards.
func NewWarehouse(id, name string) (*Warehouse, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	slots := make([]Slot, 0, SlotCount)
	for position := 1; position <= SlotCount; position++ {
		slot, err := NewEmptySlot(position)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return &Warehouse{
		id:    id,
		name:  name,
		slots: slots,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreWarehouse rebuilds the aggregate from persisted state. The slot
// list must hold exactly SlotCount entries at positions 1..SlotCount, and no
// two boxes within a zone may share a position.
func RestoreWarehouse(
	id string,
	name string,
	slots []Slot,
	inbound []*box.Box,
	outbound []*box.Box,
	dispatched []*box.Box,
	stats Stats,
) (*Warehouse, error) {
	w, err := NewWarehouse(id, name)
	if err != nil {
		return nil, err
	}

	if len(slots) != SlotCount {
		return nil, errs.NewValueIsInvalidError("slots")
	}
	for i, slot := range slots {
		if err := slot.Validate(); err != nil {
			return nil, err
		}
		if slot.Position() != i+1 {
			return nil, errs.NewValueIsInvalidError("slots")
		}
	}
	w.slots = append([]Slot(nil), slots...)

	if w.inbound, err = restoreZoneBoxes(inbound); err != nil {
		return nil, err
	}
	if w.outbound, err = restoreZoneBoxes(outbound); err != nil {
		return nil, err
	}
	for _, b := range dispatched {
		if err := b.Validate(); err != nil {
			return nil, err
		}
	}
	w.dispatched = append([]*box.Box(nil), dispatched...)
	w.stats = stats
	return w, nil
}

func restoreZoneBoxes(boxes []*box.Box) ([]*box.Box, error) {
	seen := make(map[int]bool, len(boxes))
	out := make([]*box.Box, 0, len(boxes))
	for _, b := range boxes {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if seen[b.Position()] {
			return nil, errs.NewValueIsInvalidError("position")
		}
		seen[b.Position()] = true
		out = append(out, b)
	}
	sortByPosition(out)
	return out, nil
}

func (w *Warehouse) Validate() error {
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

func (w *Warehouse) ID() string { return w.id }

func (w *Warehouse) Name() string { return w.name }

// Rename changes the warehouse display name. The name cannot be cleared.
func (w *Warehouse) Rename(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = name
	return nil
}

// Slots returns the storage slots in position order.
func (w *Warehouse) Slots() []Slot {
	return append([]Slot(nil), w.slots...)
}

// SlotAt returns the slot at the given storage position.
func (w *Warehouse) SlotAt(position int) (Slot, error) {
	if position < 1 || position > SlotCount {
		return Slot{}, errs.NewValueIsOutOfRangeError("position", position, 1, SlotCount)
	}
	return w.slots[position-1], nil
}

// Inbound returns the inbound zone boxes in position order. The returned
// boxes must not be mutated directly.
func (w *Warehouse) Inbound() []*box.Box {
	return append([]*box.Box(nil), w.inbound...)
}

// Outbound returns the outbound zone boxes in position order.
func (w *Warehouse) Outbound() []*box.Box {
	return append([]*box.Box(nil), w.outbound...)
}

// Dispatched returns the archive of dispatched boxes, oldest first.
func (w *Warehouse) Dispatched() []*box.Box {
	return append([]*box.Box(nil), w.dispatched...)
}

func (w *Warehouse) Stats() Stats { return w.stats }

// FindInbound looks up an inbound box by position.
func (w *Warehouse) FindInbound(position int) (*box.Box, bool) {
	return findByPosition(w.inbound, position)
}

// FindOutbound looks up an outbound box by position.
func (w *Warehouse) FindOutbound(position int) (*box.Box, bool) {
	return findByPosition(w.outbound, position)
}

// RegisterInbound places a new box into the inbound zone and counts the
// registration.
func (w *Warehouse) RegisterInbound(b *box.Box) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if _, taken := findByPosition(w.inbound, b.Position()); taken {
		return ErrPositionOccupied
	}
	w.inbound = insertSorted(w.inbound, b)
	w.stats.inboundRegistrations++
	return nil
}

// MoveToStorage executes a storage-bound move: the box at the source
// location leaves its zone and its data is written into the target slot.
// Counts a storage move on success.
func (w *Warehouse) MoveToStorage(sourceZone kernel.Zone, sourcePosition, targetPosition int) error {
	if targetPosition < 1 || targetPosition > SlotCount {
		return errs.NewValueIsOutOfRangeError("targetPosition", targetPosition, 1, SlotCount)
	}
	if w.slots[targetPosition-1].IsOccupied() {
		return ErrPositionOccupied
	}

	b, err := w.takeBox(sourceZone, sourcePosition)
	if err != nil {
		return err
	}
	slot := w.slots[targetPosition-1]
	slot.autoID = b.AutoID()
	slot.name = b.Name()
	temp := b.Temperature()
	slot.temperature = &temp
	w.slots[targetPosition-1] = slot
	w.stats.storageMoves++
	return nil
}

// MoveToOutbound executes an outbound move: the box at the source location
// leaves its zone and appears at the target outbound position. Counts an
// outbound dispatch on success.
func (w *Warehouse) MoveToOutbound(sourceZone kernel.Zone, sourcePosition, targetPosition int) error {
	if targetPosition < 1 {
		return errs.NewValueIsInvalidError("targetPosition")
	}
	if _, taken := findByPosition(w.outbound, targetPosition); taken {
		return ErrPositionOccupied
	}

	b, err := w.takeBox(sourceZone, sourcePosition)
	if err != nil {
		return err
	}
	moved, err := b.Relocate(targetPosition)
	if err != nil {
		return err
	}
	w.outbound = insertSorted(w.outbound, moved)
	w.stats.outboundDispatches++
	return nil
}

// Dispatch removes a box from the outbound zone and appends it to the
// dispatched archive.
func (w *Warehouse) Dispatch(position int) (*box.Box, error) {
	b, ok := findByPosition(w.outbound, position)
	if !ok {
		return nil, ErrNoBoxAtPosition
	}
	w.outbound = removeByPosition(w.outbound, position)
	w.dispatched = append(w.dispatched, b)
	return b, nil
}

// SetTemperature overwrites the recorded temperature of the box at the
// given location.
func (w *Warehouse) SetTemperature(zone kernel.Zone, position int, temperature float64) error {
	switch zone {
	case kernel.ZoneInbound:
		b, ok := findByPosition(w.inbound, position)
		if !ok {
			return ErrNoBoxAtPosition
		}
		b.SetTemperature(temperature)
		return nil
	case kernel.ZoneOutbound:
		b, ok := findByPosition(w.outbound, position)
		if !ok {
			return ErrNoBoxAtPosition
		}
		b.SetTemperature(temperature)
		return nil
	case kernel.ZoneStorage:
		slot, err := w.SlotAt(position)
		if err != nil {
			return err
		}
		if !slot.IsOccupied() {
			return ErrNoBoxAtPosition
		}
		slot.temperature = &temperature
		w.slots[position-1] = slot
		return nil
	default:
		return errs.NewValueIsInvalidError("zone")
	}
}

// HasBoxAt reports whether a box is present at the given location.
func (w *Warehouse) HasBoxAt(zone kernel.Zone, position int) bool {
	switch zone {
	case kernel.ZoneInbound:
		_, ok := findByPosition(w.inbound, position)
		return ok
	case kernel.ZoneOutbound:
		_, ok := findByPosition(w.outbound, position)
		return ok
	case kernel.ZoneStorage:
		slot, err := w.SlotAt(position)
		return err == nil && slot.IsOccupied()
	default:
		return false
	}
}

// Search finds the first box whose autoID or name matches the term,
// scanning inbound, then storage, then outbound.
func (w *Warehouse) Search(term string) (SearchHit, bool) {
	for _, b := range w.inbound {
		if b.Matches(term) {
			return SearchHit{
				Zone:     kernel.ZoneInbound,
				Position: b.Position(),
				AutoID:   b.AutoID(),
				Name:     b.Name(),
			}, true
		}
	}
	for _, slot := range w.slots {
		if !slot.IsOccupied() {
			continue
		}
		if slot.AutoID() == term || slot.Name() == term {
			return SearchHit{
				Zone:     kernel.ZoneStorage,
				Position: slot.Position(),
				AutoID:   slot.AutoID(),
				Name:     slot.Name(),
			}, true
		}
	}
	for _, b := range w.outbound {
		if b.Matches(term) {
			return SearchHit{
				Zone:     kernel.ZoneOutbound,
				Position: b.Position(),
				AutoID:   b.AutoID(),
				Name:     b.Name(),
			}, true
		}
	}
	return SearchHit{}, false
}

// takeBox removes the box at the source location and returns its data.
// Storage slots return a box rebuilt from the slot fields; a slot with no
// recorded temperature reads as zero degrees.
func (w *Warehouse) takeBox(zone kernel.Zone, position int) (*box.Box, error) {
	switch zone {
	case kernel.ZoneInbound:
		b, ok := findByPosition(w.inbound, position)
		if !ok {
			return nil, ErrNoBoxAtPosition
		}
		w.inbound = removeByPosition(w.inbound, position)
		return b, nil
	case kernel.ZoneStorage:
		slot, err := w.SlotAt(position)
		if err != nil {
			return nil, err
		}
		if !slot.IsOccupied() {
			return nil, ErrNoBoxAtPosition
		}
		temperature := 0.0
		if slot.Temperature() != nil {
			temperature = *slot.Temperature()
		}
		name := slot.Name()
		if name == "" {
			name = slot.AutoID()
		}
		b, err := box.NewBox(slot.Position(), slot.AutoID(), name, temperature)
		if err != nil {
			return nil, err
		}
		empty, err := NewEmptySlot(slot.Position())
		if err != nil {
			return nil, err
		}
		w.slots[position-1] = empty
		return b, nil
	default:
		return nil, errs.NewValueIsInvalidError("zone")
	}
}

func findByPosition(boxes []*box.Box, position int) (*box.Box, bool) {
	for _, b := range boxes {
		if b.Position() == position {
			return b, true
		}
	}
	return nil, false
}

func removeByPosition(boxes []*box.Box, position int) []*box.Box {
	out := boxes[:0]
	for _, b := range boxes {
		if b.Position() != position {
			out = append(out, b)
		}
	}
	return out
}

func insertSorted(boxes []*box.Box, b *box.Box) []*box.Box {
	boxes = append(boxes, b)
	sortByPosition(boxes)
	return boxes
}

func sortByPosition(boxes []*box.Box) {
	sort.Slice(boxes, func(i, j int) bool {
		return boxes[i].Position() < boxes[j].Position()
	})
}
