package warehouse

import (
	"errors"
	"fmt"

	"coldstore/internal/pkg/errs"
	"coldstore/internal/pkg/guard"
)

// SlotCount is the fixed number of storage slots in a warehouse.
const SlotCount = 12

var ErrSlotIsNotConstructed = errors.New(
	"slot is not constructed. Use NewEmptySlot or RestoreSlot")

// Slot is a fixed storage position. An empty slot carries no box data; an
// occupied slot holds the box fields inline (autoID, name, temperature).
type Slot struct {
	position    int
	autoID      string
	name        string
	temperature *float64

	guard guard.ConstructorGuard
}

// NewEmptySlot creates a vacant slot at the given position (1..SlotCount).
func NewEmptySlot(position int) (Slot, error) {
	s := Slot{guard: guard.NewConstructorGuard()}
	if err := s.setPosition(position); err != nil {
		return Slot{}, err
	}
	return s, nil
}

// RestoreSlot rebuilds a slot from persisted state. An occupied slot must
// carry a non-empty autoID; a vacant one must carry no box fields at all.
func RestoreSlot(position int, autoID, name string, temperature *float64) (Slot, error) {
	s, err := NewEmptySlot(position)
	if err != nil {
		return Slot{}, err
	}
	if autoID == "" {
		if name != "" || temperature != nil {
			return Slot{}, errs.NewValueIsInvalidError("slot")
		}
		return s, nil
	}
	s.autoID = autoID
	s.name = name
	if temperature != nil {
		t := *temperature
		s.temperature = &t
	}
	return s, nil
}

func (s *Slot) setPosition(position int) error {
	if position < 1 || position > SlotCount {
		return errs.NewValueIsOutOfRangeError("position", position, 1, SlotCount)
	}
	s.position = position
	return nil
}

func (s Slot) Validate() error {
	return s.guard.Validate(ErrSlotIsNotConstructed)
}

func (s Slot) Position() int { return s.position }

func (s Slot) IsOccupied() bool { return s.autoID != "" }

func (s Slot) AutoID() string { return s.autoID }

func (s Slot) Name() string { return s.name }

// Temperature returns the recorded temperature, or nil when none was taken.
func (s Slot) Temperature() *float64 {
	if s.temperature == nil {
		return nil
	}
	t := *s.temperature
	return &t
}

// Describe renders the slot content for alert and log messages.
func (s Slot) Describe() string {
	if !s.IsOccupied() {
		return fmt.Sprintf("slot %d (empty)", s.position)
	}
	return fmt.Sprintf("slot %d: %s", s.position, s.autoID)
}
