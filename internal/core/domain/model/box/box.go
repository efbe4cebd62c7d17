// Package box defines the Box entity: a physical container moving through
// the warehouse zones. A box exists while it is located somewhere — the zone
// collections own the box data, and a work order only ever references a box
// by zone and position.
package box

import (
	"errors"
	"fmt"

	"coldstore/internal/pkg/errs"
	"coldstore/internal/pkg/guard"
)

// ErrBoxIsNotConstructed is returned when a Box instance was not created
// through the NewBox factory method.
var ErrBoxIsNotConstructed = errors.New("Box must be created via NewBox constructor")

// Box represents a container located at a dense position within the Inbound
// or Outbound zone (Storage keeps box data inline in its slots). The
// temperature is the last measured value in °C and may be negative.
//
// Invariants:
//   - autoID and name are non-empty
//   - position is a positive integer, unique within its zone
//   - can only be created through NewBox
type Box struct {
	position    int
	autoID      string
	name        string
	temperature float64

	guard guard.ConstructorGuard
}

// NewBox creates a Box at the given zone position. The autoID is the
// generated "BOX-YYYYMMDD-NNN" identifier, name the operator-supplied label.
func NewBox(position int, autoID, name string, temperature float64) (*Box, error) {
	b := &Box{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setPosition(position),
		b.setAutoID(autoID),
		b.setName(name),
	); err != nil {
		return nil, err
	}

	b.temperature = temperature
	return b, nil
}

// Validate ensures the Box instance was constructed through NewBox.
func (b *Box) Validate() error {
	if b == nil {
		return ErrBoxIsNotConstructed
	}
	return b.guard.Validate(ErrBoxIsNotConstructed)
}

// Position returns the box's dense position within its zone.
func (b *Box) Position() int {
	return b.position
}

// AutoID returns the generated identifier.
func (b *Box) AutoID() string {
	return b.autoID
}

// Name returns the operator-supplied label.
func (b *Box) Name() string {
	return b.name
}

// Temperature returns the last measured temperature in °C.
func (b *Box) Temperature() float64 {
	return b.temperature
}

// SetTemperature records a new measured temperature.
func (b *Box) SetTemperature(temperature float64) {
	b.temperature = temperature
}

// Relocate creates a copy of the box at a different position. It is used
// when a box changes zone, keeping identity and measurements intact.
func (b *Box) Relocate(position int) (*Box, error) {
	return NewBox(position, b.autoID, b.name, b.temperature)
}

// Matches reports whether the box is identified by the given term, which may
// be either the auto id or the name.
func (b *Box) Matches(term string) bool {
	return b.autoID == term || b.name == term
}

func (b *Box) setPosition(position int) error {
	if position <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("position", fmt.Errorf("%d is not greater than 0", position))
	}
	b.position = position
	return nil
}

func (b *Box) setAutoID(autoID string) error {
	if autoID == "" {
		return errs.NewValueIsRequiredError("autoID")
	}
	b.autoID = autoID
	return nil
}

func (b *Box) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	b.name = name
	return nil
}
