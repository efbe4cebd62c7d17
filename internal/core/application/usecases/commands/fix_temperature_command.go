package commands

import (
	"errors"
	"fmt"

	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/pkg/guard"
)

var (
	ErrFixTemperatureCommandIsNotConstructed = errors.New(
		"FixTemperatureCommand must be created via NewFixTemperatureCommand constructor",
	)
	ErrPositionIsInvalid = errors.New("position must be greater than 0")
)

// FixTemperatureCommand represents a corrective temperature measurement on
// a located box, typically filed while resolving the aggregate temperature
// alert. The next alert derivation drops the box from the alert if the new
// reading is within the limit.
type FixTemperatureCommand struct { //nolint:recvcheck //using for validation
	actor       role.Role
	zone        kernel.Zone
	position    int
	temperature float64

	guard guard.ConstructorGuard
}

// NewFixTemperatureCommand creates a command to overwrite a box temperature.
func NewFixTemperatureCommand(actor role.Role, zone kernel.Zone, position int, temperature float64) (FixTemperatureCommand, error) {
	cmd := FixTemperatureCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setLocation(zone, position),
	); err != nil {
		return FixTemperatureCommand{}, err
	}

	cmd.temperature = temperature
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FixTemperatureCommand) Validate() error {
	return c.guard.Validate(ErrFixTemperatureCommandIsNotConstructed)
}

// Actor returns the role invoking the command.
func (c FixTemperatureCommand) Actor() role.Role {
	return c.actor
}

// Zone returns the zone of the box.
func (c FixTemperatureCommand) Zone() kernel.Zone {
	return c.zone
}

// Position returns the box position within its zone.
func (c FixTemperatureCommand) Position() int {
	return c.position
}

// Temperature returns the corrected measurement in °C.
func (c FixTemperatureCommand) Temperature() float64 {
	return c.temperature
}

func (c *FixTemperatureCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *FixTemperatureCommand) setLocation(zone kernel.Zone, position int) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	if position <= 0 {
		return fmt.Errorf("%w: got %d", ErrPositionIsInvalid, position)
	}

	c.zone = zone
	c.position = position
	return nil
}
