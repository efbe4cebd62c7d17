package commands

import (
	"errors"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/pkg/guard"
)

var (
	ErrRegisterInboundBoxCommandIsNotConstructed = errors.New(
		"RegisterInboundBoxCommand must be created via NewRegisterInboundBoxCommand constructor",
	)
	ErrBoxNameIsRequired = errors.New("box name is required")
)

// RegisterInboundBoxCommand represents a request to register a newly
// arrived box at the inbound zone. The position and auto id are assigned by
// the handler; the caller only supplies the label and the measured
// temperature.
type RegisterInboundBoxCommand struct { //nolint:recvcheck //using for validation
	actor       role.Role
	name        string
	temperature float64

	guard guard.ConstructorGuard
}

// NewRegisterInboundBoxCommand creates a command to register an arriving box.
func NewRegisterInboundBoxCommand(actor role.Role, name string, temperature float64) (RegisterInboundBoxCommand, error) {
	cmd := RegisterInboundBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setName(name),
	); err != nil {
		return RegisterInboundBoxCommand{}, err
	}

	cmd.temperature = temperature
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterInboundBoxCommand) Validate() error {
	return c.guard.Validate(ErrRegisterInboundBoxCommandIsNotConstructed)
}

// Actor returns the role invoking the command.
func (c RegisterInboundBoxCommand) Actor() role.Role {
	return c.actor
}

// Name returns the operator-supplied box label.
func (c RegisterInboundBoxCommand) Name() string {
	return c.name
}

// Temperature returns the measured temperature in °C.
func (c RegisterInboundBoxCommand) Temperature() float64 {
	return c.temperature
}

func (c *RegisterInboundBoxCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RegisterInboundBoxCommand) setName(name string) error {
	if name == "" {
		return ErrBoxNameIsRequired
	}

	c.name = name
	return nil
}
