package commands

import (
	"errors"
	"fmt"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/pkg/guard"
)

var (
	ErrDispatchBoxCommandIsNotConstructed = errors.New(
		"DispatchBoxCommand must be created via NewDispatchBoxCommand constructor",
	)
	ErrOutboundPositionIsInvalid = errors.New("outbound position must be greater than 0")
)

// DispatchBoxCommand represents a request to hand an outbound box over:
// the box leaves the outbound zone and moves to the dispatched archive.
type DispatchBoxCommand struct { //nolint:recvcheck //using for validation
	actor    role.Role
	position int

	guard guard.ConstructorGuard
}

// NewDispatchBoxCommand creates a command to dispatch the box at the given
// outbound position.
func NewDispatchBoxCommand(actor role.Role, position int) (DispatchBoxCommand, error) {
	cmd := DispatchBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setPosition(position),
	); err != nil {
		return DispatchBoxCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchBoxCommand) Validate() error {
	return c.guard.Validate(ErrDispatchBoxCommandIsNotConstructed)
}

// Actor returns the role invoking the command.
func (c DispatchBoxCommand) Actor() role.Role {
	return c.actor
}

// Position returns the outbound position to dispatch from.
func (c DispatchBoxCommand) Position() int {
	return c.position
}

func (c *DispatchBoxCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *DispatchBoxCommand) setPosition(position int) error {
	if position <= 0 {
		return fmt.Errorf("%w: got %d", ErrOutboundPositionIsInvalid, position)
	}

	c.position = position
	return nil
}
