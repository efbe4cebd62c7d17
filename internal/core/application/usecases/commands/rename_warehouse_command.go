package commands

import (
	"errors"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/pkg/guard"
)

var (
	ErrRenameWarehouseCommandIsNotConstructed = errors.New(
		"RenameWarehouseCommand must be created via NewRenameWarehouseCommand constructor",
	)
	ErrWarehouseNameIsRequired = errors.New("warehouse name is required")
)

// RenameWarehouseCommand updates the warehouse display name. The generated
// warehouse id never changes.
type RenameWarehouseCommand struct { //nolint:recvcheck //using for validation
	actor role.Role
	name  string

	guard guard.ConstructorGuard
}

// NewRenameWarehouseCommand creates a command to rename the warehouse.
func NewRenameWarehouseCommand(actor role.Role, name string) (RenameWarehouseCommand, error) {
	cmd := RenameWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setName(name),
	); err != nil {
		return RenameWarehouseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RenameWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrRenameWarehouseCommandIsNotConstructed)
}

// Actor returns the role invoking the command.
func (c RenameWarehouseCommand) Actor() role.Role {
	return c.actor
}

// Name returns the new display name.
func (c RenameWarehouseCommand) Name() string {
	return c.name
}

func (c *RenameWarehouseCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RenameWarehouseCommand) setName(name string) error {
	if name == "" {
		return ErrWarehouseNameIsRequired
	}

	c.name = name
	return nil
}
