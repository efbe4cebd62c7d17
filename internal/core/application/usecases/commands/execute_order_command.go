package commands

import (
	"errors"

	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/pkg/guard"
)

var ErrExecuteOrderCommandIsNotConstructed = errors.New(
	"ExecuteOrderCommand must be created via NewExecuteOrderCommand constructor",
)

// ExecuteOrderCommand represents a request to execute a pending work order.
type ExecuteOrderCommand struct { //nolint:recvcheck //using for validation
	actor   role.Role
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewExecuteOrderCommand creates a command to execute the given order.
func NewExecuteOrderCommand(actor role.Role, orderID kernel.UUID) (ExecuteOrderCommand, error) {
	cmd := ExecuteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return ExecuteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExecuteOrderCommand) Validate() error {
	return c.guard.Validate(ErrExecuteOrderCommandIsNotConstructed)
}

// Actor returns the role invoking the command.
func (c ExecuteOrderCommand) Actor() role.Role {
	return c.actor
}

// OrderID returns the id of the order to execute.
func (c ExecuteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ExecuteOrderCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ExecuteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
