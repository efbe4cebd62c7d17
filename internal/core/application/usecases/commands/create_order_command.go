package commands

import (
	"errors"
	"fmt"

	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/core/domain/model/workorder"
	"coldstore/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrSourcePositionIsInvalid = errors.New("source position must be greater than 0")
)

// CreateOrderCommand represents a request to create a pending work order
// referencing a box by zone and position. For ToStorage orders the target
// slot is the caller's choice; for ToOutbound the target is computed by the
// engine and any supplied value is ignored; Review orders carry none.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor          role.Role
	orderType      workorder.Type
	sourceZone     kernel.Zone
	sourcePosition int
	targetPosition *int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new work order.
func NewCreateOrderCommand(
	actor role.Role,
	orderType workorder.Type,
	sourceZone kernel.Zone,
	sourcePosition int,
	targetPosition *int,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderType(orderType),
		cmd.setSource(sourceZone, sourcePosition),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if targetPosition != nil {
		target := *targetPosition
		cmd.targetPosition = &target
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the role invoking the command.
func (c CreateOrderCommand) Actor() role.Role {
	return c.actor
}

// OrderType returns the requested order type.
func (c CreateOrderCommand) OrderType() workorder.Type {
	return c.orderType
}

// SourceZone returns the zone of the referenced box.
func (c CreateOrderCommand) SourceZone() kernel.Zone {
	return c.sourceZone
}

// SourcePosition returns the position of the referenced box.
func (c CreateOrderCommand) SourcePosition() int {
	return c.sourcePosition
}

// TargetPosition returns the requested target slot, or nil.
func (c CreateOrderCommand) TargetPosition() *int {
	if c.targetPosition == nil {
		return nil
	}
	target := *c.targetPosition
	return &target
}

func (c *CreateOrderCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType workorder.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setSource(zone kernel.Zone, position int) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	if position <= 0 {
		return fmt.Errorf("%w: got %d", ErrSourcePositionIsInvalid, position)
	}

	c.sourceZone = zone
	c.sourcePosition = position
	return nil
}
