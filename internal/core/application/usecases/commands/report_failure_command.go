package commands

import (
	"errors"

	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/pkg/guard"
)

var (
	ErrReportFailureCommandIsNotConstructed = errors.New(
		"ReportFailureCommand must be created via NewReportFailureCommand constructor",
	)
	ErrFailureDescriptionIsRequired = errors.New("failure description is required")
)

// ReportFailureCommand represents an operator reporting that a pending
// order cannot be fulfilled. The report becomes a manual alert that stays
// on the board until explicitly resolved; the order itself stays pending.
type ReportFailureCommand struct { //nolint:recvcheck //using for validation
	actor       role.Role
	orderID     kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewReportFailureCommand creates a command to file a failure report.
func NewReportFailureCommand(actor role.Role, orderID kernel.UUID, description string) (ReportFailureCommand, error) {
	cmd := ReportFailureCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setDescription(description),
	); err != nil {
		return ReportFailureCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportFailureCommand) Validate() error {
	return c.guard.Validate(ErrReportFailureCommandIsNotConstructed)
}

// Actor returns the role invoking the command.
func (c ReportFailureCommand) Actor() role.Role {
	return c.actor
}

// OrderID returns the id of the order the report concerns.
func (c ReportFailureCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Description returns the operator's account of the failure.
func (c ReportFailureCommand) Description() string {
	return c.description
}

func (c *ReportFailureCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ReportFailureCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReportFailureCommand) setDescription(description string) error {
	if description == "" {
		return ErrFailureDescriptionIsRequired
	}

	c.description = description
	return nil
}
