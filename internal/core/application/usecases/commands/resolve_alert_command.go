package commands

import (
	"errors"

	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/pkg/guard"
)

var ErrResolveAlertCommandIsNotConstructed = errors.New(
	"ResolveAlertCommand must be created via NewResolveAlertCommand constructor",
)

// ResolveAlertCommand represents a request to resolve an active alert.
// Resolving an overdue-order alert reschedules the order so it is not
// flagged again on the next tick.
type ResolveAlertCommand struct { //nolint:recvcheck //using for validation
	actor   role.Role
	alertID string

	guard guard.ConstructorGuard
}

// NewResolveAlertCommand creates a command to resolve the given alert.
func NewResolveAlertCommand(actor role.Role, alertID string) (ResolveAlertCommand, error) {
	cmd := ResolveAlertCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setAlertID(alertID),
	); err != nil {
		return ResolveAlertCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveAlertCommand) Validate() error {
	return c.guard.Validate(ErrResolveAlertCommandIsNotConstructed)
}

// Actor returns the role invoking the command.
func (c ResolveAlertCommand) Actor() role.Role {
	return c.actor
}

// AlertID returns the id of the alert to resolve.
func (c ResolveAlertCommand) AlertID() string {
	return c.alertID
}

func (c *ResolveAlertCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ResolveAlertCommand) setAlertID(alertID string) error {
	if alertID == "" {
		return ErrAlertIDIsRequired
	}

	c.alertID = alertID
	return nil
}
