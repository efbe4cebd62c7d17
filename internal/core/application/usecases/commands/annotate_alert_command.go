package commands

import (
	"errors"

	"coldstore/internal/core/domain/model/alert"
	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/pkg/guard"
)

var (
	ErrAnnotateAlertCommandIsNotConstructed = errors.New(
		"AnnotateAlertCommand must be created via NewAnnotateAlertCommand constructor",
	)
	ErrAlertIDIsRequired = errors.New("alert id is required")
)

// AnnotateAlertCommand attaches a reason to an active alert before it is
// resolved. The annotation survives alert recomputation because derivation
// reuses alerts by id.
type AnnotateAlertCommand struct { //nolint:recvcheck //using for validation
	actor   role.Role
	alertID string
	reason  alert.Reason

	guard guard.ConstructorGuard
}

// NewAnnotateAlertCommand creates a command to annotate the given alert.
func NewAnnotateAlertCommand(actor role.Role, alertID string, reason alert.Reason) (AnnotateAlertCommand, error) {
	cmd := AnnotateAlertCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setAlertID(alertID),
		cmd.setReason(reason),
	); err != nil {
		return AnnotateAlertCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AnnotateAlertCommand) Validate() error {
	return c.guard.Validate(ErrAnnotateAlertCommandIsNotConstructed)
}

// Actor returns the role invoking the command.
func (c AnnotateAlertCommand) Actor() role.Role {
	return c.actor
}

// AlertID returns the id of the alert to annotate.
func (c AnnotateAlertCommand) AlertID() string {
	return c.alertID
}

// Reason returns the annotation.
func (c AnnotateAlertCommand) Reason() alert.Reason {
	return c.reason
}

func (c *AnnotateAlertCommand) setActor(actor role.Role) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AnnotateAlertCommand) setAlertID(alertID string) error {
	if alertID == "" {
		return ErrAlertIDIsRequired
	}

	c.alertID = alertID
	return nil
}

func (c *AnnotateAlertCommand) setReason(reason alert.Reason) error {
	if err := reason.Validate(); err != nil {
		return err
	}

	c.reason = reason
	return nil
}
