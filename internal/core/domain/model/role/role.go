// Package role defines the warehouse staff roles and the authorization
// policy that maps each role to the engine operations it may invoke. The
// policy is checked inside every engine entry point, never only in the
// presentation layer.
package role

import (
	"errors"
	"fmt"

	"coldstore/internal/pkg/errs"
)

// ErrUnauthorized is returned whenever a role attempts an operation the
// policy does not grant it.
var ErrUnauthorized = errors.New("role is not authorized for this operation")

// Role identifies a warehouse staff role.
type Role int

const (
	// UnknownRole is the invalid zero value.
	UnknownRole Role = iota

	// Custodian receives boxes at Inbound and dispatches from Outbound.
	Custodian

	// Admin has read and search access over the whole warehouse.
	Admin

	// Operator executes pending work orders and reports failures.
	Operator

	// Supervisor creates work orders and manages the alert feed. The role
	// can be disabled by configuration, collapsing to the three-role setup
	// where Admin creates orders and Review orders do not exist.
	Supervisor
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Custodian:   "custodian",
		Admin:       "admin",
		Operator:    "operator",
		Supervisor:  "supervisor",
	}
}

// Validate returns an error unless the role is a known staff role.
func (r Role) Validate() error {
	switch r {
	case Custodian, Admin, Operator, Supervisor:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
}

// String returns the lowercase wire name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// RoleFromString parses a role from its wire name.
func RoleFromString(s string) (Role, error) {
	for r, name := range getRoleStrings() {
		if name == s && r != UnknownRole {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}
