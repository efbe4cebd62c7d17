// Package alert defines the derived alert feed entries. Alert identity is
// deterministic — the same cause always yields the same id — so the periodic
// recomputation can reuse existing alerts instead of churning them, and an
// operator annotation attached to an alert survives the next tick.
package alert

import (
	"errors"
	"fmt"
	"strings"

	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/pkg/errs"
	"coldstore/internal/pkg/guard"
)

// Stable id scheme. The aggregate temperature alert always carries the same
// id; order and report alerts derive theirs from a UUID.
const (
	// TemperatureAlertID is the fixed id of the single aggregate
	// high-temperature alert covering every box above the limit.
	TemperatureAlertID = "alert-temperature-5"

	// OrderAlertPrefix prefixes overdue-order alert ids; the remainder is
	// the work order's UUID.
	OrderAlertPrefix = "alert-order-"

	// ReportAlertPrefix prefixes manually filed failure-report alert ids.
	ReportAlertPrefix = "alert-report-"
)

// ErrAlertIsNotConstructed is returned when an Alert instance was not
// created through one of the constructors.
var ErrAlertIsNotConstructed = errors.New("Alert must be created via one of its constructors")

// Reason is the closed vocabulary of operator annotations an alert may
// carry before being resolved.
type Reason string

const (
	// ReasonNoTime — the operator ran out of time.
	ReasonNoTime Reason = "no_time"

	// ReasonDidNotWant — the operator declined the task.
	ReasonDidNotWant Reason = "did_not_want"

	// ReasonCouldNot — the operator was unable to complete the task.
	ReasonCouldNot Reason = "could_not"
)

// Validate returns an error unless the reason is one of the three known
// annotations.
func (r Reason) Validate() error {
	switch r {
	case ReasonNoTime, ReasonDidNotWant, ReasonCouldNot:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("reason", fmt.Errorf("%q is not a valid alert reason", string(r)))
	}
}

// Alert is one entry of the active alert feed. Temperature and overdue
// alerts are regenerated from their causes every evaluation tick; failure
// reports persist until explicitly resolved.
type Alert struct {
	id          string
	title       string
	description string
	reason      *Reason

	guard guard.ConstructorGuard
}

// NewTemperatureAlert creates the aggregate high-temperature alert. The
// description lists every offending box across all zones.
func NewTemperatureAlert(description string) Alert {
	return Alert{
		id:          TemperatureAlertID,
		title:       "High temperature",
		description: description,
		guard:       guard.NewConstructorGuard(),
	}
}

// NewOverdueOrderAlert creates the alert flagging a work order that has been
// pending past the SLA threshold. Its id derives from the order id.
func NewOverdueOrderAlert(orderID kernel.UUID, description string) Alert {
	return Alert{
		id:          OrderAlertID(orderID),
		title:       "Overdue task",
		description: description,
		guard:       guard.NewConstructorGuard(),
	}
}

// NewFailureReportAlert creates a manually filed failure report. reportID is
// a fresh UUID minted by the reporting command.
func NewFailureReportAlert(reportID kernel.UUID, description string) Alert {
	return Alert{
		id:          ReportAlertPrefix + reportID.String(),
		title:       "Failure report",
		description: description,
		guard:       guard.NewConstructorGuard(),
	}
}

// OrderAlertID returns the deterministic alert id for an overdue order.
func OrderAlertID(orderID kernel.UUID) string {
	return OrderAlertPrefix + orderID.String()
}

// Validate ensures the Alert was built through a constructor.
func (a Alert) Validate() error {
	return a.guard.Validate(ErrAlertIsNotConstructed)
}

// ID returns the stable alert identifier.
func (a Alert) ID() string {
	return a.id
}

// Title returns the short alert headline.
func (a Alert) Title() string {
	return a.title
}

// Description returns the full alert text.
func (a Alert) Description() string {
	return a.description
}

// Reason returns the operator annotation, or nil when none was filed.
func (a Alert) Reason() *Reason {
	if a.reason == nil {
		return nil
	}
	reason := *a.reason
	return &reason
}

// WithReason returns a copy of the alert carrying the annotation.
func (a Alert) WithReason(reason Reason) (Alert, error) {
	if err := reason.Validate(); err != nil {
		return Alert{}, err
	}
	a.reason = &reason
	return a, nil
}

// WithDescription returns a copy of the alert with an updated description,
// keeping id, title and any annotation. Used when the cause set behind the
// aggregate temperature alert changes between ticks.
func (a Alert) WithDescription(description string) Alert {
	a.description = description
	return a
}

// IsFailureReport reports whether the alert is a manually filed report,
// which is carried across ticks until resolved.
func (a Alert) IsFailureReport() bool {
	return strings.HasPrefix(a.id, ReportAlertPrefix)
}

// OverdueOrderID extracts the work order id from an overdue-order alert.
// The second return is false for any other alert class.
func (a Alert) OverdueOrderID() (kernel.UUID, bool) {
	if !strings.HasPrefix(a.id, OrderAlertPrefix) {
		return kernel.UUID{}, false
	}
	id, err := kernel.UUIDFromString(strings.TrimPrefix(a.id, OrderAlertPrefix))
	if err != nil {
		return kernel.UUID{}, false
	}
	return id, true
}
