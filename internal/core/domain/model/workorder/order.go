package workorder

import (
	"errors"
	"fmt"
	"time"

	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/role"
	"coldstore/internal/pkg/errs"
	"coldstore/internal/pkg/guard"
)

var (
	// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was
	// not created through NewWorkOrder or RestoreWorkOrder.
	ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder constructor")

	// ErrTargetNotAllowed indicates a target position on an order type that
	// never carries one.
	ErrTargetNotAllowed = errors.New("review orders do not carry a target position")

	// ErrReviewSourceMustBeStorage indicates a Review order referencing a
	// zone other than Storage.
	ErrReviewSourceMustBeStorage = errors.New("review orders may only reference the storage zone")
)

// createdAtLayout is the display form of the creation timestamp. The epoch
// milliseconds field, not this string, is the sort and alert-timing key.
const createdAtLayout = "2006-01-02 15:04:05"

// WorkOrder is a pending request to move or review a box.
//
// Invariants:
//   - the source is a (zone, position) reference, re-resolved at execution
//   - ToStorage and ToOutbound orders carry a positive target position,
//     Review orders never do
//   - Review orders only reference the Storage zone
//   - at most one pending order references a given source at a time; that
//     invariant spans the whole queue and is enforced by the order engine,
//     not by a single order
type WorkOrder struct {
	id               kernel.UUID
	orderType        Type
	sourceZone       kernel.Zone
	sourcePosition   int
	targetPosition   *int
	createdAt        string
	createdAtEpochMs int64
	createdBy        role.Role

	guard guard.ConstructorGuard
}

// NewWorkOrder creates a pending work order stamped with the current time.
// The target position, where required, must already have been allocated and
// reserved by the order engine.
func NewWorkOrder(
	id kernel.UUID,
	orderType Type,
	sourceZone kernel.Zone,
	sourcePosition int,
	targetPosition *int,
	createdBy role.Role,
	now time.Time,
) (*WorkOrder, error) {
	o := &WorkOrder{
		createdAt:        now.Format(createdAtLayout),
		createdAtEpochMs: now.UnixMilli(),
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setType(orderType),
		o.setSource(sourceZone, sourcePosition),
		o.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	if err := o.setTarget(targetPosition); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreWorkOrder reconstructs a work order from persistence, keeping the
// original timestamps.
func RestoreWorkOrder(
	id kernel.UUID,
	orderType Type,
	sourceZone kernel.Zone,
	sourcePosition int,
	targetPosition *int,
	createdBy role.Role,
	createdAt string,
	createdAtEpochMs int64,
) (*WorkOrder, error) {
	o, err := NewWorkOrder(id, orderType, sourceZone, sourcePosition, targetPosition, createdBy, time.UnixMilli(createdAtEpochMs))
	if err != nil {
		return nil, err
	}

	o.createdAt = createdAt
	o.createdAtEpochMs = createdAtEpochMs
	return o, nil
}

// Validate ensures the WorkOrder was constructed through a constructor.
func (o *WorkOrder) Validate() error {
	if o == nil {
		return ErrWorkOrderIsNotConstructed
	}
	return o.guard.Validate(ErrWorkOrderIsNotConstructed)
}

// IsEqual compares two work orders by id.
func (o *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *WorkOrder) ID() kernel.UUID {
	return o.id
}

// Type returns the order type.
func (o *WorkOrder) Type() Type {
	return o.orderType
}

// SourceZone returns the zone the referenced box was in at creation time.
func (o *WorkOrder) SourceZone() kernel.Zone {
	return o.sourceZone
}

// SourcePosition returns the position of the referenced box within its zone.
func (o *WorkOrder) SourcePosition() int {
	return o.sourcePosition
}

// TargetPosition returns the reserved destination position, or nil for
// Review orders.
func (o *WorkOrder) TargetPosition() *int {
	if o.targetPosition == nil {
		return nil
	}
	target := *o.targetPosition
	return &target
}

// CreatedAt returns the display form of the creation timestamp.
func (o *WorkOrder) CreatedAt() string {
	return o.createdAt
}

// CreatedAtEpochMs returns the creation time in Unix milliseconds. It is the
// queue ordering and overdue-detection key.
func (o *WorkOrder) CreatedAtEpochMs() int64 {
	return o.createdAtEpochMs
}

// CreatedBy returns the role that created the order.
func (o *WorkOrder) CreatedBy() role.Role {
	return o.createdBy
}

// SourceKey returns the "zone:position" key identifying the source box
// reference, used to block duplicate pending work on one box.
func (o *WorkOrder) SourceKey() string {
	return kernel.SourceKey(o.sourceZone, o.sourcePosition)
}

// Age returns how long the order has been pending.
func (o *WorkOrder) Age(now time.Time) time.Duration {
	return time.Duration(now.UnixMilli()-o.createdAtEpochMs) * time.Millisecond
}

// Reschedule resets the creation timestamps to now. Resolving an
// overdue-order alert reschedules the order so it is not immediately flagged
// again.
func (o *WorkOrder) Reschedule(now time.Time) {
	o.createdAt = now.Format(createdAtLayout)
	o.createdAtEpochMs = now.UnixMilli()
}

// Describe renders a short human-readable summary, e.g.
// "inbound 2 -> storage 5" or "review storage 3". It appears in task lists
// and alert descriptions.
func (o *WorkOrder) Describe() string {
	if o.orderType == TypeReview {
		return fmt.Sprintf("review %s %d", o.sourceZone, o.sourcePosition)
	}

	target := "-"
	if o.targetPosition != nil {
		target = fmt.Sprintf("%d", *o.targetPosition)
	}
	destination := kernel.ZoneStorage
	if o.orderType == TypeToOutbound {
		destination = kernel.ZoneOutbound
	}
	return fmt.Sprintf("%s %d -> %s %s", o.sourceZone, o.sourcePosition, destination, target)
}

func (o *WorkOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *WorkOrder) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *WorkOrder) setSource(zone kernel.Zone, position int) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	if position <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("source position", fmt.Errorf("%d is not greater than 0", position))
	}
	if o.orderType == TypeReview && zone != kernel.ZoneStorage {
		return ErrReviewSourceMustBeStorage
	}

	o.sourceZone = zone
	o.sourcePosition = position
	return nil
}

func (o *WorkOrder) setTarget(target *int) error {
	if o.orderType == TypeReview {
		if target != nil {
			return ErrTargetNotAllowed
		}
		return nil
	}

	if target == nil {
		return errs.NewValueIsRequiredError("target position")
	}
	if *target <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("target position", fmt.Errorf("%d is not greater than 0", *target))
	}

	value := *target
	o.targetPosition = &value
	return nil
}

func (o *WorkOrder) setCreatedBy(createdBy role.Role) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	o.createdBy = createdBy
	return nil
}
