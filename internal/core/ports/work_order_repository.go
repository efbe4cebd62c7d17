package ports

import (
	"context"

	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for the pending work
// order queue.
type WorkOrderRepository interface {
	// Add appends a new pending order to the queue.
	Add(ctx context.Context, order *workorder.WorkOrder) error

	// Update persists changes to an existing pending order (rescheduling).
	Update(ctx context.Context, order *workorder.WorkOrder) error

	// Get retrieves a pending order by id. A missing id yields an
	// errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// GetAllPending retrieves the queue, oldest first with stable ties.
	GetAllPending(ctx context.Context) ([]*workorder.WorkOrder, error)

	// Remove deletes an order from the queue, the moment it executes.
	// Removing an unknown id yields an errs.ObjectNotFoundError.
	Remove(ctx context.Context, id kernel.UUID) error
}
