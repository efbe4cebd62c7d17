// Package queries contains read-only operations over warehouse state.
// Implements the Query pattern for the read side of the CQRS architecture.
// Query handlers never mutate anything; they read through the same
// repositories as the write side so persisted-state normalization is
// applied exactly once, in the adapter.
package queries

import (
	"context"

	"coldstore/internal/core/domain/model/warehouse"
	"coldstore/internal/core/domain/model/workorder"
)

type (
	// WarehouseReader provides read access to the warehouse aggregate.
	WarehouseReader interface {
		Get(ctx context.Context) (*warehouse.Warehouse, error)
	}

	// WorkOrderReader provides read access to the pending order queue.
	WorkOrderReader interface {
		GetAllPending(ctx context.Context) ([]*workorder.WorkOrder, error)
	}
)
