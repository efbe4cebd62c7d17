package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary spanning the
// warehouse entity keys and the order queue. Client code must explicitly
// manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Without an active
	// transaction it is a no-op, so callers can keep it deferred.
	Rollback(ctx context.Context) error

	// WarehouseRepository returns a WarehouseRepository bound to the
	// current transaction.
	WarehouseRepository() WarehouseRepository

	// WorkOrderRepository returns a WorkOrderRepository bound to the
	// current transaction.
	WorkOrderRepository() WorkOrderRepository
}
