// Package postgres provides the GORM-based Unit of Work implementation.
// Every command runs load → validate → mutate → save inside one database
// transaction; the unit of work hands out repositories bound to that
// transaction and guarantees rollback on failure.
package postgres

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"coldstore/internal/adapters/out/postgres/staterepo"
	"coldstore/internal/core/ports"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one database
// connection. Each business operation gets a fresh instance, isolated from
// other concurrent operations.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormUnitOfWorkFactory creates a factory over the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB, logger *slog.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, logger: logger}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db, logger: f.logger}
}

// GormUnitOfWork coordinates one transaction across the warehouse entity
// keys and the order queue. Begin is idempotent; Commit and Rollback
// without an active transaction are errors, except Rollback after Commit,
// which is a no-op so handlers can keep it deferred.
type GormUnitOfWork struct {
	db     *gorm.DB
	tx     *gorm.DB
	logger *slog.Logger
}

// Begin starts the transaction. Repositories handed out afterwards are
// bound to it.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback aborts the transaction. Calling it after Commit is a no-op,
// which lets handlers defer it unconditionally.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// WarehouseRepository returns a warehouse repository bound to the current
// transaction, or to the bare connection before Begin.
func (uow *GormUnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return staterepo.NewGormWarehouseRepository(uow.conn(), uow.logger)
}

// WorkOrderRepository returns an order queue repository bound to the
// current transaction, or to the bare connection before Begin.
func (uow *GormUnitOfWork) WorkOrderRepository() ports.WorkOrderRepository {
	return staterepo.NewGormWorkOrderRepository(uow.conn(), uow.logger)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
