package staterepo

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/workorder"
	"coldstore/internal/pkg/errs"
)

// GormWorkOrderRepository persists the pending order queue under the
// "orders" entity key. It implements ports.WorkOrderRepository and serves
// as the read side's WorkOrderReader.
type GormWorkOrderRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormWorkOrderRepository creates a repository bound to the given
// connection or transaction.
func NewGormWorkOrderRepository(db *gorm.DB, logger *slog.Logger) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{db: db, logger: logger}
}

// Add appends a new pending order to the queue.
func (r *GormWorkOrderRepository) Add(ctx context.Context, order *workorder.WorkOrder) error {
	if err := order.Validate(); err != nil {
		return err
	}

	return r.mutate(ctx, func(orders []*workorder.WorkOrder) ([]*workorder.WorkOrder, error) {
		return append(orders, order), nil
	})
}

// Update replaces an existing pending order in place.
func (r *GormWorkOrderRepository) Update(ctx context.Context, order *workorder.WorkOrder) error {
	if err := order.Validate(); err != nil {
		return err
	}

	return r.mutate(ctx, func(orders []*workorder.WorkOrder) ([]*workorder.WorkOrder, error) {
		for i, existing := range orders {
			if existing.ID().IsEqual(order.ID()) {
				orders[i] = order
				return orders, nil
			}
		}
		return nil, errs.NewObjectNotFoundError("order", order.ID().String())
	})
}

// Get retrieves a pending order by id.
func (r *GormWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	orders, err := r.load(ctx, false)
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		if order.ID().IsEqual(id) {
			return order, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order", id.String())
}

// GetAllPending retrieves the queue, oldest first with stable ties.
func (r *GormWorkOrderRepository) GetAllPending(ctx context.Context) ([]*workorder.WorkOrder, error) {
	orders, err := r.load(ctx, false)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAtEpochMs() < orders[j].CreatedAtEpochMs()
	})
	return orders, nil
}

// Remove deletes an order from the queue.
func (r *GormWorkOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.mutate(ctx, func(orders []*workorder.WorkOrder) ([]*workorder.WorkOrder, error) {
		for i, order := range orders {
			if order.ID().IsEqual(id) {
				return append(orders[:i], orders[i+1:]...), nil
			}
		}
		return nil, errs.NewObjectNotFoundError("order", id.String())
	})
}

// load reads and normalizes the queue. A malformed payload is logged and
// the queue resets to empty rather than failing the caller.
func (r *GormWorkOrderRepository) load(ctx context.Context, forUpdate bool) ([]*workorder.WorkOrder, error) {
	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	payloads, err := loadPayloads(tx, KeyOrders)
	if err != nil {
		return nil, err
	}

	orders, err := ordersToDomain(payloads[KeyOrders], time.Now())
	if err != nil {
		r.logger.Warn("resetting malformed persisted state", "error", err)
		return nil, nil
	}
	return orders, nil
}

func (r *GormWorkOrderRepository) mutate(
	ctx context.Context,
	apply func([]*workorder.WorkOrder) ([]*workorder.WorkOrder, error),
) error {
	orders, err := r.load(ctx, true)
	if err != nil {
		return err
	}

	orders, err = apply(orders)
	if err != nil {
		return err
	}

	tx := r.db.WithContext(ctx)
	if err := upsertRow(tx, KeyOrders, ordersFromDomain(orders)); err != nil {
		return err
	}
	return notifyChanged(tx, KeyOrders)
}
