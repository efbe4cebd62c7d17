package ports

import (
	"context"

	"coldstore/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for the warehouse
// aggregate. There is exactly one warehouse per store; Get restores it from
// the persisted entity keys, normalizing each independently, and falls back
// to a fresh default for any key whose payload is malformed.
type WarehouseRepository interface {
	// Get restores the warehouse aggregate. A store without persisted
	// state yields a new empty warehouse with a generated identity.
	Get(ctx context.Context) (*warehouse.Warehouse, error)

	// Save persists the aggregate across its entity keys.
	Save(ctx context.Context, aggregate *warehouse.Warehouse) error
}
