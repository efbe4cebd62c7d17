package staterepo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"coldstore/internal/core/domain/model/warehouse"
)

// GormWarehouseRepository persists the warehouse aggregate across its
// entity keys. It implements ports.WarehouseRepository and serves as the
// read side's WarehouseReader.
type GormWarehouseRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormWarehouseRepository creates a repository bound to the given
// connection or transaction.
func NewGormWarehouseRepository(db *gorm.DB, logger *slog.Logger) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db, logger: logger}
}

// Get restores the aggregate from the persisted entity keys. Every key
// normalizes independently; a malformed payload is logged and replaced by
// the entity default without touching the other keys. A store without
// state yields a fresh warehouse with a generated identity.
func (r *GormWarehouseRepository) Get(ctx context.Context) (*warehouse.Warehouse, error) {
	payloads, err := loadPayloads(r.db.WithContext(ctx),
		KeyWarehouse, KeySlots, KeyInbound, KeyOutbound, KeyDispatched, KeyStats)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	identity, err := warehouseToDomain(payloads[KeyWarehouse], now)
	r.logMalformed(err)

	slots, err := slotsToDomain(payloads[KeySlots], now)
	r.logMalformed(err)

	inbound, err := boxesToDomain(KeyInbound, payloads[KeyInbound])
	r.logMalformed(err)

	outbound, err := boxesToDomain(KeyOutbound, payloads[KeyOutbound])
	r.logMalformed(err)

	dispatched, err := boxesToDomain(KeyDispatched, payloads[KeyDispatched])
	r.logMalformed(err)

	stats, err := statsToDomain(payloads[KeyStats])
	r.logMalformed(err)

	aggregate, err := warehouse.RestoreWarehouse(
		identity.ID, identity.Name, slots, inbound, outbound, dispatched, stats)
	if err != nil {
		// Keys that are valid in isolation can still contradict each
		// other, e.g. duplicated positions within a zone. Treat the
		// combination as malformed and start from the identity alone.
		r.logMalformed(errors.Join(ErrMalformedPersistedState, err))
		return warehouse.NewWarehouse(identity.ID, identity.Name)
	}
	return aggregate, nil
}

// Save persists the aggregate across its entity keys and notifies the
// change channel per key.
func (r *GormWarehouseRepository) Save(ctx context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	tx := r.db.WithContext(ctx)
	writes := map[string]any{
		KeyWarehouse:  warehouseFromDomain(aggregate),
		KeySlots:      slotsFromDomain(aggregate.Slots()),
		KeyInbound:    boxesFromDomain(aggregate.Inbound()),
		KeyOutbound:   boxesFromDomain(aggregate.Outbound()),
		KeyDispatched: boxesFromDomain(aggregate.Dispatched()),
		KeyStats:      statsFromDomain(aggregate.Stats()),
	}

	for _, key := range []string{KeyWarehouse, KeySlots, KeyInbound, KeyOutbound, KeyDispatched, KeyStats} {
		if err := upsertRow(tx, key, writes[key]); err != nil {
			return err
		}
		if err := notifyChanged(tx, key); err != nil {
			return err
		}
	}
	return nil
}

func (r *GormWarehouseRepository) logMalformed(err error) {
	if err == nil {
		return
	}
	r.logger.Warn("resetting malformed persisted state", "error", err)
}

func loadPayloads(tx *gorm.DB, keys ...string) (map[string][]byte, error) {
	var rows []StateRow
	if err := tx.Find(&rows, "key IN ?", keys).Error; err != nil {
		return nil, err
	}

	payloads := make(map[string][]byte, len(rows))
	for _, row := range rows {
		payloads[row.Key] = row.Payload
	}
	return payloads, nil
}
