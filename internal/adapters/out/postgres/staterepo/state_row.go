// Package staterepo persists the warehouse aggregate and the pending order
// queue as one JSON payload per logical entity key. Each key is normalized
// independently on load: a malformed payload is logged and replaced by the
// entity's default, never merged partially, and never poisons the other keys.
package staterepo

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Logical entity keys within the warehouse_state table.
const (
	KeyWarehouse  = "warehouse"
	KeySlots      = "slots"
	KeyInbound    = "inbound"
	KeyOutbound   = "outbound"
	KeyDispatched = "dispatched"
	KeyOrders     = "orders"
	KeyStats      = "stats"
)

// NotifyChannel is the postgres channel Save notifies after committing a
// state change. The payload is the changed entity key.
const NotifyChannel = "warehouse_state"

// ErrMalformedPersistedState marks a payload that failed normalization.
// Load paths log it and fall back to the entity default; it never escapes
// a repository Get.
var ErrMalformedPersistedState = errors.New("malformed persisted state")

// StateRow is the database shape of one entity key.
type StateRow struct {
	Key       string          `gorm:"primaryKey"`
	Payload   json.RawMessage `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming convention.
func (StateRow) TableName() string {
	return "warehouse_state"
}

func upsertRow(tx *gorm.DB, key string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	row := StateRow{Key: key, Payload: raw, UpdatedAt: time.Now()}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
}

func notifyChanged(tx *gorm.DB, key string) error {
	return tx.Exec("SELECT pg_notify(?, ?)", NotifyChannel, key).Error
}
