package ports

import (
	"coldstore/internal/core/domain/model/alert"
)

// AlertBoard holds the active alert set. The set is derived state: the
// sweep replaces it wholesale each tick, so the board is never persisted
// and starts empty on boot.
type AlertBoard interface {
	// List returns the active alerts in feed order.
	List() []alert.Alert

	// Get looks an alert up by its stable id.
	Get(id string) (alert.Alert, bool)

	// Replace swaps the whole set atomically.
	Replace(alerts []alert.Alert)

	// Upsert inserts or overwrites one alert by id.
	Upsert(a alert.Alert)

	// Remove resolves an alert. Returns false for an unknown id.
	Remove(id string) bool
}
