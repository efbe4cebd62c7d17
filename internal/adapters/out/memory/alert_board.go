// Package memory holds in-process adapters: the alert board (derived
// state, rebuilt from store state on every sweep) and the seeded user
// directory.
package memory

import (
	"sync"

	"coldstore/internal/core/domain/model/alert"
)

// AlertBoard is the in-process implementation of ports.AlertBoard. Alerts
// are derived state: the sweep replaces the whole set each tick and nothing
// survives a restart.
type AlertBoard struct {
	mu     sync.RWMutex
	alerts []alert.Alert
}

// NewAlertBoard creates an empty board.
func NewAlertBoard() *AlertBoard {
	return &AlertBoard{}
}

// List returns the active alerts in feed order.
func (b *AlertBoard) List() []alert.Alert {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]alert.Alert(nil), b.alerts...)
}

// Get looks an alert up by its stable id.
func (b *AlertBoard) Get(id string) (alert.Alert, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, a := range b.alerts {
		if a.ID() == id {
			return a, true
		}
	}
	return alert.Alert{}, false
}

// Replace swaps the whole set atomically.
func (b *AlertBoard) Replace(alerts []alert.Alert) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.alerts = append([]alert.Alert(nil), alerts...)
}

// Upsert inserts or overwrites one alert by id.
func (b *AlertBoard) Upsert(a alert.Alert) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.alerts {
		if b.alerts[i].ID() == a.ID() {
			b.alerts[i] = a
			return
		}
	}
	b.alerts = append(b.alerts, a)
}

// Remove resolves an alert. Returns false for an unknown id.
func (b *AlertBoard) Remove(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.alerts {
		if b.alerts[i].ID() == id {
			b.alerts = append(b.alerts[:i], b.alerts[i+1:]...)
			return true
		}
	}
	return false
}
