package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"coldstore/internal/core/domain/model/alert"
	"coldstore/internal/core/domain/model/kernel"
	"coldstore/internal/core/domain/model/warehouse"
	"coldstore/internal/core/domain/model/workorder"
)

const (
	// TemperatureLimit is the threshold in °C above which a box is flagged.
	TemperatureLimit = 5.0

	// OverdueThreshold is the age past which a pending order is flagged.
	OverdueThreshold = 2 * time.Minute
)

// AlertDeriver recomputes the active alert set from the zone store and the
// pending order queue. Derivation is a pure function of its inputs: the set
// is rebuilt from causes every tick, previous alerts are reused by id so an
// attached reason survives, and alerts whose cause disappeared drop out.
// Manually filed failure reports are the exception, carried until resolved.
type AlertDeriver struct{}

// NewAlertDeriver creates a new AlertDeriver instance.
func NewAlertDeriver() AlertDeriver {
	return AlertDeriver{}
}

// Derive returns the next active alert set: at most one aggregate
// temperature alert, one alert per overdue order (oldest first), then any
// carried failure reports.
func (d AlertDeriver) Derive(
	w *warehouse.Warehouse,
	pending []*workorder.WorkOrder,
	previous []alert.Alert,
	now time.Time,
) []alert.Alert {
	prior := make(map[string]alert.Alert, len(previous))
	for _, a := range previous {
		prior[a.ID()] = a
	}

	next := make([]alert.Alert, 0, len(previous)+1)

	if description := d.describeHotBoxes(w); description != "" {
		if existing, ok := prior[alert.TemperatureAlertID]; ok {
			next = append(next, existing.WithDescription(description))
		} else {
			next = append(next, alert.NewTemperatureAlert(description))
		}
	}

	for _, order := range d.overdue(pending, now) {
		description := fmt.Sprintf("%s, pending since %s", order.Describe(), order.CreatedAt())
		if existing, ok := prior[alert.OrderAlertID(order.ID())]; ok {
			next = append(next, existing.WithDescription(description))
		} else {
			next = append(next, alert.NewOverdueOrderAlert(order.ID(), description))
		}
	}

	for _, a := range previous {
		if a.IsFailureReport() {
			next = append(next, a)
		}
	}

	return next
}

// describeHotBoxes lists every box above the temperature limit across all
// three zones, or returns "" when none is.
func (d AlertDeriver) describeHotBoxes(w *warehouse.Warehouse) string {
	var hot []string

	for _, b := range w.Inbound() {
		if b.Temperature() > TemperatureLimit {
			hot = append(hot, fmt.Sprintf("%s at %s %d (%.1f°C)",
				b.AutoID(), kernel.ZoneInbound, b.Position(), b.Temperature()))
		}
	}
	for _, slot := range w.Slots() {
		temperature := slot.Temperature()
		if slot.IsOccupied() && temperature != nil && *temperature > TemperatureLimit {
			hot = append(hot, fmt.Sprintf("%s at %s %d (%.1f°C)",
				slot.AutoID(), kernel.ZoneStorage, slot.Position(), *temperature))
		}
	}
	for _, b := range w.Outbound() {
		if b.Temperature() > TemperatureLimit {
			hot = append(hot, fmt.Sprintf("%s at %s %d (%.1f°C)",
				b.AutoID(), kernel.ZoneOutbound, b.Position(), b.Temperature()))
		}
	}

	if len(hot) == 0 {
		return ""
	}
	return "Above " + fmt.Sprintf("%.0f", TemperatureLimit) + "°C: " + strings.Join(hot, "; ")
}

func (d AlertDeriver) overdue(pending []*workorder.WorkOrder, now time.Time) []*workorder.WorkOrder {
	overdue := make([]*workorder.WorkOrder, 0, len(pending))
	for _, order := range pending {
		if order.Age(now) >= OverdueThreshold {
			overdue = append(overdue, order)
		}
	}
	sort.SliceStable(overdue, func(i, j int) bool {
		return overdue[i].CreatedAtEpochMs() < overdue[j].CreatedAtEpochMs()
	})
	return overdue
}
