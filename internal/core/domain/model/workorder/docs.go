// Package workorder defines the WorkOrder aggregate: a pending request to
// move or review a box, created by one role and fulfilled by another.
//
// A work order lives in exactly two states. It is pending from the moment it
// is created and is removed from the queue the instant it executes; there is
// no stored "executed" record and no cancelled state. The order holds only a
// reference to its source box (zone and position), never a copy, so the
// engine re-resolves the box from the zone store at execution time — the box
// may have been moved or removed since the order was created, and that race
// is expected and handled.
package workorder
