// Package warehouse defines the Warehouse aggregate: the zone store owning
// all box data across the three zones (Inbound, Storage, Outbound), the
// Dispatched archive, and the running stats counters.
//
// The aggregate is the single owner of box data while a box is located in a
// zone. Mutations are fine-grained and atomic — each either fully applies or
// returns a typed error leaving the aggregate untouched; removing a box that
// is not there is an error reported to the caller, never a silent no-op.
// All cross-entity rules (reservations, duplicate-pending-work checks,
// execution-time re-validation) live in the order engine services, which
// drive the aggregate through these operations.
package warehouse
