// Package services provides domain services that orchestrate business
// operations across multiple domain entities of the warehouse. It implements
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PositionAllocator: free/reserved position arithmetic for all zones
//   - OrderPlacer: creation-time validation of work orders against occupancy
//     and in-flight reservations
//   - OrderExecutor: execution-time re-validation and zone mutations
//   - AlertDeriver: pure recomputation of the active alert set from store
//     and queue state
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
