// Package services provides domain services that have no natural home on a
// single aggregate.
//
// The package includes:
//   - StatusProjector: maps an order status to its badge and progress descriptors
//
// Projections are pure. They never touch the store, the working set or the clock.
package services
