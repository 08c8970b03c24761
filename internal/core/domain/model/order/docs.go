// Package order provides the Order aggregate of the store admin dashboard and its
// closed status lifecycle.
//
// The package includes:
//   - Order: an order loaded from the external store. Only its status is mutable here.
//   - Item: a denormalized snapshot of one product line (name and price frozen at order time)
//   - Status: the closed five-value lifecycle tag
//
// Key business rules:
//   - Exactly five statuses exist: pending, processing, shipped, delivered, cancelled
//   - Unknown strings are rejected by ParseStatus, never rendered
//   - Position orders pending < processing < shipped < delivered; cancelled sits off the path (-1)
//   - No transition graph is enforced: any status may be set from any other
//   - An order's total must equal the sum of price*quantity over its items
package order
