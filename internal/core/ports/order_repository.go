// Package ports defines the contracts between the application core and its
// adapters: the external store, the event bus, the notification sink and the
// in-memory order working set.
package ports

import (
	"context"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/order"
)

// OrderRepository is the order store collaborator.
type OrderRepository interface {
	// GetAll loads every order joined with its items, oldest first.
	// A row that fails domain validation fails the whole call: the caller
	// keeps whatever it had rather than showing a partial list.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// UpdateStatus writes the status column of a single order and bumps its
	// version, provided the stored version still equals expectedVersion.
	//
	// Returns errs.ObjectNotFoundError when no such order exists and
	// errs.VersionIsInvalidError when another writer got there first.
	// No other column is touched.
	UpdateStatus(ctx context.Context, id kernel.ID, status order.Status, expectedVersion int64) error
}
