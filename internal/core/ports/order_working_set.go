package ports

import (
	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/order"
)

// OrderWorkingSet is the in-memory copy of the order list that every screen
// reads from. Implementations must be safe for concurrent use.
type OrderWorkingSet interface {
	// Load replaces the whole set, keeping the store's order. Entries whose
	// local version is ahead of the loaded one are kept as they are.
	Load(orders []*order.Order)

	// Get returns the order with the given id.
	Get(id kernel.ID) (*order.Order, bool)

	// List returns every order in load order.
	List() []*order.Order

	// Replace swaps an existing entry for o. It reports false, and changes
	// nothing, when the id is not in the set.
	Replace(o *order.Order) bool
}
