// Package queries contains read operations. Order reads are served from the
// in-memory working set; catalogue, customer and dashboard reads go to the store.
package queries

import (
	"errors"
	"strings"
	"time"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/core/domain/services"
	"storeadmin/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery filters the order list the way the orders screen does: a
// free-text search over order id and customer name, then an optional status tab.
//
// Example:
//
//	query, _ := NewListOrdersQuery("smith", nil)
//	resp, _ := handler.Handle(ctx, query)
//	fmt.Printf("Showing %d of %d orders\n", resp.Shown, resp.Total)
type ListOrdersQuery struct {
	search string
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates the optional status filter. A nil status means
// the "all orders" tab.
func NewListOrdersQuery(search string, status *order.Status) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		s := *status
		status = &s
	}

	return ListOrdersQuery{
		search: strings.TrimSpace(search),
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Search() string {
	return q.search
}

// Status returns the tab filter and whether one is set.
func (q ListOrdersQuery) Status() (order.Status, bool) {
	if q.status == nil {
		return order.Unknown, false
	}
	return *q.status, true
}

// OrderSummary is one row of the orders table.
type OrderSummary struct {
	ID        kernel.ID
	Customer  string
	PlacedAt  time.Time
	Total     kernel.Money
	Status    order.Status
	Badge     services.Badge
	ItemCount int
	Version   int64
}

// ListOrdersQueryResponse carries the rows plus the counters shown around the table.
type ListOrdersQueryResponse struct {
	Orders []OrderSummary
	// Shown counts orders matching the search, before the status tab applies.
	Shown int
	// Total counts every order in the working set.
	Total int
	// StatusCounts counts search matches per status.
	StatusCounts map[order.Status]int
}
