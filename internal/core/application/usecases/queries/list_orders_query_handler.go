package queries

import (
	"context"

	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/core/domain/services"
	"storeadmin/internal/core/ports"
)

// ListOrdersQueryHandler serves the orders table from the working set.
// Matching is a case-insensitive substring test on id or customer and keeps
// the working-set order.
type ListOrdersQueryHandler struct {
	orders    ports.OrderWorkingSet
	projector services.StatusProjector
}

func NewListOrdersQueryHandler(orders ports.OrderWorkingSet, projector services.StatusProjector) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders, projector: projector}
}

func (h ListOrdersQueryHandler) Handle(_ context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	all := h.orders.List()
	tab, hasTab := query.Status()

	resp := ListOrdersQueryResponse{
		Orders:       make([]OrderSummary, 0, len(all)),
		Total:        len(all),
		StatusCounts: make(map[order.Status]int),
	}

	for _, o := range all {
		if !o.Matches(query.Search()) {
			continue
		}
		resp.Shown++
		resp.StatusCounts[o.Status()]++

		if hasTab && o.Status() != tab {
			continue
		}

		badge, err := h.projector.Describe(o.Status())
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}
		resp.Orders = append(resp.Orders, OrderSummary{
			ID:        o.ID(),
			Customer:  o.Customer(),
			PlacedAt:  o.PlacedAt(),
			Total:     o.Total(),
			Status:    o.Status(),
			Badge:     badge,
			ItemCount: len(o.Items()),
			Version:   o.Version(),
		})
	}

	return resp, nil
}
