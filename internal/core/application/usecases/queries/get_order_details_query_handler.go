package queries

import (
	"context"

	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/core/domain/services"
	"storeadmin/internal/core/ports"
	"storeadmin/internal/pkg/errs"
)

// GetOrderDetailsQueryHandler reads one order from the working set and
// projects its status.
type GetOrderDetailsQueryHandler struct {
	orders    ports.OrderWorkingSet
	projector services.StatusProjector
}

func NewGetOrderDetailsQueryHandler(orders ports.OrderWorkingSet, projector services.StatusProjector) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{orders: orders, projector: projector}
}

// Handle returns errs.ObjectNotFoundError for ids outside the working set.
func (h GetOrderDetailsQueryHandler) Handle(_ context.Context, query GetOrderDetailsQuery) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	o, ok := h.orders.Get(query.OrderID())
	if !ok {
		return GetOrderDetailsQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return h.Describe(o)
}

// Describe builds the details view of o without consulting the working set.
// The status gateway's result goes through here so the response reflects
// exactly what was committed.
func (h GetOrderDetailsQueryHandler) Describe(o *order.Order) (GetOrderDetailsQueryResponse, error) {
	badge, err := h.projector.Describe(o.Status())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	progress, err := h.projector.Progress(o.Status())
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	items := o.Items()
	lines := make([]OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, OrderLine{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			Price:       item.Price(),
			LineTotal:   item.LineTotal(),
		})
	}

	return GetOrderDetailsQueryResponse{
		ID:       o.ID(),
		Customer: o.Customer(),
		PlacedAt: o.PlacedAt(),
		Total:    o.Total(),
		Status:   o.Status(),
		Version:  o.Version(),
		Badge:    badge,
		Progress: progress,
		Lines:    lines,
	}, nil
}
