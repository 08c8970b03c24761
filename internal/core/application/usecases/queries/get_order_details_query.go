package queries

import (
	"errors"
	"time"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/core/domain/services"
	"storeadmin/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery loads everything the order dialog shows.
type GetOrderDetailsQuery struct {
	orderID kernel.ID
	guard   guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(orderID kernel.ID) (GetOrderDetailsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailsQuery{}, err
	}
	return GetOrderDetailsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) OrderID() kernel.ID {
	return q.orderID
}

// OrderLine is an item row with its computed line total.
type OrderLine struct {
	ProductID   kernel.ID
	ProductName string
	Quantity    int
	Price       kernel.Money
	LineTotal   kernel.Money
}

type GetOrderDetailsQueryResponse struct {
	ID       kernel.ID
	Customer string
	PlacedAt time.Time
	Total    kernel.Money
	Status   order.Status
	Version  int64
	Badge    services.Badge
	Progress services.Progress
	Lines    []OrderLine
}
