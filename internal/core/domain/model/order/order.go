package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// RestoreOrder. This ensures every order in the working set passed ingestion checks.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")
)

// Order is a customer purchase as loaded from the external store.
//
// Order follows these invariants:
//   - Must have a valid identifier and a non-blank customer name
//   - Must have at least one item
//   - Total equals the sum of price*quantity over items (compared in cents)
//   - Status is one of the five valid statuses
//   - Version is never negative; it increases by one on every status change
//
// Status is the only attribute this system changes. Everything else is read-only.
type Order struct {
	id       kernel.ID
	customer string
	placedAt time.Time
	total    kernel.Money
	status   Status
	items    []Item
	version  int64

	isConstructed bool
}

// RestoreOrder rebuilds an order from stored data and enforces all invariants.
// It is the ingestion boundary: rows that fail here never reach the dashboard.
//
// Example:
//
//	headphones, _ := order.NewItem(kernel.MustNewID("1"), "Premium Bluetooth Headphones", 1, kernel.MustNewMoneyFromFloat(199.99))
//	o, err := order.RestoreOrder(
//	    kernel.MustNewID("ORD-2023-001"), "John Smith", placedAt,
//	    kernel.MustNewMoneyFromFloat(199.99), order.Delivered, []order.Item{headphones}, 0,
//	)
func RestoreOrder(
	id kernel.ID,
	customer string,
	placedAt time.Time,
	total kernel.Money,
	status Status,
	items []Item,
	version int64,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setPlacedAt(placedAt),
		o.setStatus(status),
		o.setItems(items),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	if err := o.setTotal(total); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was created through RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) Customer() string {
	return o.customer
}

func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the line items in insertion order.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) Version() int64 {
	return o.version
}

// Clone returns an independent copy. The gateway mutates clones so the
// working-set copy stays untouched until the store confirms the write.
func (o *Order) Clone() *Order {
	c := *o
	c.items = slices.Clone(o.items)
	return &c
}

// ChangeStatus sets a new status and bumps the version.
//
// Any valid status is accepted from any other, including regressions such as
// Delivered -> Pending and re-setting the current status. Only the value itself
// is validated.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	o.version++
	return nil
}

// Matches reports whether term is a case-insensitive substring of the order id
// or the customer name. An empty term matches every order.
func (o *Order) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.id.String()), term) ||
		strings.Contains(strings.ToLower(o.customer), term)
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer string) error {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = customer
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.placedAt = placedAt
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setVersion(version int64) error {
	if version < 0 {
		return errs.NewValueIsInvalidErrorWithCause("version is invalid", fmt.Errorf("%d is negative", version))
	}
	o.version = version
	return nil
}

// setTotal must run after setItems.
func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}

	sum := kernel.ZeroMoney()
	for _, item := range o.items {
		sum = sum.Add(item.LineTotal())
	}
	if !sum.Equal(total) {
		return errs.NewValueIsInvalidErrorWithCause(
			"total is invalid",
			fmt.Errorf("total %s does not match items sum %s", total, sum),
		)
	}

	o.total = total
	return nil
}
