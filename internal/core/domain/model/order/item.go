package order

import (
	"errors"
	"fmt"
	"strings"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/pkg/errs"
	"storeadmin/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item did not come from NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one product line of an order. Name and unit price are snapshots taken
// at order time and do not follow later catalogue changes.
type Item struct { //nolint:recvcheck //using for validation
	productID   kernel.ID
	productName string
	quantity    int
	price       kernel.Money

	guard guard.ConstructorGuard
}

// NewItem validates a line item.
//
// Rules:
//   - productID must be a constructed ID
//   - productName must not be blank
//   - quantity must be positive
//   - price must be a constructed (non-negative) Money
func NewItem(productID kernel.ID, productName string, quantity int, price kernel.Money) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ProductID() kernel.ID {
	return i.productID
}

func (i Item) ProductName() string {
	return i.productName
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) Price() kernel.Money {
	return i.price
}

// LineTotal is price * quantity.
func (i Item) LineTotal() kernel.Money {
	return i.price.Mul(i.quantity)
}

func (i *Item) setProductID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.productID = id
	return nil
}

func (i *Item) setProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	i.productName = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}
