package product

import (
	"errors"
	"fmt"
	"strings"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/pkg/errs"
)

// DefaultLowStockThreshold is the stock level below which a product is flagged.
const DefaultLowStockThreshold = 10

// UncategorizedCategory replaces an empty category coming from the store.
const UncategorizedCategory = "Uncategorized"

// ErrProductIsNotConstructed is returned when a Product did not come from RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via RestoreProduct constructor")

// Availability says whether a product is offered in the storefront.
type Availability string

const (
	Active   Availability = "active"
	Inactive Availability = "inactive"
)

// AvailabilityFromInStock maps the store's in_stock flag.
func AvailabilityFromInStock(inStock bool) Availability {
	if inStock {
		return Active
	}
	return Inactive
}

// Product is a catalogue entry joined with its inventory quantity.
type Product struct {
	id           kernel.ID
	name         string
	description  string
	price        kernel.Money
	quantity     int
	category     string
	image        string
	availability Availability

	isConstructed bool
}

// Attributes carries the optional descriptive fields of a product.
type Attributes struct {
	Description string
	Category    string
	Image       string
}

// RestoreProduct rebuilds a product from stored data.
// A missing category becomes UncategorizedCategory.
func RestoreProduct(
	id kernel.ID,
	name string,
	price kernel.Money,
	quantity int,
	availability Availability,
	attrs Attributes,
) (*Product, error) {
	p := &Product{
		description:   strings.TrimSpace(attrs.Description),
		image:         strings.TrimSpace(attrs.Image),
		category:      strings.TrimSpace(attrs.Category),
		isConstructed: true,
	}
	if p.category == "" {
		p.category = UncategorizedCategory
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setQuantity(quantity),
		p.setAvailability(availability),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.ID              { return p.id }
func (p *Product) Name() string               { return p.name }
func (p *Product) Description() string        { return p.description }
func (p *Product) Price() kernel.Money        { return p.price }
func (p *Product) Quantity() int              { return p.quantity }
func (p *Product) Category() string           { return p.category }
func (p *Product) Image() string              { return p.image }
func (p *Product) Availability() Availability { return p.availability }

// IsLowStock reports whether the quantity is strictly below threshold.
func (p *Product) IsLowStock(threshold int) bool {
	return p.quantity < threshold
}

// Matches reports whether term is a case-insensitive substring of the name or
// the category.
func (p *Product) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.name), term) ||
		strings.Contains(strings.ToLower(p.category), term)
}

func (p *Product) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is negative", quantity))
	}
	p.quantity = quantity
	return nil
}

func (p *Product) setAvailability(a Availability) error {
	if a != Active && a != Inactive {
		return errs.NewValueIsInvalidErrorWithCause("availability is invalid", fmt.Errorf("%q is not active or inactive", a))
	}
	p.availability = a
	return nil
}
