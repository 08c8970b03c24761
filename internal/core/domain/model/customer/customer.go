// Package customer holds the read-only customer record shown on the customers screen.
package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/pkg/errs"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via RestoreCustomer constructor")

// Status is the account standing of a customer.
type Status string

const (
	Active Status = "active"
	Banned Status = "banned"
)

// ParseStatus accepts "active" or "banned".
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case Active, Banned:
		return Status(s), nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("customer status is invalid", fmt.Errorf("%q is not active or banned", s))
}

type Customer struct {
	id            kernel.ID
	name          string
	email         string
	registeredAt  time.Time
	totalSpending kernel.Money
	status        Status

	isConstructed bool
}

func RestoreCustomer(
	id kernel.ID,
	name, email string,
	registeredAt time.Time,
	totalSpending kernel.Money,
	status Status,
) (*Customer, error) {
	c := &Customer{
		registeredAt:  registeredAt,
		isConstructed: true,
	}

	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if c.name = strings.TrimSpace(name); c.name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customer name"))
	}
	if c.email = strings.TrimSpace(email); !strings.Contains(c.email, "@") {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("email is invalid", fmt.Errorf("%q has no @", c.email)))
	}
	if err := totalSpending.Validate(); err != nil {
		errList = append(errList, err)
	}
	if _, err := ParseStatus(string(status)); err != nil {
		errList = append(errList, err)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	c.id = id
	c.totalSpending = totalSpending
	c.status = status
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.ID               { return c.id }
func (c *Customer) Name() string                { return c.name }
func (c *Customer) Email() string               { return c.email }
func (c *Customer) RegisteredAt() time.Time     { return c.registeredAt }
func (c *Customer) TotalSpending() kernel.Money { return c.totalSpending }
func (c *Customer) Status() Status              { return c.status }

// Initials returns the upper-cased first letter of every word in the name.
func (c *Customer) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(c.name) {
		b.WriteString(strings.ToUpper(string([]rune(word)[0])))
	}
	return b.String()
}

// Matches reports whether term is a case-insensitive substring of the name or the email.
func (c *Customer) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.name), term) ||
		strings.Contains(strings.ToLower(c.email), term)
}
