package queries

import (
	"errors"
	"strings"
	"time"

	"storeadmin/internal/core/domain/model/customer"
	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/pkg/guard"
)

var ErrListCustomersQueryIsNotConstructed = errors.New(
	"ListCustomersQuery must be created via NewListCustomersQuery constructor",
)

// ListCustomersQuery searches customers by name or email, optionally narrowed
// to one account status.
type ListCustomersQuery struct {
	search string
	status customer.Status
	guard  guard.ConstructorGuard
}

// NewListCustomersQuery accepts an empty status for "all customers".
func NewListCustomersQuery(search string, status string) (ListCustomersQuery, error) {
	q := ListCustomersQuery{search: strings.TrimSpace(search), guard: guard.NewConstructorGuard()}
	if status == "" {
		return q, nil
	}

	parsed, err := customer.ParseStatus(status)
	if err != nil {
		return ListCustomersQuery{}, err
	}
	q.status = parsed
	return q, nil
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

func (q ListCustomersQuery) Search() string {
	return q.search
}

// Status returns the filter, empty when none is set.
func (q ListCustomersQuery) Status() customer.Status {
	return q.status
}

type CustomerRow struct {
	ID            kernel.ID
	Name          string
	Initials      string
	Email         string
	RegisteredAt  time.Time
	TotalSpending kernel.Money
	Status        customer.Status
}

type ListCustomersQueryResponse struct {
	Customers []CustomerRow
	Shown     int
	Total     int
}
