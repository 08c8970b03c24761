package queries

import (
	"errors"
	"strings"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/product"
	"storeadmin/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery searches the catalogue by name or category.
type ListProductsQuery struct {
	search string
	guard  guard.ConstructorGuard
}

func NewListProductsQuery(search string) ListProductsQuery {
	return ListProductsQuery{search: strings.TrimSpace(search), guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) Search() string {
	return q.search
}

// ProductRow is one line of the products table.
type ProductRow struct {
	ID           kernel.ID
	Name         string
	Description  string
	Price        kernel.Money
	Quantity     int
	Category     string
	Image        string
	Availability product.Availability
	LowStock     bool
}

type ListProductsQueryResponse struct {
	Products []ProductRow
	Shown    int
	Total    int
}
