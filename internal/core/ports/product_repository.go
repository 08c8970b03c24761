package ports

import (
	"context"

	"storeadmin/internal/core/domain/model/kernel"
)

// ProductRepository is the write side of the product catalogue. Listing goes
// through the product query, which filters in SQL.
type ProductRepository interface {
	// Delete removes the product and its inventory row.
	// Returns errs.ObjectNotFoundError when the product does not exist.
	Delete(ctx context.Context, id kernel.ID) error
}
