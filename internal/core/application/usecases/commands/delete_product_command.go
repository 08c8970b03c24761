package commands

import (
	"errors"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand removes a product and its inventory from the catalogue.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(productID kernel.ID) (DeleteProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return DeleteProductCommand{}, err
	}

	return DeleteProductCommand{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) ProductID() kernel.ID {
	return c.productID
}
