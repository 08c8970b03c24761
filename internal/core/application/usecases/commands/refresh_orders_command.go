package commands

import (
	"errors"

	"storeadmin/internal/pkg/guard"
)

var ErrRefreshOrdersCommandIsNotConstructed = errors.New(
	"RefreshOrdersCommand must be created via NewRefreshOrdersCommand constructor",
)

// RefreshOrdersCommand reloads the order working set from the store.
type RefreshOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewRefreshOrdersCommand() RefreshOrdersCommand {
	return RefreshOrdersCommand{guard: guard.NewConstructorGuard()}
}

func (c RefreshOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRefreshOrdersCommandIsNotConstructed)
}
