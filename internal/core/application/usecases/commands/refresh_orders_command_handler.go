package commands

import (
	"context"
	"fmt"

	"storeadmin/internal/core/ports"
)

// RefreshOrdersCommandHandler replaces the working set with a fresh copy of the
// store. When loading fails the working set keeps its previous contents.
// Entries changed after the snapshot was read keep their newer version.
//
// Example:
//
//	handler := NewRefreshOrdersCommandHandler(orderRepo, orders)
//	n, err := handler.Handle(ctx, NewRefreshOrdersCommand())
type RefreshOrdersCommandHandler struct {
	repo   ports.OrderRepository
	orders ports.OrderWorkingSet
}

func NewRefreshOrdersCommandHandler(repo ports.OrderRepository, orders ports.OrderWorkingSet) RefreshOrdersCommandHandler {
	return RefreshOrdersCommandHandler{repo: repo, orders: orders}
}

// Handle returns the number of orders loaded.
func (h RefreshOrdersCommandHandler) Handle(ctx context.Context, cmd RefreshOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	loaded, err := h.repo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load orders: %w", err)
	}

	h.orders.Load(loaded)
	return len(loaded), nil
}
