package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"storeadmin/internal/core/domain/model/notification"
	"storeadmin/internal/core/ports"
	"storeadmin/internal/pkg/errs"
)

// DeleteProductCommandHandler deletes a product together with its inventory row
// in one transaction and reports the outcome as a notification.
//
// Unknown products are reported to the caller without a notification. A
// successful delete drops the cached dashboard summary.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
	notifier   ports.Notifier
	summary    ports.SummaryInvalidator
	logger     *slog.Logger
	now        func() time.Time
}

func NewDeleteProductCommandHandler(
	uowFactory ProductUoWFactory,
	notifier ports.Notifier,
	summary ports.SummaryInvalidator,
	logger *slog.Logger,
) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		summary:    summary,
		logger:     logger.With("component", "DeleteProductCommandHandler"),
		now:        time.Now,
	}
}

func (h DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.delete(ctx, cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if err != nil {
		h.notifier.Notify(ctx, notification.NewFailure(
			"Failed to delete product",
			fmt.Sprintf("Product %s could not be removed", cmd.ProductID()),
			err,
			h.now(),
		))
		h.logger.ErrorContext(ctx, "failed to delete product", "productId", cmd.ProductID().String(), "error", err)
		return fmt.Errorf("delete product %s: %w", cmd.ProductID(), err)
	}

	h.notifier.Notify(ctx, notification.NewSuccess(
		"Product deleted",
		"The product has been removed from the system",
		h.now(),
	))
	h.logger.InfoContext(ctx, "product deleted", "productId", cmd.ProductID().String())
	invalidateSummary(ctx, h.summary, h.logger)
	return nil
}

func (h DeleteProductCommandHandler) delete(ctx context.Context, cmd DeleteProductCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
