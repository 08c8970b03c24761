package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storeadmin/internal/core/domain/model/notification"
	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/core/ports"
	"storeadmin/internal/pkg/errs"
	"storeadmin/internal/pkg/keylock"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "storeadmin/internal/core/application/usecases/commands"

// ChangeOrderStatusCommandHandler is the only path through which an order's
// status changes.
//
// For a given command it:
//  1. looks the order up in the working set and fails fast with
//     errs.ObjectNotFoundError when it is not there (no store call, no notification)
//  2. writes the new status to the store, guarded by the version it read
//  3. on success replaces the working-set entry, sends one success notification,
//     drops the cached dashboard summary and publishes an order.StatusChangedEvent
//  4. on failure leaves the working set alone, sends one failure notification
//     carrying the store error and returns that error wrapped
//
// Changes to the same order are serialized. Changes to different orders run
// concurrently.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, orders, notifier, publisher, summary, logger)
//	cmd, _ := NewChangeOrderStatusCommand(kernel.MustNewID("ORD-2023-004"), order.Shipped)
//
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order, nothing happened
//	case errors.Is(err, errs.ErrVersionIsInvalid):
//	    // someone else changed the order first
//	case err != nil:
//	    // store failure, already notified
//	default:
//	    fmt.Println(updated.Status()) // shipped
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	orders     ports.OrderWorkingSet
	notifier   ports.Notifier
	publisher  ports.EventPublisher
	summary    ports.SummaryInvalidator
	locks      *keylock.KeyLock
	logger     *slog.Logger

	tracer      trace.Tracer
	transitions metric.Int64Counter
	now         func() time.Time
}

// NewChangeOrderStatusCommandHandler wires the gateway. publisher and summary
// may be nil, in which case no events are published and no cache is dropped.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	orders ports.OrderWorkingSet,
	notifier ports.Notifier,
	publisher ports.EventPublisher,
	summary ports.SummaryInvalidator,
	logger *slog.Logger,
) *ChangeOrderStatusCommandHandler {
	logger = logger.With("component", "ChangeOrderStatusCommandHandler")

	transitions, err := otel.Meter(instrumentationName).Int64Counter(
		"storeadmin.order.status_transitions",
		metric.WithDescription("Order status change attempts by target status and result"),
	)
	if err != nil {
		logger.Warn("failed to create transitions counter", "error", err)
		transitions = noop.Int64Counter{}
	}

	return &ChangeOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		orders:      orders,
		notifier:    notifier,
		publisher:   publisher,
		summary:     summary,
		locks:       keylock.New(),
		logger:      logger,
		tracer:      otel.Tracer(instrumentationName),
		transitions: transitions,
		now:         time.Now,
	}
}

// Handle applies the command and returns the updated order.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orderID := cmd.OrderID()
	status := cmd.Status()

	ctx, span := h.tracer.Start(ctx, "ChangeOrderStatus", trace.WithAttributes(
		attribute.String("order.id", orderID.String()),
		attribute.String("order.status", status.String()),
	))
	defer span.End()

	unlock := h.locks.Lock(orderID.String())
	defer unlock()

	current, ok := h.orders.Get(orderID)
	if !ok {
		err := errs.NewObjectNotFoundError("orderId", orderID)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	updated := current.Clone()
	if err := updated.ChangeStatus(status); err != nil {
		return nil, err
	}

	if err := h.persist(ctx, updated, current.Version()); err != nil {
		h.fail(ctx, span, updated, err)
		return nil, fmt.Errorf("update status of order %s: %w", orderID, err)
	}

	h.orders.Replace(updated)
	h.succeed(ctx, current, updated)

	return updated.Clone(), nil
}

func (h *ChangeOrderStatusCommandHandler) persist(ctx context.Context, updated *order.Order, expectedVersion int64) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().UpdateStatus(ctx, updated.ID(), updated.Status(), expectedVersion); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *ChangeOrderStatusCommandHandler) succeed(ctx context.Context, before, after *order.Order) {
	h.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", after.Status().String()),
		attribute.String("result", "success"),
	))

	h.notifier.Notify(ctx, notification.NewSuccess(
		"Order status updated",
		fmt.Sprintf("Order %s is now %s", after.ID(), after.Status()),
		h.now(),
	))

	h.logger.InfoContext(ctx, "order status changed",
		"orderId", after.ID().String(),
		"from", before.Status().String(),
		"to", after.Status().String(),
		"version", after.Version(),
	)

	invalidateSummary(ctx, h.summary, h.logger)

	if h.publisher == nil {
		return
	}
	event := order.NewStatusChangedEvent(after, before.Status(), h.now())
	if err := h.publisher.PublishStatusChanged(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish status change",
			"orderId", after.ID().String(),
			"error", err,
		)
	}
}

func (h *ChangeOrderStatusCommandHandler) fail(ctx context.Context, span trace.Span, attempted *order.Order, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	h.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("status", attempted.Status().String()),
		attribute.String("result", "failure"),
	))

	h.notifier.Notify(ctx, notification.NewFailure(
		"Failed to update order status",
		fmt.Sprintf("Order %s could not be set to %s", attempted.ID(), attempted.Status()),
		err,
		h.now(),
	))

	h.logger.ErrorContext(ctx, "failed to change order status",
		"orderId", attempted.ID().String(),
		"status", attempted.Status().String(),
		"error", err,
	)
}
