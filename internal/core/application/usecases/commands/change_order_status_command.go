package commands

import (
	"errors"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand asks for one order to be moved to a new status.
//
// Example:
//
//	status, err := order.ParseStatus("shipped")
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewChangeOrderStatusCommand(kernel.MustNewID("ORD-2023-004"), status)
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates the order id and the target status.
// Any of the five statuses is accepted regardless of the current one.
func NewChangeOrderStatusCommand(orderID kernel.ID, status order.Status) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
