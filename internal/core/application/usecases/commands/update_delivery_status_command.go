package commands

import (
	"errors"
	"fmt"

	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/pkg/errs"
	"orderdelivery/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand is a deliverer's request to advance an order's
// delivery status. The requested target is subject to two independent gates:
// the deliverer allow-list (services.DeliveryPolicy) and the transition table
// (order.Status).
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	delivererID int64
	target      order.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a validated status-update command.
// The target must be one of the defined status values; whether a deliverer
// may request it, and whether it is reachable, is decided by the handler.
func NewUpdateDeliveryStatusCommand(orderID, delivererID int64, target order.Status) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDelivererID(delivererID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateDeliveryStatusCommand) OrderID() int64 {
	return c.orderID
}

// DelivererID returns the acting deliverer's identifier.
func (c UpdateDeliveryStatusCommand) DelivererID() int64 {
	return c.delivererID
}

// Target returns the requested status.
func (c UpdateDeliveryStatusCommand) Target() order.Status {
	return c.target
}

func (c *UpdateDeliveryStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a valid order id", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setDelivererID(delivererID int64) error {
	if delivererID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivererId",
			fmt.Errorf("%d is not a valid deliverer id", delivererID))
	}
	c.delivererID = delivererID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
