package commands

import (
	"errors"
	"fmt"

	"orderdelivery/internal/pkg/errs"
	"orderdelivery/internal/pkg/guard"
)

var ErrAssignDelivererCommandIsNotConstructed = errors.New(
	"AssignDelivererCommand must be created via NewAssignDelivererCommand constructor",
)

// AssignDelivererCommand requests that a deliverer be assigned to an order.
// Assignment is the designated entry point into the delivery workflow: it
// may be issued for any order regardless of its current status, and issuing
// it again re-assigns the order without resetting the delivery cycle.
type AssignDelivererCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	delivererID int64

	guard guard.ConstructorGuard
}

// NewAssignDelivererCommand creates a validated assignment command.
func NewAssignDelivererCommand(orderID, delivererID int64) (AssignDelivererCommand, error) {
	cmd := AssignDelivererCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDelivererID(delivererID),
	); err != nil {
		return AssignDelivererCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDelivererCommand) Validate() error {
	return c.guard.Validate(ErrAssignDelivererCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AssignDelivererCommand) OrderID() int64 {
	return c.orderID
}

// DelivererID returns the deliverer to assign.
func (c AssignDelivererCommand) DelivererID() int64 {
	return c.delivererID
}

func (c *AssignDelivererCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a valid order id", orderID))
	}
	c.orderID = orderID
	return nil
}

func (c *AssignDelivererCommand) setDelivererID(delivererID int64) error {
	if delivererID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivererId",
			fmt.Errorf("%d is not a valid deliverer id", delivererID))
	}
	c.delivererID = delivererID
	return nil
}
