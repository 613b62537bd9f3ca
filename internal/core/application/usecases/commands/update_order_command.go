package commands

import (
	"errors"
	"fmt"

	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/pkg/errs"
	"orderdelivery/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand is the legacy generic order update: address and status
// are set directly, without consulting the transition table. Kept for
// backward compatibility with existing clients; the status value must still
// be one of the defined enum members.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	address string
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a validated generic-update command.
func NewUpdateOrderCommand(orderID int64, address string, status order.Status) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		address: address,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// Address returns the new delivery address.
func (c UpdateOrderCommand) Address() string {
	return c.address
}

// Status returns the new status.
func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a valid order id", orderID))
	}
	c.orderID = orderID
	return nil
}
