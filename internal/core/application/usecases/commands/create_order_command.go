package commands

import (
	"errors"
	"fmt"

	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/pkg/errs"
	"orderdelivery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create an order together with
// its detail lines. Prices on the lines are snapshots taken by the caller at
// creation time.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID        int64
	address       string
	status        order.Status
	paymentStatus string
	details       []order.Detail

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated order-creation command.
// Details must each have been built via order.NewDetail.
func NewCreateOrderCommand(userID int64, address string, status order.Status, paymentStatus string, details []order.Detail) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		address:       address,
		status:        status,
		paymentStatus: paymentStatus,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setDetails(details),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the owning user's identifier.
func (c CreateOrderCommand) UserID() int64 {
	return c.userID
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Status returns the requested initial status (may be empty for the default).
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// PaymentStatus returns the requested payment status (may be empty for the
// default).
func (c CreateOrderCommand) PaymentStatus() string {
	return c.paymentStatus
}

// Details returns the order lines.
func (c CreateOrderCommand) Details() []order.Detail {
	return c.details
}

func (c *CreateOrderCommand) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("userId",
			fmt.Errorf("%d is not a valid user id", userID))
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setDetails(details []order.Detail) error {
	for _, detail := range details {
		if err := detail.Validate(); err != nil {
			return err
		}
	}
	c.details = details
	return nil
}
