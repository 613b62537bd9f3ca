package order

import (
	"errors"
	"fmt"

	"orderdelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderAlreadyIdentified is returned when SetID is called on an order
	// that already carries a persistent identity.
	ErrOrderAlreadyIdentified = errors.New("order already has an identity")
)

// Payment defaults applied when the client omits the fields, matching the
// legacy service contract.
const (
	DefaultPaymentStatus = "PENDING"
	DefaultPaymentMethod = "COD"
)

// Order is the aggregate root for a customer order and its delivery cycle.
//
// Invariants:
//   - status is always one of the six defined Status values
//   - delivererID is nil until a deliverer is assigned; re-assignment
//     overwrites it but never resets the status
//   - details are captured at creation time and immutable afterwards
//   - all status changes other than assignment and the generic amendment go
//     through the transition table
type Order struct {
	id            int64
	userID        int64
	delivererID   *int64
	address       string
	status        Status
	paymentStatus string
	paymentMethod string
	details       []Detail

	isConstructed bool
}

// NewOrder creates a new order in validated initial state. An empty status
// defaults to Pending; a non-empty status is accepted as-is when it is one of
// the defined values (legacy clients may create pre-advanced orders). Empty
// payment fields fall back to the service defaults.
func NewOrder(userID int64, address string, status Status, paymentStatus string, details []Detail) (*Order, error) {
	if status == "" {
		status = Pending
	}
	if paymentStatus == "" {
		paymentStatus = DefaultPaymentStatus
	}

	order := &Order{
		paymentStatus: paymentStatus,
		paymentMethod: DefaultPaymentMethod,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setUserID(userID),
		order.setAddress(address),
		order.setStatus(status),
		order.setDetails(details),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order aggregate from persisted state.
// Used by repositories when rehydrating rows; all invariants are re-checked.
func RestoreOrder(
	id int64,
	userID int64,
	delivererID *int64,
	address string,
	status Status,
	paymentStatus string,
	paymentMethod string,
	details []Detail,
) (*Order, error) {
	order := &Order{
		paymentStatus: paymentStatus,
		paymentMethod: paymentMethod,
		isConstructed: true,
	}

	if err := errors.Join(
		order.SetID(id),
		order.setUserID(userID),
		order.setAddress(address),
		order.setStatus(status),
		order.setDetails(details),
	); err != nil {
		return nil, err
	}

	if delivererID != nil {
		if err := order.setDelivererID(*delivererID); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// Validate ensures the order was created through one of the constructors.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's persistent identity, or 0 before the first insert.
func (o *Order) ID() int64 {
	return o.id
}

// SetID attaches the store-generated identity after the first insert.
// Returns ErrOrderAlreadyIdentified when called twice.
func (o *Order) SetID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a valid order id", id))
	}
	if o.id != 0 {
		return ErrOrderAlreadyIdentified
	}
	o.id = id
	return nil
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() int64 {
	return o.userID
}

// Deliverer returns the assigned deliverer's identifier, or nil if the order
// has not been assigned yet.
func (o *Order) Deliverer() *int64 {
	return o.delivererID
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the payment status field.
func (o *Order) PaymentStatus() string {
	return o.paymentStatus
}

// PaymentMethod returns the payment method field.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Details returns the order lines captured at creation time.
func (o *Order) Details() []Detail {
	return o.details
}

// AssignDeliverer sets the deliverer and forces the status to
// AssignedToDeliverer. This is the designated entry point into the delivery
// workflow: it does not consult the transition table and may be invoked to
// re-assign, in which case the deliverer is overwritten and the status is set
// again without resetting the delivery cycle.
func (o *Order) AssignDeliverer(delivererID int64) error {
	if err := o.setDelivererID(delivererID); err != nil {
		return err
	}

	o.status = AssignedToDeliverer
	return nil
}

// UpdateDeliveryStatus moves the order to target when the (current, target)
// pair is present in the transition table. The deliverer allow-list and the
// ownership check are enforced separately by services.DeliveryPolicy; this
// method restricts only what is reachable from the current state.
func (o *Order) UpdateDeliveryStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ConfirmDelivery advances a Delivered order to DeliveryConfirmed. This is
// triggered exclusively by proof-of-delivery upload; any other current status
// is rejected with an InvalidTransitionError.
func (o *Order) ConfirmDelivery() error {
	if o.status != Delivered {
		return NewInvalidTransitionError(o.status, DeliveryConfirmed)
	}

	o.status = DeliveryConfirmed
	return nil
}

// Amend applies the legacy unconstrained update: address and status are set
// directly, bypassing the transition table for backward compatibility with
// the generic update endpoint. The status value must still be one of the six
// defined values; the closed-enum invariant holds even on this path.
func (o *Order) Amend(address string, status Status) error {
	if err := errors.Join(
		o.setAddress(address),
		status.Validate(),
	); err != nil {
		return err
	}

	o.status = status
	return nil
}

func (o *Order) setUserID(userID int64) error {
	if userID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("userId",
			fmt.Errorf("%d is not a valid user id", userID))
	}
	o.userID = userID
	return nil
}

func (o *Order) setDelivererID(delivererID int64) error {
	if delivererID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivererId",
			fmt.Errorf("%d is not a valid deliverer id", delivererID))
	}
	o.delivererID = &delivererID
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setDetails(details []Detail) error {
	for _, detail := range details {
		if err := detail.Validate(); err != nil {
			return err
		}
	}
	o.details = details
	return nil
}
