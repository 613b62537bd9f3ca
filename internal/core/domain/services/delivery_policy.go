package services

import (
	"errors"
	"fmt"

	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/pkg/errs"
)

// ErrOrderNotAssignedToDeliverer is returned when a deliverer acts on an
// order that is not currently assigned to them.
var ErrOrderNotAssignedToDeliverer = errors.New("order is not assigned to this deliverer")

// DeliveryPolicy decides which lifecycle operations a deliverer may request.
// It enforces two rules:
//
//   - ownership: a deliverer may only act on orders currently assigned to them
//   - allow-list: a deliverer may only request OUT_FOR_DELIVERY, DELIVERED,
//     or FAILED as a target status
//
// The allow-list is checked independently from the transition table; a target
// can be rejected here even when the table would permit it from the current
// state, and vice versa.
type DeliveryPolicy struct{}

// NewDeliveryPolicy creates a DeliveryPolicy.
func NewDeliveryPolicy() DeliveryPolicy {
	return DeliveryPolicy{}
}

// delivererSettableStatuses returns the statuses a deliverer may request.
// Assignment and confirmation have dedicated operations and are excluded.
func delivererSettableStatuses() map[order.Status]struct{} {
	return map[order.Status]struct{}{
		order.OutForDelivery: {},
		order.Delivered:      {},
		order.Failed:         {},
	}
}

// AuthorizeActor verifies that the order is currently assigned to the given
// deliverer. Returns ErrOrderNotAssignedToDeliverer on mismatch or when the
// order has no deliverer at all.
func (DeliveryPolicy) AuthorizeActor(o *order.Order, delivererID int64) error {
	if err := o.Validate(); err != nil {
		return err
	}

	assigned := o.Deliverer()
	if assigned == nil || *assigned != delivererID {
		return ErrOrderNotAssignedToDeliverer
	}
	return nil
}

// ValidateRequestedStatus checks the target status against the deliverer
// allow-list. The transition table is not consulted here.
func (DeliveryPolicy) ValidateRequestedStatus(target order.Status) error {
	if _, ok := delivererSettableStatuses()[target]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s cannot be requested by a deliverer", target))
	}
	return nil
}
