package order

import (
	"errors"
	"fmt"

	"orderdelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. Values are persisted as
// their string form, matching the wire representation used by clients.
type Status string

const (
	// Pending is the initial status of a freshly created order.
	Pending Status = "PENDING"

	// AssignedToDeliverer indicates a deliverer has been assigned.
	// Reachable only through the assignment operation.
	AssignedToDeliverer Status = "ASSIGNED_TO_DELIVERER"

	// OutForDelivery indicates the deliverer picked the order up.
	OutForDelivery Status = "OUT_FOR_DELIVERY"

	// Delivered indicates the deliverer reported the order as handed over.
	// Proof of delivery may only be uploaded while in this status.
	Delivered Status = "DELIVERED"

	// DeliveryConfirmed is the terminal success status. Reachable only
	// through the proof-upload operation.
	DeliveryConfirmed Status = "DELIVERY_CONFIRMED"

	// Failed is the terminal failure status.
	Failed Status = "FAILED"
)

// ErrInvalidTransition is the sentinel for transition-table violations.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a status change that is not present in the
// transition table, carrying both the current and the attempted status.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// current and attempted statuses.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// getValidStatuses returns the closed set of status values.
// No operation may persist a status outside this set.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:             {},
		AssignedToDeliverer: {},
		OutForDelivery:      {},
		Delivered:           {},
		DeliveryConfirmed:   {},
		Failed:              {},
	}
}

// transitionTable returns the legal (current, next) pairs of the lifecycle.
// Statuses absent from the map are terminal.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:             {AssignedToDeliverer},
		AssignedToDeliverer: {OutForDelivery, Failed},
		OutForDelivery:      {Delivered, Failed},
		Delivered:           {DeliveryConfirmed, Failed},
	}
}

// Validate checks that the status is one of the six defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the persisted string form of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == DeliveryConfirmed || s == Failed
}

// CanTransitionTo reports whether the (s, next) pair is present in the
// transition table. It does not consult the deliverer allow-list; that check
// belongs to services.DeliveryPolicy and must be applied independently.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitionTable()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the target status and the transition-table pair,
// returning the new status on success.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(next) {
		return "", NewInvalidTransitionError(s, next)
	}
	return next, nil
}
