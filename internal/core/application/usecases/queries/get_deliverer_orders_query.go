package queries

import (
	"errors"
	"fmt"

	"orderdelivery/internal/pkg/errs"
	"orderdelivery/internal/pkg/guard"
)

var ErrGetDelivererOrdersQueryIsNotConstructed = errors.New(
	"GetDelivererOrdersQuery must be created via NewGetDelivererOrdersQuery constructor",
)

// GetDelivererOrdersQuery retrieves the orders currently assigned to one
// deliverer. Backs the deliverer's work-queue screen.
type GetDelivererOrdersQuery struct {
	delivererID int64

	guard guard.ConstructorGuard
}

// NewGetDelivererOrdersQuery creates a query for a deliverer's assigned
// orders.
func NewGetDelivererOrdersQuery(delivererID int64) (GetDelivererOrdersQuery, error) {
	if delivererID <= 0 {
		return GetDelivererOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("delivererId",
			fmt.Errorf("%d is not a valid deliverer id", delivererID))
	}

	return GetDelivererOrdersQuery{
		delivererID: delivererID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDelivererOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDelivererOrdersQueryIsNotConstructed)
}

// DelivererID returns the deliverer's identifier.
func (q GetDelivererOrdersQuery) DelivererID() int64 {
	return q.delivererID
}
