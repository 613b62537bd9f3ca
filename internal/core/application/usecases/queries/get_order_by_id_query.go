package queries

import (
	"errors"
	"fmt"

	"orderdelivery/internal/pkg/errs"
	"orderdelivery/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order by its identifier.
type GetOrderByIDQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for one order.
func NewGetOrderByIDQuery(orderID int64) (GetOrderByIDQuery, error) {
	if orderID <= 0 {
		return GetOrderByIDQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a valid order id", orderID))
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderByIDQuery) OrderID() int64 {
	return q.orderID
}
