package queries

import (
	"errors"
	"fmt"

	"orderdelivery/internal/pkg/errs"
	"orderdelivery/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery retrieves the detail lines of one order.
type GetOrderDetailsQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates a query for an order's detail lines.
func NewGetOrderDetailsQuery(orderID int64) (GetOrderDetailsQuery, error) {
	if orderID <= 0 {
		return GetOrderDetailsQuery{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a valid order id", orderID))
	}

	return GetOrderDetailsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the owning order's identifier.
func (q GetOrderDetailsQuery) OrderID() int64 {
	return q.orderID
}

// GetOrderDetailsQueryResponse represents one detail line in the read model.
// Price is the per-unit snapshot taken at order creation.
type GetOrderDetailsQueryResponse struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	Price     float64
}
