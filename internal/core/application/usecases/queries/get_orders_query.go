package queries

import (
	"errors"

	"orderdelivery/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves every order in the system for back-office
// listings.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// OrderResponse represents one order row in the read model. DelivererID is
// nil while the order has never been assigned.
type OrderResponse struct {
	ID            int64
	UserID        int64
	DelivererID   *int64
	Address       string
	Status        string
	PaymentStatus string
	PaymentMethod string
}
