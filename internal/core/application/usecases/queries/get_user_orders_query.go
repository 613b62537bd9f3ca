package queries

import (
	"errors"
	"fmt"

	"orderdelivery/internal/pkg/errs"
	"orderdelivery/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery retrieves the order history of one customer.
type GetUserOrdersQuery struct {
	userID int64

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for a customer's orders.
func NewGetUserOrdersQuery(userID int64) (GetUserOrdersQuery, error) {
	if userID <= 0 {
		return GetUserOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("userId",
			fmt.Errorf("%d is not a valid user id", userID))
	}

	return GetUserOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the owning user's identifier.
func (q GetUserOrdersQuery) UserID() int64 {
	return q.userID
}
