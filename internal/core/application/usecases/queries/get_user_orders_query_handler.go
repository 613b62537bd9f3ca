package queries

import (
	"context"

	"orderdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler retrieves a customer's order history.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for per-customer order
// listings.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query. An empty history is reported as an
// errs.ObjectNotFoundError, matching the behavior clients of the original
// endpoint depend on; a user with no orders and an unknown user are
// indistinguishable here.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders
		WHERE user_id = ?
		ORDER BY id
	`, query.UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errs.NewObjectNotFoundError("userId", query.UserID())
	}

	return orders, nil
}
