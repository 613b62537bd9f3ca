package queries

import (
	"context"

	"orderdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves a single order from the database.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order lookups.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the lookup. A missing order is reported as an
// errs.ObjectNotFoundError.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	orders, err := scanOrderRows(rows)
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return orders[0], nil
}
