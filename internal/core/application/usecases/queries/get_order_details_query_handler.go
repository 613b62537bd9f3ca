package queries

import (
	"context"

	"orderdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler retrieves an order's detail lines.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailsQueryHandler creates a handler for detail-line lookups.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle executes the lookup. An order with no detail lines and an unknown
// order both surface as an errs.ObjectNotFoundError.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) ([]GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	details := make([]GetOrderDetailsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			quantity,
			price
		FROM order_details
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var detail GetOrderDetailsQueryResponse
		err = rows.Scan(
			&detail.ID,
			&detail.OrderID,
			&detail.ProductID,
			&detail.Quantity,
			&detail.Price,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(details) == 0 {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return details, nil
}
