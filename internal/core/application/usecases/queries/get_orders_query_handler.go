package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

const orderSelectColumns = `
		id,
		user_id,
		deliverer_id,
		address,
		status,
		payment_status,
		payment_method`

// GetOrdersQueryHandler retrieves order listings from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns all orders sorted by ID.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

// scanOrderRows converts a result set produced with orderSelectColumns into
// the order read model. Shared by every handler that lists orders.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var orderResp OrderResponse
		var delivererID sql.NullInt64

		err := rows.Scan(
			&orderResp.ID,
			&orderResp.UserID,
			&delivererID,
			&orderResp.Address,
			&orderResp.Status,
			&orderResp.PaymentStatus,
			&orderResp.PaymentMethod,
		)
		if err != nil {
			return nil, err
		}

		if delivererID.Valid {
			orderResp.DelivererID = &delivererID.Int64
		}
		orders = append(orders, orderResp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
