package queries

import (
	"context"

	"orderdelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStalePendingOrdersQueryHandler retrieves orders stuck at the start of
// the delivery lifecycle.
type GetStalePendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStalePendingOrdersQueryHandler creates a handler for stale-order
// queries.
func NewGetStalePendingOrdersQueryHandler(db *gorm.DB) GetStalePendingOrdersQueryHandler {
	return GetStalePendingOrdersQueryHandler{db: db}
}

// Handle executes the query and returns pending orders created before the
// cutoff, oldest first.
func (h GetStalePendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStalePendingOrdersQuery,
) ([]GetStalePendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stale := make([]GetStalePendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			address,
			created_at
		FROM orders
		WHERE status = ? AND created_at < ?
		ORDER BY created_at
	`, order.Pending, query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetStalePendingOrdersQueryResponse
		err = rows.Scan(
			&orderResp.ID,
			&orderResp.UserID,
			&orderResp.Address,
			&orderResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		stale = append(stale, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stale, nil
}
