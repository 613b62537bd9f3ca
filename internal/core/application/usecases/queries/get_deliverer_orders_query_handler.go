package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDelivererOrdersQueryHandler retrieves a deliverer's assigned orders.
type GetDelivererOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDelivererOrdersQueryHandler creates a handler for deliverer
// work-queue queries.
func NewGetDelivererOrdersQueryHandler(db *gorm.DB) GetDelivererOrdersQueryHandler {
	return GetDelivererOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the deliverer's orders sorted by ID.
// A deliverer with nothing assigned gets an empty slice, not an error.
func (h GetDelivererOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDelivererOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders
		WHERE deliverer_id = ?
		ORDER BY id
	`, query.DelivererID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
