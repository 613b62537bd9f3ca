package queries

import (
	"context"

	"orderdelivery/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GetDeliverersQueryHandler retrieves deliverer accounts from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDeliverersQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliverersQueryHandler creates a handler for deliverer retrieval
// queries. Requires a GORM database connection for query execution.
func NewGetDeliverersQueryHandler(db *gorm.DB) GetDeliverersQueryHandler {
	return GetDeliverersQueryHandler{db: db}
}

// Handle executes the query and returns all deliverer-role users sorted by
// name. A user whose role is anything else never appears in the result.
func (h GetDeliverersQueryHandler) Handle(
	ctx context.Context,
	query GetDeliverersQuery,
) ([]GetDeliverersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliverers := make([]GetDeliverersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email
		FROM users
		WHERE role_id = ?
		ORDER BY name
	`, user.RoleDeliverer).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var deliverer GetDeliverersQueryResponse
		if err = rows.Scan(&deliverer.ID, &deliverer.Name, &deliverer.Email); err != nil {
			return nil, err
		}
		deliverers = append(deliverers, deliverer)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliverers, nil
}
