// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases and talk to
// the database directly, bypassing the aggregates.
package queries

import (
	"errors"

	"orderdelivery/internal/pkg/guard"
)

var ErrGetDeliverersQueryIsNotConstructed = errors.New(
	"GetDeliverersQuery must be created via NewGetDeliverersQuery constructor",
)

// GetDeliverersQuery retrieves every user holding the deliverer role.
// Used by dispatch screens to pick an assignee for a pending order.
//
// Example:
//
//	query := NewGetDeliverersQuery()
//	handler := NewGetDeliverersQueryHandler(db)
//
//	deliverers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve deliverers: %w", err)
//	}
type GetDeliverersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliverersQuery creates a query to retrieve all deliverers.
func NewGetDeliverersQuery() GetDeliverersQuery {
	return GetDeliverersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliverersQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliverersQueryIsNotConstructed)
}

// GetDeliverersQueryResponse represents one deliverer in the read model.
type GetDeliverersQueryResponse struct {
	ID    int64
	Name  string
	Email string
}
