package ports

import (
	"context"

	"orderdelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with its detail lines as
	// one unit and backfills the store-generated identity on the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Detail lines are immutable and are not touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier, detail lines
	// included.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// CompareAndSetStatus atomically moves the order's status from expected
	// to next. It fails with an errs.ObjectIsStaleError when the row's
	// current status no longer matches expected (a concurrent writer won),
	// and with errs.ObjectNotFoundError when the order does not exist.
	CompareAndSetStatus(ctx context.Context, id int64, expected, next order.Status) error

	// Delete removes the order and cascades to its detail lines.
	// Proof records are evidentiary and are left in place.
	Delete(ctx context.Context, id int64) error
}
