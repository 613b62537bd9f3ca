package queries

import (
	"errors"
	"time"

	"orderdelivery/internal/pkg/errs"
	"orderdelivery/internal/pkg/guard"
)

var ErrGetStalePendingOrdersQueryIsNotConstructed = errors.New(
	"GetStalePendingOrdersQuery must be created via NewGetStalePendingOrdersQuery constructor",
)

// GetStalePendingOrdersQuery retrieves orders that have sat in PENDING since
// before a cutoff instant. Feeds the stale-order report job.
type GetStalePendingOrdersQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetStalePendingOrdersQuery creates a query for pending orders created
// before the cutoff.
func NewGetStalePendingOrdersQuery(cutoff time.Time) (GetStalePendingOrdersQuery, error) {
	if cutoff.IsZero() {
		return GetStalePendingOrdersQuery{}, errs.NewValueIsRequiredError("cutoff")
	}

	return GetStalePendingOrdersQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStalePendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStalePendingOrdersQueryIsNotConstructed)
}

// Cutoff returns the staleness threshold.
func (q GetStalePendingOrdersQuery) Cutoff() time.Time {
	return q.cutoff
}

// GetStalePendingOrdersQueryResponse represents one stale order in the read
// model.
type GetStalePendingOrdersQueryResponse struct {
	ID        int64
	UserID    int64
	Address   string
	CreatedAt time.Time
}
