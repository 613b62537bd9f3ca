package orderrepo_test

import (
	"context"
	"testing"

	"orderdelivery/internal/adapters/out/postgres/orderrepo"
	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/pkg/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockedRepository(t *testing.T) (*orderrepo.GormOrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgresdriver.New(postgresdriver.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	// CompareAndSetStatus never tracks aggregates, so no expectations are set.
	return orderrepo.NewGormOrderRepository(gormDB, new(MockAggregateTracker)), mock
}

func TestCompareAndSetStatus_ExpectedStatusInWhereClause(t *testing.T) {
	repo, mock := newMockedRepository(t)

	t.Run("row_updated", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "orders" SET`).
			WithArgs(order.AssignedToDeliverer.String(), sqlmock.AnyArg(), 42, order.Pending.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.CompareAndSetStatus(context.Background(), 42, order.Pending, order.AssignedToDeliverer)
		assert.NoError(t, err)
	})

	t.Run("no_row_matched_but_order_exists_is_stale", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "orders" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).
			WithArgs(42).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err := repo.CompareAndSetStatus(context.Background(), 42, order.Pending, order.AssignedToDeliverer)
		assert.ErrorIs(t, err, errs.ErrObjectIsStale)
	})

	t.Run("no_row_matched_and_order_missing_is_not_found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "orders" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).
			WithArgs(42).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := repo.CompareAndSetStatus(context.Background(), 42, order.Pending, order.AssignedToDeliverer)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
