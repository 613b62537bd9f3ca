package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orderdelivery/internal/adapters/out/postgres/orderrepo"
	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite exercises the order repository against
// a real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderDetailDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_details RESTART IDENTITY").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(details ...order.Detail) *order.Order {
	aggregate, err := order.NewOrder(1, "12 Elm St", "", "", details)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_BackfillsIdentityAndPersistsDetails() {
	ctx := context.Background()

	detail, err := order.NewDetail(7, 2, 19.99)
	suite.Require().NoError(err)
	aggregate := suite.newOrder(detail)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))
	suite.Positive(aggregate.ID())

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, restored.Status())
	suite.Equal("12 Elm St", restored.Address())
	suite.Equal(order.DefaultPaymentStatus, restored.PaymentStatus())
	suite.Require().Len(restored.Details(), 1)
	suite.EqualValues(7, restored.Details()[0].ProductID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MissingOrder_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), 12345)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsAssignment() {
	ctx := context.Background()
	aggregate := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(aggregate.AssignDeliverer(9))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.AssignedToDeliverer, restored.Status())
	suite.Require().NotNil(restored.Deliverer())
	suite.EqualValues(9, *restored.Deliverer())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCompareAndSetStatus_MatchingStatus_Updates() {
	ctx := context.Background()
	aggregate := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	err := suite.repository.CompareAndSetStatus(ctx, aggregate.ID(), order.Pending, order.AssignedToDeliverer)
	suite.Require().NoError(err)

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.AssignedToDeliverer, restored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCompareAndSetStatus_StatusMoved_ReturnsStale() {
	ctx := context.Background()
	aggregate := suite.newOrder()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// Another writer wins the race.
	err := suite.repository.CompareAndSetStatus(ctx, aggregate.ID(), order.Pending, order.AssignedToDeliverer)
	suite.Require().NoError(err)

	err = suite.repository.CompareAndSetStatus(ctx, aggregate.ID(), order.Pending, order.AssignedToDeliverer)
	suite.Require().ErrorIs(err, errs.ErrObjectIsStale)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCompareAndSetStatus_MissingOrder_ReturnsNotFound() {
	err := suite.repository.CompareAndSetStatus(context.Background(), 12345, order.Pending, order.AssignedToDeliverer)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndDetails() {
	ctx := context.Background()

	detail, err := order.NewDetail(7, 2, 19.99)
	suite.Require().NoError(err)
	aggregate := suite.newOrder(detail)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(suite.repository.Delete(ctx, aggregate.ID()))

	_, err = suite.repository.Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var lines int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDetailDTO{}).
		Where("order_id = ?", aggregate.ID()).Count(&lines).Error)
	suite.Zero(lines)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_MissingOrder_ReturnsNotFound() {
	err := suite.repository.Delete(context.Background(), 12345)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
