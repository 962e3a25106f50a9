package orderrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"greenfleet/internal/adapters/out/postgres/assignmentrepo"
	"greenfleet/internal/adapters/out/postgres/orderrepo"
	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"
	"greenfleet/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/stretchr/testify/suite"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	repository  *orderrepo.GormOrderRepository
	assignments *assignmentrepo.GormAssignmentRepository
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

	// the stale-pending query joins against order_assignments
	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.TrackingDTO{}, &assignmentrepo.AssignmentDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_tracking, order_assignments").Error)

	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
	suite.assignments = assignmentrepo.NewGormAssignmentRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderCode_Fails() {
	ctx := context.Background()

	first := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	pickup, _ := kernel.NewGeoPoint(21.028511, 105.804817)
	delivery, _ := kernel.NewGeoPoint(21.007551, 105.843063)
	duplicate, err := order.NewOrder(
		kernel.NewUUID(), first.OrderCode(),
		"36 Hoang Cau", pickup, "17 Duy Tan", delivery,
		decimal.NewFromInt(40000),
	)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err, "order codes must be unique")
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	driverID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()

	pickupETA := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	deliveryETA := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	testOrder.ScheduleEstimates(&pickupETA, &deliveryETA)

	suite.Require().NoError(testOrder.AssignDriver(driverID, vehicleID))

	position, _ := kernel.NewGeoPoint(21.015, 105.82)
	suite.Require().NoError(testOrder.UpdatePosition(position))
	testOrder.RecordProof("", "", "Tran Thi B")

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.OrderCode(), retrieved.OrderCode())
	suite.Equal(order.Confirmed, retrieved.Status())
	suite.True(retrieved.BelongsTo(driverID))
	suite.Require().NotNil(retrieved.Vehicle())
	suite.True(retrieved.Vehicle().IsEqual(vehicleID))
	suite.Equal("36 Hoang Cau", retrieved.PickupAddress())
	suite.Equal("17 Duy Tan", retrieved.DeliveryAddress())
	suite.True(testOrder.Price().Equal(retrieved.Price()))
	suite.Require().NotNil(retrieved.CurrentPoint())
	suite.InDelta(21.015, retrieved.CurrentPoint().Lat(), 0.000001)
	suite.Require().NotNil(retrieved.EstimatedPickupTime())
	suite.WithinDuration(pickupETA, *retrieved.EstimatedPickupTime(), time.Second)
	suite.Equal("Tran Thi B", retrieved.ReceiverName())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransition() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	driverID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()
	suite.Require().NoError(testOrder.ClaimForDelivery(driverID, vehicleID, time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InTransit, retrieved.Status())
	suite.True(retrieved.BelongsTo(driverID))
	suite.Require().NotNil(retrieved.ActualPickupTime())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()

	ghost := suite.createTestOrder()

	err := suite.repository.Update(ctx, ghost)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetStalePending() {
	ctx := context.Background()
	cutoff := time.Now().Add(-30 * time.Second)

	// old pending order with no outstanding offers: eligible
	stale := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, stale))
	suite.backdateOrder(stale.ID(), time.Now().Add(-2*time.Minute))

	// old pending order whose offer is still awaiting a response: skipped
	offered := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, offered))
	suite.backdateOrder(offered.ID(), time.Now().Add(-2*time.Minute))
	offer, err := order.NewAssignment(kernel.NewUUID(), offered.ID(), kernel.NewUUID(), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.assignments.Add(ctx, offer))

	// fresh pending order: skipped
	fresh := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	// old order already claimed by a driver: skipped
	claimed := suite.createTestOrder()
	suite.Require().NoError(claimed.ClaimForDelivery(kernel.NewUUID(), kernel.NewUUID(), time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, claimed))
	suite.backdateOrder(claimed.ID(), time.Now().Add(-2*time.Minute))

	found, err := suite.repository.GetStalePending(ctx, cutoff)
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(stale.ID(), found[0].ID())

	// rejecting the open offer makes the offered order eligible again
	suite.Require().NoError(offer.Reject(time.Now(), "driver declined"))
	suite.Require().NoError(suite.assignments.Update(ctx, offer))

	found, err = suite.repository.GetStalePending(ctx, cutoff)
	suite.Require().NoError(err)
	suite.Require().Len(found, 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestTracking_History() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	point, _ := kernel.NewGeoPoint(21.015, 105.82)
	first, err := order.NewTrackingEntry(
		kernel.NewUUID(), testOrder.ID(), order.Pending, nil, "order created", time.Now().Add(-time.Minute))
	suite.Require().NoError(err)
	second, err := order.NewTrackingEntry(
		kernel.NewUUID(), testOrder.ID(), order.InTransit, &point, "", time.Now())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.AddTracking(ctx, first))
	suite.Require().NoError(suite.repository.AddTracking(ctx, second))

	history, err := suite.repository.GetTracking(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(order.Pending, history[0].Status())
	suite.Equal("order created", history[0].Note())
	suite.Nil(history[0].Point())
	suite.Equal(order.InTransit, history[1].Status())
	suite.Require().NotNil(history[1].Point())

	// unrelated orders contribute nothing
	other, err := suite.repository.GetTracking(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(other)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	pickup, _ := kernel.NewGeoPoint(21.028511, 105.804817)
	delivery, _ := kernel.NewGeoPoint(21.007551, 105.843063)
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		fmt.Sprintf("GF-%s", kernel.NewUUID().String()[:8]),
		"36 Hoang Cau", pickup,
		"17 Duy Tan", delivery,
		decimal.NewFromInt(30000),
	)
	suite.Require().NoError(err)
	return testOrder
}

// backdateOrder pushes created_at behind the stale cutoff; GORM stamps it on
// insert so it cannot be set through the aggregate.
func (suite *OrderRepositoryIntegrationTestSuite) backdateOrder(id kernel.UUID, createdAt time.Time) {
	err := suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Update("created_at", createdAt).Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
