package jobs

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"greenfleet/internal/core/application/usecases/commands"
	"greenfleet/internal/core/domain/model/driver"
	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"
	"greenfleet/internal/core/domain/services"
	"greenfleet/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderRepository struct {
	stale  []*order.Order
	orders map[kernel.UUID]*order.Order
}

func (r *stubOrderRepository) Add(_ context.Context, _ *order.Order) error    { return nil }
func (r *stubOrderRepository) Update(_ context.Context, _ *order.Order) error { return nil }

func (r *stubOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	return r.orders[id], nil
}

func (r *stubOrderRepository) GetStalePending(_ context.Context, _ time.Time) ([]*order.Order, error) {
	return r.stale, nil
}

func (r *stubOrderRepository) AddTracking(_ context.Context, _ *order.TrackingEntry) error {
	return nil
}

func (r *stubOrderRepository) GetTracking(_ context.Context, _ kernel.UUID) ([]*order.TrackingEntry, error) {
	return nil, nil
}

type stubDriverRepository struct {
	available []*driver.Driver
}

func (r *stubDriverRepository) Add(_ context.Context, _ *driver.Driver) error    { return nil }
func (r *stubDriverRepository) Update(_ context.Context, _ *driver.Driver) error { return nil }

func (r *stubDriverRepository) Get(_ context.Context, id kernel.UUID) (*driver.Driver, error) {
	return r.available[0], nil
}

func (r *stubDriverRepository) GetAllAvailable(_ context.Context) ([]*driver.Driver, error) {
	return r.available, nil
}

type stubDispatchUoW struct {
	orders  *stubOrderRepository
	drivers *stubDriverRepository
}

func (u *stubDispatchUoW) Begin(_ context.Context) error    { return nil }
func (u *stubDispatchUoW) Commit(_ context.Context) error   { return nil }
func (u *stubDispatchUoW) Rollback(_ context.Context) error { return nil }

func (u *stubDispatchUoW) OrderRepository() ports.OrderRepository   { return u.orders }
func (u *stubDispatchUoW) DriverRepository() ports.DriverRepository { return u.drivers }

func (u *stubDispatchUoW) AssignmentRepository() ports.AssignmentRepository { return nil }
func (u *stubDispatchUoW) VehicleRepository() ports.VehicleRepository       { return nil }

type stubDispatchUoWFactory struct {
	uow *stubDispatchUoW
}

func (f stubDispatchUoWFactory) Create() commands.DispatchUoW { return f.uow }

type stubNotifier struct {
	notified int
}

func (n *stubNotifier) Notify(_ context.Context, _ ports.Notification) error {
	n.notified++
	return nil
}

func TestPendingBroadcastJob_Run_ClaimedMidRunIsNotAnError(t *testing.T) {
	ctx := context.Background()

	pickup, err := kernel.NewGeoPoint(21.028511, 105.804817)
	require.NoError(t, err)
	delivery, err := kernel.NewGeoPoint(21.007551, 105.843063)
	require.NoError(t, err)

	// The order was Pending when the stale query ran, but a driver claimed
	// it before the broadcast command fired.
	o, err := order.NewOrder(
		kernel.NewUUID(), "GF-RACE0001",
		"36 Hoang Cau", pickup, "17 Duy Tan", delivery,
		decimal.NewFromInt(30000))
	require.NoError(t, err)
	require.NoError(t, o.ClaimForDelivery(kernel.NewUUID(), kernel.NewUUID(), time.Now()))

	d, err := driver.NewDriver(kernel.NewUUID(), "Nguyen Van A", 4.8, 10)
	require.NoError(t, err)
	require.NoError(t, d.UpdateLocation(pickup))

	uow := &stubDispatchUoW{
		orders: &stubOrderRepository{
			stale:  []*order.Order{o},
			orders: map[kernel.UUID]*order.Order{o.ID(): o},
		},
		drivers: &stubDriverRepository{available: []*driver.Driver{d}},
	}
	factory := stubDispatchUoWFactory{uow: uow}

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	notifier := &stubNotifier{}
	handler := commands.NewBroadcastAssignmentCommandHandler(factory, notifier, logger)

	job := NewPendingBroadcastJob(
		factory, handler, services.NewBroadcastSelector(5), time.Minute, logger)
	job.run(ctx)

	assert.NotContains(t, logBuf.String(), "level=ERROR")
	assert.Equal(t, 0, notifier.notified, "a claimed order must not be re-offered")
}
