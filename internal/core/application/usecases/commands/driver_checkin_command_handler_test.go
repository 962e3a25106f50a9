package commands_test

import (
	"testing"
	"time"

	"greenfleet/internal/core/application/usecases/commands"
	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"
	"greenfleet/internal/core/domain/model/vehicle"
	"greenfleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssignedOrder(t *testing.T, driverID, vehicleID kernel.UUID) *order.Order {
	t.Helper()

	o := newPendingOrder(t)
	require.NoError(t, o.AssignDriver(driverID, vehicleID))
	return o
}

func newEngagedVehicle(t *testing.T, orderID kernel.UUID) *vehicle.Vehicle {
	t.Helper()

	battery, _ := kernel.NewBatteryLevel(75)
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "29C1-555.12", battery)
	require.NoError(t, err)
	require.NoError(t, v.ClaimForDelivery(orderID))
	return v
}

func TestDriverCheckinCommandHandler_Handle_Pickup(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	o := newAssignedOrder(t, driverID, kernel.NewUUID())

	point, _ := kernel.NewGeoPoint(21.028511, 105.804817)
	cmd, err := commands.NewDriverCheckinCommand(
		o.ID(), driverID, commands.CheckinPickup, &point, "", "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	trackingRepo := new(MockOrderRepository)
	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()
	factory.On("Create").Return(newTrackingUoW(trackingRepo)).Once()

	handler := commands.NewDriverCheckinCommandHandler(factory, testLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	assert.Equal(t, order.InTransit, o.Status())
	assert.NotNil(t, o.ActualPickupTime())
	assert.NotNil(t, o.CurrentPoint())
}

func TestDriverCheckinCommandHandler_Handle_Delivery(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	o := newPendingOrder(t)
	v := newEngagedVehicle(t, o.ID())
	require.NoError(t, o.AssignDriver(driverID, v.ID()))
	require.NoError(t, o.TransitionTo(order.InTransit, time.Now()))

	d := newTestDriver(t, driverID)
	deliveredBefore := d.DeliveredCount()

	cmd, err := commands.NewDriverCheckinCommand(
		o.ID(), driverID, commands.CheckinDelivery, nil,
		"https://cdn.greenfleet.vn/proof/abc.jpg", "sig-data", "Tran Thi B")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", ctx, v.ID()).Return(v, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Update", ctx, v).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(d, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Update", ctx, d).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	trackingRepo := new(MockOrderRepository)
	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()
	factory.On("Create").Return(newTrackingUoW(trackingRepo)).Once()

	handler := commands.NewDriverCheckinCommandHandler(factory, testLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)

	assert.Equal(t, order.Delivered, o.Status())
	assert.NotNil(t, o.ActualDeliveryTime())
	assert.Equal(t, "Tran Thi B", o.ReceiverName())
	assert.Equal(t, vehicle.Available, v.Status())
	assert.Equal(t, deliveredBefore+1, d.DeliveredCount())
}

func TestDriverCheckinCommandHandler_Handle_Forbidden(t *testing.T) {
	ctx := t.Context()
	o := newAssignedOrder(t, kernel.NewUUID(), kernel.NewUUID())
	stranger := kernel.NewUUID()

	cmd, err := commands.NewDriverCheckinCommand(
		o.ID(), stranger, commands.CheckinPickup, nil, "", "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDriverCheckinCommandHandler(factory, testLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.Confirmed, o.Status())
}

func TestDriverCheckinCommandHandler_Handle_DeliveryBeforeTransit(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	o := newAssignedOrder(t, driverID, kernel.NewUUID())

	cmd, err := commands.NewDriverCheckinCommand(
		o.ID(), driverID, commands.CheckinDelivery, nil, "", "", "receiver")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDriverCheckinCommandHandler(factory, testLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Confirmed, o.Status())
}

func TestDriverCheckinCommandHandler_Handle_DeliveryOnUnassignedOrder(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t)

	cmd, err := commands.NewDriverCheckinCommand(
		o.ID(), kernel.NewUUID(), commands.CheckinDelivery, nil, "", "", "receiver")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDriverCheckinCommandHandler(factory, testLogger())
	err = handler.Handle(ctx, cmd)

	// ownership is checked before the lifecycle state, so an order that was
	// never accepted rejects the caller instead of reporting its state
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.Pending, o.Status())
}
