package commands_test

import (
	"testing"
	"time"

	"greenfleet/internal/core/application/usecases/commands"
	"greenfleet/internal/core/domain/model/driver"
	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"
	"greenfleet/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	orderID := kernel.NewUUID()
	pickup, _ := kernel.NewGeoPoint(21.028511, 105.804817)
	delivery, _ := kernel.NewGeoPoint(21.036237, 105.790273)

	o, err := order.NewOrder(orderID, order.NewOrderCode(orderID, time.Now()),
		"12 Trang Tien, Hoan Kiem", pickup,
		"8 Lang Ha, Ba Dinh", delivery,
		decimal.NewFromInt(35000))
	require.NoError(t, err)
	return o
}

func newTestDriver(t *testing.T, id kernel.UUID) *driver.Driver {
	t.Helper()

	d, err := driver.NewDriver(id, "Nguyen Van A", 4.8, 10)
	require.NoError(t, err)
	return d
}

func TestBroadcastAssignmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t)
	driverA := kernel.NewUUID()
	driverB := kernel.NewUUID()

	cmd, err := commands.NewBroadcastAssignmentCommand(o.ID(), []kernel.UUID{driverA, driverB})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverA).Return(newTestDriver(t, driverA), nil).Once(),
		driverRepo.On("Get", ctx, driverB).Return(newTestDriver(t, driverB), nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("DeleteByOrder", ctx, o.ID()).Return(nil).Once(),
		assignmentRepo.On("Add", ctx, mock.AnythingOfType("*order.Assignment")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	notifier.On("Notify", ctx, mock.AnythingOfType("ports.Notification")).Return(nil).Twice()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewBroadcastAssignmentCommandHandler(factory, notifier, testLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	assignmentRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)

	for _, call := range assignmentRepo.Calls {
		if call.Method != "Add" {
			continue
		}
		a := call.Arguments[1].(*order.Assignment)
		assert.Equal(t, o.ID(), a.OrderID())
		assert.Equal(t, order.AssignmentPending, a.Status())
	}
}

func TestBroadcastAssignmentCommandHandler_Handle_OrderNotClaimable(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t)
	require.NoError(t, o.ClaimForDelivery(kernel.NewUUID(), kernel.NewUUID(), time.Now()))

	cmd, err := commands.NewBroadcastAssignmentCommand(o.ID(), []kernel.UUID{kernel.NewUUID()})
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

	handler := commands.NewBroadcastAssignmentCommandHandler(factory, new(MockNotifier), testLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestBroadcastAssignmentCommandHandler_Handle_UnknownDriver(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t)
	driverID := kernel.NewUUID()

	cmd, err := commands.NewBroadcastAssignmentCommand(o.ID(), []kernel.UUID{driverID})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).
			Return(nil, errs.NewObjectNotFoundError("driver", driverID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewBroadcastAssignmentCommandHandler(factory, new(MockNotifier), testLogger())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestBroadcastAssignmentCommandHandler_Handle_NotifyFailureIsBestEffort(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t)
	driverID := kernel.NewUUID()

	cmd, err := commands.NewBroadcastAssignmentCommand(o.ID(), []kernel.UUID{driverID})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(newTestDriver(t, driverID), nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("DeleteByOrder", ctx, o.ID()).Return(nil).Once(),
		assignmentRepo.On("Add", ctx, mock.AnythingOfType("*order.Assignment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	notifier.On("Notify", ctx, mock.AnythingOfType("ports.Notification")).
		Return(errs.NewUnavailableError("push gateway", nil)).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewBroadcastAssignmentCommandHandler(factory, notifier, testLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	notifier.AssertExpectations(t)
}
