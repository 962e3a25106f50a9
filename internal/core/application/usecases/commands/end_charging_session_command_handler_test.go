package commands_test

import (
	"testing"
	"time"

	"greenfleet/internal/core/application/usecases/commands"
	"greenfleet/internal/core/domain/model/charging"
	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/vehicle"
	"greenfleet/internal/pkg/errs"
	"greenfleet/internal/pkg/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type endChargingFixture struct {
	session *charging.ChargingSession
	port    *charging.ChargingPort
	vehicle *vehicle.Vehicle

	depots   *MockDepotRepository
	sessions *MockSessionRepository
	vehicles *MockVehicleRepository
	uow      *MockUoW
	factory  *MockChargingUoWFactory
}

func newEndChargingFixture(t *testing.T) *endChargingFixture {
	t.Helper()

	depotID := kernel.NewUUID()
	port, err := charging.NewChargingPort(kernel.NewUUID(), depotID, 5)
	require.NoError(t, err)

	battery, _ := kernel.NewBatteryLevel(30)
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "29C1-444.56", battery)
	require.NoError(t, err)

	sessionID := kernel.NewUUID()
	session, err := charging.NewChargingSession(
		sessionID, v.ID(), kernel.NewUUID(), depotID, port.ID(),
		port.PortNumber(), time.Now().Add(-time.Hour), battery)
	require.NoError(t, err)

	require.NoError(t, port.Occupy(v.ID()))
	require.NoError(t, v.ClaimForCharging(sessionID))

	return &endChargingFixture{
		session:  session,
		port:     port,
		vehicle:  v,
		depots:   new(MockDepotRepository),
		sessions: new(MockSessionRepository),
		vehicles: new(MockVehicleRepository),
		uow:      new(MockUoW),
		factory:  new(MockChargingUoWFactory),
	}
}

func (f *endChargingFixture) expectHappyPath(t *testing.T) {
	t.Helper()
	ctx := t.Context()

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("SessionRepository").Return(f.sessions).Once(),
		f.sessions.On("Get", ctx, f.session.ID()).Return(f.session, nil).Once(),
		f.uow.On("DepotRepository").Return(f.depots).Once(),
		f.depots.On("GetPort", ctx, f.port.ID()).Return(f.port, nil).Once(),
		f.uow.On("VehicleRepository").Return(f.vehicles).Once(),
		f.vehicles.On("Get", ctx, f.vehicle.ID()).Return(f.vehicle, nil).Once(),
		f.uow.On("SessionRepository").Return(f.sessions).Once(),
		f.sessions.On("Update", ctx, f.session).Return(nil).Once(),
		f.uow.On("DepotRepository").Return(f.depots).Once(),
		f.depots.On("UpdatePort", ctx, f.port).Return(nil).Once(),
		f.uow.On("VehicleRepository").Return(f.vehicles).Once(),
		f.vehicles.On("Update", ctx, f.vehicle).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	f.factory.On("Create").Return(f.uow).Once()
}

func newEndChargingHandler(f *endChargingFixture) commands.EndChargingSessionCommandHandler {
	return commands.NewEndChargingSessionCommandHandler(f.factory, lock.NewKeyedMutex(), testLogger())
}

func TestEndChargingSessionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newEndChargingFixture(t)

	endBattery := 85
	energy := 4.2
	cmd, err := commands.NewEndChargingSessionCommand(f.session.ID(), &endBattery, &energy)
	require.NoError(t, err)

	f.expectHappyPath(t)

	handler := newEndChargingHandler(f)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	f.uow.AssertExpectations(t)

	assert.Equal(t, charging.SessionCompleted, f.session.Status())
	assert.NotNil(t, f.session.EndTime())
	assert.Equal(t, 85, f.session.EndBattery().Percent())
	assert.Equal(t, 4.2, *f.session.EnergyConsumedKWh())
	assert.Equal(t, charging.PortAvailable, f.port.Status())
	assert.Nil(t, f.port.CurrentVehicle())
	assert.Equal(t, vehicle.Available, f.vehicle.Status())
	assert.Equal(t, 85, f.vehicle.Battery().Percent())
}

func TestEndChargingSessionCommandHandler_Handle_NoReadings(t *testing.T) {
	ctx := t.Context()
	f := newEndChargingFixture(t)

	cmd, err := commands.NewEndChargingSessionCommand(f.session.ID(), nil, nil)
	require.NoError(t, err)

	f.expectHappyPath(t)

	handler := newEndChargingHandler(f)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, charging.SessionCompleted, f.session.Status())
	assert.Nil(t, f.session.EndBattery())
	assert.Nil(t, f.session.EnergyConsumedKWh())

	// without a reading the vehicle keeps its last known battery level
	assert.Equal(t, vehicle.Available, f.vehicle.Status())
	assert.Equal(t, 30, f.vehicle.Battery().Percent())
}

func TestEndChargingSessionCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := t.Context()
	f := newEndChargingFixture(t)
	require.NoError(t, f.session.Complete(time.Now(), nil, nil))

	cmd, err := commands.NewEndChargingSessionCommand(f.session.ID(), nil, nil)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("SessionRepository").Return(f.sessions).Once(),
		f.sessions.On("Get", ctx, f.session.ID()).Return(f.session, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	f.factory.On("Create").Return(f.uow).Once()

	handler := newEndChargingHandler(f)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)

	// the port was not touched, so a retry cannot free someone else's plug
	assert.Equal(t, charging.PortInUse, f.port.Status())
	f.uow.AssertNotCalled(t, "Commit", ctx)
}

func TestEndChargingSessionCommandHandler_Handle_EndBatteryBelowStart(t *testing.T) {
	ctx := t.Context()
	f := newEndChargingFixture(t)

	endBattery := 10
	cmd, err := commands.NewEndChargingSessionCommand(f.session.ID(), &endBattery, nil)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("SessionRepository").Return(f.sessions).Once(),
		f.sessions.On("Get", ctx, f.session.ID()).Return(f.session, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	f.factory.On("Create").Return(f.uow).Once()

	handler := newEndChargingHandler(f)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, charging.SessionInProgress, f.session.Status())
}

func TestEndChargingSessionCommandHandler_Handle_NegativeEnergyRejected(t *testing.T) {
	energy := -1.5
	_, err := commands.NewEndChargingSessionCommand(kernel.NewUUID(), nil, &energy)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
