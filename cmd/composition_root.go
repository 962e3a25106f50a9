package cmd

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	httpadapter "greenfleet/internal/adapters/in/http"
	"greenfleet/internal/adapters/out/notify"
	"greenfleet/internal/adapters/out/postgres"
	"greenfleet/internal/core/application/usecases/commands"
	"greenfleet/internal/core/application/usecases/queries"
	"greenfleet/internal/core/domain/services"
	"greenfleet/internal/core/ports"
	"greenfleet/internal/jobs"
	"greenfleet/internal/pkg/lock"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	locks      *lock.KeyedMutex
	calculator services.PriceCalculator
	selector   services.BroadcastSelector
	resolver   services.AssignmentResolver
	staleAfter time.Duration
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	calculator, err := services.NewPriceCalculator(
		mustDecimal(config.BaseFare, "15000"),
		mustDecimal(config.PerKmRate, "5000"),
	)
	if err != nil {
		panic("invalid pricing configuration: " + err.Error())
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewGormNotifier(gormDB, logger),
		locks:      lock.NewKeyedMutex(),
		calculator: calculator,
		selector:   services.NewBroadcastSelector(mustFloat(config.BroadcastRadiusKm, 5)),
		resolver:   services.NewAssignmentResolver(),
		staleAfter: mustDuration(config.BroadcastStaleAfter, time.Minute),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) chargingUoWFactory() commands.ChargingUoWFactory {
	return FuncChargingUoWFactory(func() commands.ChargingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.calculator, c.logger)
}

func (c *CompositionRoot) CreateBroadcastAssignmentCommandHandler() commands.BroadcastAssignmentCommandHandler {
	return commands.NewBroadcastAssignmentCommandHandler(c.dispatchUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRespondAssignmentCommandHandler() commands.RespondAssignmentCommandHandler {
	return commands.NewRespondAssignmentCommandHandler(c.dispatchUoWFactory(), c.locks, c.resolver, c.logger)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.dispatchUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.dispatchUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateDriverCheckinCommandHandler() commands.DriverCheckinCommandHandler {
	return commands.NewDriverCheckinCommandHandler(c.dispatchUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.dispatchUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateStartChargingSessionCommandHandler() commands.StartChargingSessionCommandHandler {
	return commands.NewStartChargingSessionCommandHandler(c.chargingUoWFactory(), c.locks, c.logger)
}

func (c *CompositionRoot) CreateEndChargingSessionCommandHandler() commands.EndChargingSessionCommandHandler {
	return commands.NewEndChargingSessionCommandHandler(c.chargingUoWFactory(), c.locks, c.logger)
}

func (c *CompositionRoot) CreateGetDriverKPIQueryHandler() queries.GetDriverKPIQueryHandler {
	return queries.NewGetDriverKPIQueryHandler(c.gormDB, c.logger)
}

func (c *CompositionRoot) CreateGetFleetKPIQueryHandler() queries.GetFleetKPIQueryHandler {
	return queries.NewGetFleetKPIQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDepotStatsQueryHandler() queries.GetDepotStatsQueryHandler {
	return queries.NewGetDepotStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveSessionQueryHandler() queries.GetActiveSessionQueryHandler {
	return queries.NewGetActiveSessionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	return queries.NewGetOrderTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignedOrdersQueryHandler() queries.GetAssignedOrdersQueryHandler {
	return queries.NewGetAssignedOrdersQueryHandler(c.gormDB)
}

// CreateServer wires every HTTP endpoint to its handler.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateBroadcastAssignmentCommandHandler(),
		c.CreateRespondAssignmentCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateDriverCheckinCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateStartChargingSessionCommandHandler(),
		c.CreateEndChargingSessionCommandHandler(),
		c.CreateGetDriverKPIQueryHandler(),
		c.CreateGetFleetKPIQueryHandler(),
		c.CreateGetDepotStatsQueryHandler(),
		c.CreateGetActiveSessionQueryHandler(),
		c.CreateGetOrderTrackingQueryHandler(),
		c.CreateGetAssignedOrdersQueryHandler(),
	)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.dispatchUoWFactory(),
		c.CreateBroadcastAssignmentCommandHandler(),
		c.selector,
		c.staleAfter,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncChargingUoWFactory func() commands.ChargingUoW

func (f FuncChargingUoWFactory) Create() commands.ChargingUoW {
	return f()
}

func mustDecimal(raw, fallback string) decimal.Decimal {
	if raw == "" {
		raw = fallback
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		panic("invalid decimal configuration value: " + raw)
	}
	return d
}

func mustFloat(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		panic("invalid numeric configuration value: " + raw)
	}
	return f
}

func mustDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		panic("invalid duration configuration value: " + raw)
	}
	return d
}
