package commands

import (
	"context"
	"log/slog"
	"time"

	"greenfleet/internal/core/domain/model/order"
	"greenfleet/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// It derives the order code, prices the delivery once, and persists the
// Pending order.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	calculator services.PriceCalculator
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	calculator services.PriceCalculator,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		logger:     logger.With("component", "create_order"),
	}
}

// Handle processes the order creation command. The price is computed from the
// great-circle pickup-delivery distance and stamped on the order; a tracking
// entry is appended best-effort after the commit.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	price, err := h.calculator.Calculate(cmd.PickupPoint(), cmd.DeliveryPoint())
	if err != nil {
		return err
	}

	now := time.Now()
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		order.NewOrderCode(cmd.OrderID(), now),
		cmd.PickupAddress(),
		cmd.PickupPoint(),
		cmd.DeliveryAddress(),
		cmd.DeliveryPoint(),
		price,
	)
	if err != nil {
		return err
	}
	newOrder.ScheduleEstimates(cmd.EstimatedPickupTime(), cmd.EstimatedDeliveryTime())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordTracking(ctx, h.uowFactory.Create(), h.logger,
		newOrder.ID(), newOrder.Status(), nil, "order created")

	return nil
}
