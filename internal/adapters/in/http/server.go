package http

import (
	"errors"
	"net/http"
	"time"

	"greenfleet/internal/core/application/usecases/commands"
	"greenfleet/internal/core/application/usecases/queries"
	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"
	"greenfleet/internal/generated/servers"
	"greenfleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	broadcastHandler     commands.BroadcastAssignmentCommandHandler
	respondHandler       commands.RespondAssignmentCommandHandler
	assignDriverHandler  commands.AssignDriverCommandHandler
	updateStatusHandler  commands.UpdateOrderStatusCommandHandler
	checkinHandler       commands.DriverCheckinCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	startChargingHandler commands.StartChargingSessionCommandHandler
	endChargingHandler   commands.EndChargingSessionCommandHandler

	// Query handlers
	driverKPIHandler      queries.GetDriverKPIQueryHandler
	fleetKPIHandler       queries.GetFleetKPIQueryHandler
	depotStatsHandler     queries.GetDepotStatsQueryHandler
	activeSessionHandler  queries.GetActiveSessionQueryHandler
	orderTrackingHandler  queries.GetOrderTrackingQueryHandler
	assignedOrdersHandler queries.GetAssignedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	broadcastHandler commands.BroadcastAssignmentCommandHandler,
	respondHandler commands.RespondAssignmentCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	checkinHandler commands.DriverCheckinCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	startChargingHandler commands.StartChargingSessionCommandHandler,
	endChargingHandler commands.EndChargingSessionCommandHandler,
	driverKPIHandler queries.GetDriverKPIQueryHandler,
	fleetKPIHandler queries.GetFleetKPIQueryHandler,
	depotStatsHandler queries.GetDepotStatsQueryHandler,
	activeSessionHandler queries.GetActiveSessionQueryHandler,
	orderTrackingHandler queries.GetOrderTrackingQueryHandler,
	assignedOrdersHandler queries.GetAssignedOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		broadcastHandler:      broadcastHandler,
		respondHandler:        respondHandler,
		assignDriverHandler:   assignDriverHandler,
		updateStatusHandler:   updateStatusHandler,
		checkinHandler:        checkinHandler,
		cancelOrderHandler:    cancelOrderHandler,
		startChargingHandler:  startChargingHandler,
		endChargingHandler:    endChargingHandler,
		driverKPIHandler:      driverKPIHandler,
		fleetKPIHandler:       fleetKPIHandler,
		depotStatsHandler:     depotStatsHandler,
		activeSessionHandler:  activeSessionHandler,
		orderTrackingHandler:  orderTrackingHandler,
		assignedOrdersHandler: assignedOrdersHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - registers a new delivery order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req servers.CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	pickupPoint, err := kernel.NewGeoPoint(req.PickupLat, req.PickupLng)
	if err != nil {
		return badRequest(ctx, "invalid pickup point: "+err.Error())
	}
	deliveryPoint, err := kernel.NewGeoPoint(req.DeliveryLat, req.DeliveryLng)
	if err != nil {
		return badRequest(ctx, "invalid delivery point: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		req.PickupAddress, pickupPoint,
		req.DeliveryAddress, deliveryPoint,
		req.EstimatedPickupTime, req.EstimatedDeliveryTime,
	)
	if err != nil {
		return badRequest(ctx, "invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// BroadcastOrder handles POST /api/v1/orders/{orderId}/broadcast - offers the
// order to a set of drivers.
func (s *Server) BroadcastOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var req servers.BroadcastRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	driverIDs := make([]kernel.UUID, len(req.DriverIds))
	for i, id := range req.DriverIds {
		driverIDs[i] = pathUUID(id)
	}

	cmd, err := commands.NewBroadcastAssignmentCommand(pathUUID(orderId), driverIDs)
	if err != nil {
		return badRequest(ctx, "invalid broadcast data: "+err.Error())
	}

	if err := s.broadcastHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// RespondToAssignment handles POST /api/v1/orders/{orderId}/respond - accepts
// or rejects an offered assignment. Accepting an order another driver already
// claimed returns 409.
func (s *Server) RespondToAssignment(ctx echo.Context, orderId openapi_types.UUID) error {
	var req servers.RespondRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRespondAssignmentCommand(
		pathUUID(orderId), pathUUID(req.DriverId), req.Accept, deref(req.RejectReason))
	if err != nil {
		return badRequest(ctx, "invalid response data: "+err.Error())
	}

	if err := s.respondHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/{orderId}/assign - assigns a driver
// directly, bypassing the broadcast flow.
func (s *Server) AssignDriver(ctx echo.Context, orderId openapi_types.UUID) error {
	var req servers.AssignDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var vehicleID *kernel.UUID
	if req.VehicleId != nil {
		id := pathUUID(*req.VehicleId)
		vehicleID = &id
	}

	cmd, err := commands.NewAssignDriverCommand(pathUUID(orderId), pathUUID(req.DriverId), vehicleID)
	if err != nil {
		return badRequest(ctx, "invalid assignment data: "+err.Error())
	}

	if err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status - moves the
// order along its lifecycle and records a tracking entry.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var req servers.UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "invalid status: "+err.Error())
	}

	point, err := optionalPoint(req.Lat, req.Lng)
	if err != nil {
		return badRequest(ctx, "invalid position: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(pathUUID(orderId), newStatus, point, deref(req.Note))
	if err != nil {
		return badRequest(ctx, "invalid status data: "+err.Error())
	}

	if err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DriverCheckin handles POST /api/v1/orders/{orderId}/checkin - a pickup or
// delivery check-in by the assigned driver.
func (s *Server) DriverCheckin(ctx echo.Context, orderId openapi_types.UUID) error {
	var req servers.CheckinRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	kind, err := commands.CheckinKindFromString(req.Kind)
	if err != nil {
		return badRequest(ctx, "invalid checkin kind: "+err.Error())
	}

	point, err := optionalPoint(req.Lat, req.Lng)
	if err != nil {
		return badRequest(ctx, "invalid position: "+err.Error())
	}

	cmd, err := commands.NewDriverCheckinCommand(
		pathUUID(orderId), pathUUID(req.DriverId), kind, point,
		deref(req.PhotoUrl), deref(req.Signature), deref(req.ReceiverName))
	if err != nil {
		return badRequest(ctx, "invalid checkin data: "+err.Error())
	}

	if err := s.checkinHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var req servers.CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(pathUUID(orderId), req.Reason)
	if err != nil {
		return badRequest(ctx, "invalid cancellation data: "+err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderTracking handles GET /api/v1/orders/{orderId}/tracking - returns the
// order's tracking history in chronological order.
func (s *Server) GetOrderTracking(ctx echo.Context, orderId openapi_types.UUID) error {
	query, err := queries.NewGetOrderTrackingQuery(pathUUID(orderId))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	history, err := s.orderTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.TrackingEntry, len(history))
	for i, entry := range history {
		item := servers.TrackingEntry{
			Status:    entry.Status,
			CreatedAt: entry.CreatedAt,
		}
		if entry.Point != nil {
			lat, lng := entry.Point.Lat(), entry.Point.Lng()
			item.Lat, item.Lng = &lat, &lng
		}
		if entry.Note != "" {
			note := entry.Note
			item.Note = &note
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriverOrders handles GET /api/v1/drivers/{driverId}/orders - the driver's
// active orders plus open offers awaiting a response.
func (s *Server) GetDriverOrders(ctx echo.Context, driverId openapi_types.UUID) error {
	query, err := queries.NewGetAssignedOrdersQuery(pathUUID(driverId))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	rows, err := s.assignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.AssignedOrder, len(rows))
	for i, row := range rows {
		response[i] = servers.AssignedOrder{
			Id:              row.OrderID.Bytes(),
			OrderCode:       row.OrderCode,
			Status:          row.Status,
			PickupAddress:   row.PickupAddress,
			PickupLat:       row.PickupPoint.Lat(),
			PickupLng:       row.PickupPoint.Lng(),
			DeliveryAddress: row.DeliveryAddress,
			DeliveryLat:     row.DeliveryPoint.Lat(),
			DeliveryLng:     row.DeliveryPoint.Lng(),
			Price:           row.Price.String(),
			OfferPending:    row.OfferPending,
			AssignedAt:      row.AssignedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriverKpi handles GET /api/v1/drivers/{driverId}/kpi. The date defaults
// to today when omitted.
func (s *Server) GetDriverKpi(ctx echo.Context, driverId openapi_types.UUID, params servers.GetDriverKpiParams) error {
	date := time.Now()
	if params.Date != nil {
		date = params.Date.Time
	}

	query, err := queries.NewGetDriverKPIQuery(pathUUID(driverId), date)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	kpi, err := s.driverKPIHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DriverKpi{
		DriverId:           kpi.DriverID.Bytes(),
		DriverName:         kpi.DriverName,
		Rating:             kpi.Rating,
		TotalDelivered:     kpi.TotalDelivered,
		TodayDelivered:     kpi.TodayDelivered,
		MonthDelivered:     kpi.MonthDelivered,
		PendingAssignments: kpi.PendingAssignments,
		InTransitOrders:    kpi.InTransitOrders,
		DailyTarget:        kpi.DailyTarget,
		TargetMet:          kpi.TargetMet,
	})
}

// GetFleetKpi handles GET /api/v1/kpi/fleet. The date defaults to today when
// omitted.
func (s *Server) GetFleetKpi(ctx echo.Context, params servers.GetFleetKpiParams) error {
	date := time.Now()
	if params.Date != nil {
		date = params.Date.Time
	}

	kpi, err := s.fleetKPIHandler.Handle(ctx.Request().Context(), queries.NewGetFleetKPIQuery(date))
	if err != nil {
		return errorResponse(ctx, err)
	}

	drivers := make([]servers.FleetDriver, len(kpi.Drivers))
	for i, row := range kpi.Drivers {
		drivers[i] = servers.FleetDriver{
			DriverId:       row.DriverID.Bytes(),
			DriverName:     row.DriverName,
			Rating:         row.Rating,
			DailyTarget:    row.DailyTarget,
			TodayDelivered: row.TodayDelivered,
			TargetMet:      row.TargetMet,
		}
	}

	return ctx.JSON(http.StatusOK, servers.FleetKpi{
		Date:           openapi_types.Date{Time: kpi.Date},
		Drivers:        drivers,
		TotalDelivered: kpi.TotalDelivered,
		DriversOnRoad:  kpi.DriversOnRoad,
	})
}

// StartChargingSession handles POST /api/v1/charging/sessions - reserves a
// port and opens a session for the driver's vehicle.
func (s *Server) StartChargingSession(ctx echo.Context) error {
	var req servers.StartSessionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	sessionID := kernel.NewUUID()
	cmd, err := commands.NewStartChargingSessionCommand(
		sessionID, pathUUID(req.DriverId), pathUUID(req.DepotId), pathUUID(req.PortId))
	if err != nil {
		return badRequest(ctx, "invalid session data: "+err.Error())
	}

	if err := s.startChargingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.SessionCreated{Id: sessionID.Bytes()})
}

// EndChargingSession handles POST /api/v1/charging/sessions/{sessionId}/end -
// completes the session and releases its port.
func (s *Server) EndChargingSession(ctx echo.Context, sessionId openapi_types.UUID) error {
	var req servers.EndSessionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewEndChargingSessionCommand(
		pathUUID(sessionId), req.EndBatteryPercent, req.EnergyConsumedKwh)
	if err != nil {
		return badRequest(ctx, "invalid session data: "+err.Error())
	}

	if err := s.endChargingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveChargingSession handles GET /api/v1/drivers/{driverId}/charging/session.
// Returns 404 when the driver has no session in progress.
func (s *Server) GetActiveChargingSession(ctx echo.Context, driverId openapi_types.UUID) error {
	query, err := queries.NewGetActiveSessionQuery(pathUUID(driverId))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	session, err := s.activeSessionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ChargingSession{
		Id:           session.SessionID.Bytes(),
		VehicleId:    session.VehicleID.Bytes(),
		DepotId:      session.DepotID.Bytes(),
		DepotName:    session.DepotName,
		PortNumber:   session.PortNumber,
		StartTime:    session.StartTime,
		StartBattery: session.StartBattery,
	})
}

// GetDepotStats handles GET /api/v1/charging/depots/{depotId}/stats.
func (s *Server) GetDepotStats(ctx echo.Context, depotId openapi_types.UUID) error {
	query, err := queries.NewGetDepotStatsQuery(pathUUID(depotId))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	stats, err := s.depotStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DepotStats{
		Id:               stats.DepotID.Bytes(),
		Name:             stats.Name,
		Active:           stats.Active,
		TotalPorts:       stats.TotalPorts,
		AvailablePorts:   stats.AvailablePorts,
		OccupiedPorts:    stats.OccupiedPorts,
		MaintenancePorts: stats.MaintenancePorts,
		OfflinePorts:     stats.OfflinePorts,
		ActiveSessions:   stats.ActiveSessions,
	})
}

// errorResponse translates domain errors to HTTP status codes. Conflict-class
// errors keep their message so clients can show the human-readable reason.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrResourceUnavailable):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrUnavailable):
		code = http.StatusServiceUnavailable
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// pathUUID converts a bound UUID parameter. The value is always 16 bytes
// after binding, so the conversion cannot fail.
func pathUUID(id openapi_types.UUID) kernel.UUID {
	u, _ := kernel.UUIDFromBytes(id[:])
	return u
}

// optionalPoint builds a position from optional coordinates. Both must be
// present or both absent.
func optionalPoint(lat, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, errs.NewValueIsInvalidError("lat/lng")
	}

	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
