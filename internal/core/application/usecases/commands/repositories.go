// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"greenfleet/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// DepotRepoFactory provides access to the depot repository within a transaction.
	DepotRepoFactory interface {
		DepotRepository() ports.DepotRepository
	}

	// SessionRepoFactory provides access to the session repository within a transaction.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// OrderUoW manages transactions for order-only operations, including the
	// tracking history writes.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DispatchUoW manages transactions across the dispatch aggregates:
	// orders, their assignments, drivers, and the vehicles they ride.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		AssignmentRepoFactory
		DriverRepoFactory
		VehicleRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// ChargingUoW manages transactions across the charging aggregates:
	// drivers, vehicles, depots with their ports, and sessions.
	ChargingUoW interface {
		TxManager
		DriverRepoFactory
		VehicleRepoFactory
		DepotRepoFactory
		SessionRepoFactory
	}

	// ChargingUoWFactory creates new charging unit of work instances.
	ChargingUoWFactory interface {
		Create() ChargingUoW
	}
)
