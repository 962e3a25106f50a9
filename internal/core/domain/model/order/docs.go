// Package order provides domain entities and business logic for the dispatch
// engine. It implements the Order aggregate root with lifecycle management,
// the broadcast Assignment entity, and the append-only tracking history.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, pricing, driver
//     assignment, and lifecycle transitions
//   - Status: A state machine that enforces valid order status transitions
//   - Assignment: A broadcast offer of an order to a driver with a single
//     accept/reject decision point
//   - TrackingEntry: An immutable history row recorded after lifecycle events
//
// Key business rules:
//   - Orders start Pending and follow the workflow Pending -> Confirmed ->
//     PickupReady -> InTransit -> Delivered, with shortcuts for the broadcast
//     accept path and cancellation from any non-terminal state
//   - Exactly one driver can win an order; a losing responder gets a conflict
//     with the reason "order already taken"
//   - A responded assignment never changes its response
//   - Delivered and Cancelled orders are immutable
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
