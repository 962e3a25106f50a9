package ports

import (
	"context"

	"greenfleet/internal/core/domain/model/kernel"
)

// Notification is the message handed to the Notifier. Payload is opaque
// context for the receiving client (order IDs, port numbers and the like).
type Notification struct {
	UserID  kernel.UUID
	Title   string
	Message string
	Payload map[string]any
}

// Notifier delivers notifications to users. Delivery is best-effort: callers
// log failures and never fail the business operation over them.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}
