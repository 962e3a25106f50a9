// Package notify persists outbound notifications. Rows in the notifications
// table form a feed the driver clients poll; a push gateway can drain the
// same table later without changing callers.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"greenfleet/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationDTO represents the database structure for stored notifications.
type NotificationDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;index"`
	Title   string
	Message string
	Payload []byte `gorm:"type:jsonb"`
	Read    bool   `gorm:"index"`

	CreatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

// GormNotifier implements ports.Notifier by writing notifications to the
// database.
type GormNotifier struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormNotifier creates a database-backed notifier.
func NewGormNotifier(db *gorm.DB, logger *slog.Logger) *GormNotifier {
	return &GormNotifier{
		db:     db,
		logger: logger.With("component", "notifier"),
	}
}

// Notify stores the notification for delivery.
func (n *GormNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	payload, err := json.Marshal(notification.Payload)
	if err != nil {
		return err
	}

	dto := NotificationDTO{
		ID:      uuid.New(),
		UserID:  notification.UserID.Bytes(),
		Title:   notification.Title,
		Message: notification.Message,
		Payload: payload,
	}

	if err := n.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	n.logger.DebugContext(ctx, "notification stored",
		"user_id", notification.UserID.String(),
		"title", notification.Title)
	return nil
}
