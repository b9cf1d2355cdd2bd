package service

import (
	"context"

	"guestbook/internal/errors"
)

// ErrNotificationUnavailable marks send failures that may succeed when retried.
var ErrNotificationUnavailable = errors.New("notification service temporarily unavailable")

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendTopicNotification sends a push notification to every device subscribed to topic
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error
}
