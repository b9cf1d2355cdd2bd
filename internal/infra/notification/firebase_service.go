// Package notification sends push notifications to the hosts' devices.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"guestbook/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a Cloud Messaging backed notification service
func NewFirebaseService(ctx context.Context, app *firebase.App) (service.NotificationService, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendTopicNotification sends a push notification to every device subscribed to topic
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if IsRetryable(err) {
			return fmt.Errorf("failed to send topic notification: %w: %w", service.ErrNotificationUnavailable, err)
		}

		return fmt.Errorf("failed to send topic notification: %w", err)
	}

	return nil
}

// IsRetryable reports whether a send failure may succeed on redelivery
func IsRetryable(err error) bool {
	return messaging.IsUnavailable(err) || messaging.IsInternal(err) || messaging.IsQuotaExceeded(err)
}

// noopService drops notifications when push notifications are disabled
type noopService struct {
	logger *slog.Logger
}

// NewNoopService creates a notification service that only logs
func NewNoopService(logger *slog.Logger) service.NotificationService {
	return &noopService{logger: logger}
}

func (s *noopService) SendTopicNotification(ctx context.Context, topic, title, _ string, _ map[string]string) error {
	s.logger.DebugContext(ctx, "[NoopNotification] Notifications disabled, skipping",
		slog.String("topic", topic),
		slog.String("title", title),
	)

	return nil
}
