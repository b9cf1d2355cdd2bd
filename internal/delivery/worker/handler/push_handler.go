// Package handler serves Pub/Sub push deliveries for the notifier worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"guestbook/config"
	deliverycontext "guestbook/internal/delivery/context"
	"guestbook/internal/domain/constants"
	"guestbook/internal/domain/service"
	"guestbook/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const maxPreviewRunes = 120

// Notification results
const (
	ResultSent   = "sent"
	ResultRetry  = "retry"
	ResultFailed = "failed"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NotificationMetrics counts notification results
type NotificationMetrics interface {
	ObserveNotification(result string)
}

// PushHandler turns WishPosted events into push notifications for the hosts
type PushHandler struct {
	verifyPushAuth  bool
	verify          func(*http.Request) error
	logger          *slog.Logger
	notificationSvc service.NotificationService
	metrics         NotificationMetrics
	topicPrefix     string
	title           string
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	Metrics         NotificationMetrics `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	handler := &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		verify:          verifyPubSubToken,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		metrics:         params.Metrics,
	}
	if params.Config.Notification != nil {
		handler.topicPrefix = params.Config.Notification.TopicPrefix
		handler.title = params.Config.Notification.Title
	}

	return handler
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.WishPostedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse wish event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	if event.InvitationID == "" || event.WishID == "" {
		h.logger.Error("[Worker] Wish event without invitation or wish id",
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	ctx = deliverycontext.Scope(ctx, h.logger, requestID)
	ctx = deliverycontext.WithInvitation(ctx, event.InvitationID)
	reqLogger := deliverycontext.GetLogger(ctx)

	topic := TopicFor(h.topicPrefix, event.InvitationID)
	reqLogger.Info("[Worker] Notifying hosts of new wish",
		slog.String("wish_id", event.WishID),
		slog.String("topic", topic),
	)

	err = h.notificationSvc.SendTopicNotification(ctx, topic, h.title, notificationBody(&event), map[string]string{
		"invitationId": event.InvitationID,
		"wishId":       event.WishID,
		"nameKey":      event.NameKey,
	})
	if err != nil {
		retryable := errors.Is(err, service.ErrNotificationUnavailable)
		reqLogger.Error("[Worker] Failed to notify hosts",
			slog.String("wish_id", event.WishID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		// Answer 5xx only for retryable errors so Pub/Sub redelivers;
		// acknowledge permanent failures to prevent infinite retries.
		if retryable {
			h.observe(ResultRetry)

			return c.NoContent(http.StatusInternalServerError)
		}
		h.observe(ResultFailed)

		return c.NoContent(http.StatusOK)
	}

	h.observe(ResultSent)
	reqLogger.Info("[Worker] Hosts notified", slog.String("wish_id", event.WishID))

	return c.NoContent(http.StatusOK)
}

func (h *PushHandler) observe(result string) {
	if h.metrics != nil {
		h.metrics.ObserveNotification(result)
	}
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.WishPostedEvent) string {
	if requestID, ok := pushMsg.Message.Attributes[deliverycontext.AttrRequestID]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// From RequestIDMiddleware via X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// TopicFor returns the messaging topic of an invitation. Characters outside the
// topic alphabet are percent-encoded.
func TopicFor(prefix, invitationID string) string {
	var b strings.Builder
	b.WriteString(prefix)

	for i := range len(invitationID) {
		ch := invitationID[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9',
			ch == '-', ch == '_', ch == '.', ch == '~':
			b.WriteByte(ch)
		default:
			fmt.Fprintf(&b, "%%%02X", ch)
		}
	}

	return b.String()
}

func notificationBody(event *service.WishPostedEvent) string {
	message := event.Message
	if utf8.RuneCountInString(message) > maxPreviewRunes {
		message = string([]rune(message)[:maxPreviewRunes]) + "…"
	}

	return event.Name + ": " + message
}
