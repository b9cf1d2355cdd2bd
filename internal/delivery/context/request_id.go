// Package context carries the request id and the request-scoped logger from the
// wishes API and the notification push endpoint down into the wish use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
)

const (
	// HeaderXRequestID carries the request id in and out of the wishes API.
	HeaderXRequestID = "X-Request-Id"

	// AttrRequestID names the request id in log records and push message
	// attributes, so a submission and the host notification it triggers share one id.
	AttrRequestID = "request_id"

	// AttrInvitationID names the invitation in log records.
	AttrInvitationID = "invitation_id"

	echoRequestIDKey = "guestbook.request_id"
)

// GetRequestID returns the id stored by the request id middleware. Outside the
// middleware a fresh id is minted.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns the request id, or "" when ctx did not come
// through the API or the push endpoint.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// Scope stores requestID on ctx together with base tagged by it. Both deliveries
// enter the wish use cases through here.
func Scope(ctx context.Context, base *slog.Logger, requestID string) context.Context {
	ctx = WithRequestID(ctx, requestID)

	return WithLogger(ctx, base.With(slog.String(AttrRequestID, requestID)))
}

// WithInvitation tags the scoped logger with the invitation being served.
// ctx is returned unchanged when it has no logger or the id is empty.
func WithInvitation(ctx context.Context, invitationID string) context.Context {
	logger := GetLogger(ctx)
	if logger == nil || invitationID == "" {
		return ctx
	}

	return WithLogger(ctx, logger.With(slog.String(AttrInvitationID, invitationID)))
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
