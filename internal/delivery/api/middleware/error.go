package middleware

import (
	"log/slog"
	"net/http"

	"guestbook/internal/delivery/api/response"
	deliverycontext "guestbook/internal/delivery/context"
	domainerrors "guestbook/internal/domain/errors"
	"guestbook/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if conflict, ok := errors.AsType[*domainerrors.WishConflictError](err); ok {
		_ = response.Conflict(c, conflict.Existing)

		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(c, err)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logError(c, err)
			message = domainerrors.MsgTryAgain
		}

		_ = response.Error(c, httpErr.Code, message)

		return
	}

	m.logError(c, err)

	// For 500 errors, do not expose internal error details to the client
	_ = response.InternalServerError(c)
}

func (m *ErrorMiddleware) logError(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

// StatusOf returns the status HandleHTTPError will answer for err.
func StatusOf(err error) int {
	if _, ok := errors.AsType[*domainerrors.WishConflictError](err); ok {
		return http.StatusConflict
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
