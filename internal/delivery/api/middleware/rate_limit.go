package middleware

import (
	"log/slog"

	"guestbook/config"
	deliverycontext "guestbook/internal/delivery/context"
	domainerrors "guestbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewRateLimiter limits requests per client IP. It returns nil when limiting is disabled.
func NewRateLimiter(cfg *config.RateLimitConfig, logger *slog.Logger) echo.MiddlewareFunc {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.Rate),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.Expires,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return domainerrors.ErrTooManyRequests
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), logger).Warn("Rate limit exceeded",
				slog.String("remote_ip", identifier),
				slog.String("path", c.Path()),
			)

			return domainerrors.ErrTooManyRequests
		},
	})
}
