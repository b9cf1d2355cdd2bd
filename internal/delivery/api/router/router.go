// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"log/slog"

	"guestbook/config"
	"guestbook/internal/delivery/api/middleware"
	"guestbook/internal/delivery/api/router/handler"
	"guestbook/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WishHandler       *handler.WishHandler
	InvitationHandler *handler.InvitationHandler
	Metrics           *metrics.Metrics
	Config            *config.Config
	Logger            *slog.Logger
}

// router holds all the handlers that need to be registered.
type router struct {
	wishHandler       *handler.WishHandler
	invitationHandler *handler.InvitationHandler
	metrics           *metrics.Metrics
	config            *config.Config
	logger            *slog.Logger
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		wishHandler:       params.WishHandler,
		invitationHandler: params.InvitationHandler,
		metrics:           params.Metrics,
		config:            params.Config,
		logger:            params.Logger,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	api := e.Group("/api")

	wishesGroup := api.Group("/wishes")
	{
		wishesGroup.GET("", r.wishHandler.ListWishes)
		wishesGroup.GET("/state", r.wishHandler.GuestState)
		wishesGroup.GET("/stream", r.wishHandler.StreamWishes)

		if limiter := middleware.NewRateLimiter(r.config.HTTP.RateLimit, r.logger); limiter != nil {
			wishesGroup.POST("", r.wishHandler.SubmitWish, limiter)
		} else {
			wishesGroup.POST("", r.wishHandler.SubmitWish)
		}
	}

	invitationsGroup := api.Group("/invitations/:invitationId")
	{
		invitationsGroup.GET("/link", r.invitationHandler.GuestLink)
		invitationsGroup.GET("/qr", r.invitationHandler.GuestQRCode)
	}
}
