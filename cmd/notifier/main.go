package main

import (
	"context"
	"log/slog"
	"os"

	"guestbook/config"
	"guestbook/internal/delivery"
	"guestbook/internal/delivery/worker"
	"guestbook/internal/delivery/worker/handler"
	"guestbook/internal/domain/service"
	firebaseinfra "guestbook/internal/infra/firebase"
	logs "guestbook/internal/infra/log"
	"guestbook/internal/infra/metrics"
	"guestbook/internal/infra/notification"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		func(m *metrics.Metrics) handler.NotificationMetrics { return m },
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newNotificationService,
		),
	)
}

// newNotificationService sends through Firebase Cloud Messaging when notifications are enabled
func newNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Notification == nil || !cfg.Notification.Enabled {
		logger.Info("Notifications disabled, using no-op notification service")

		return notification.NewNoopService(logger), nil
	}

	app, err := firebaseinfra.NewApp(ctx, cfg.Firebase)
	if err != nil {
		return nil, err
	}

	return notification.NewFirebaseService(ctx, app)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
