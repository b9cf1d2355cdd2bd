package main

import (
	"context"
	"log/slog"
	"os"

	"guestbook/config"
	"guestbook/internal/delivery"
	"guestbook/internal/delivery/api"
	"guestbook/internal/delivery/api/router/handler"
	"guestbook/internal/domain/service"
	"guestbook/internal/infra/auth"
	"guestbook/internal/infra/cache"
	logs "guestbook/internal/infra/log"
	"guestbook/internal/infra/metrics"
	"guestbook/internal/infra/persistence"
	"guestbook/internal/infra/pubsub"
	"guestbook/internal/infra/qrcode"
	"guestbook/internal/usecase/impl"

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
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			metrics.New,
			func(m *metrics.Metrics) service.WishMetrics { return m },
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		persistence.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			cache.New,
			auth.NewGuestPassService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Links cannot be built without a base URL; QR requests answer 500
		return qrcode.NewQRCodeService("", 256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.BaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewWishService,
			impl.NewWishWatcher,
			impl.NewInvitationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWishHandler,
			handler.NewInvitationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
