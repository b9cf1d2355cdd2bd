package cache

import (
	"context"
	"log/slog"

	"guestbook/config"
	"guestbook/internal/domain/lifecycle"
	"guestbook/internal/domain/service"
	"guestbook/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the wish cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New returns the Redis cache when redis.host is configured and a noop cache otherwise
func New(params Params) service.WishCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Host == "" {
		params.Logger.Warn("No wish list cache in use")

		return NewNoOpCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Using Redis wish list cache",
		slog.String("addr", cfg.Addr()),
		slog.Duration("ttl", params.Config.Cache.TTL),
	)

	return NewRedisCache(client, params.Config.Cache.TTL)
}
