package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"guestbook/config"
	"guestbook/internal/domain/entity"
	"guestbook/internal/usecase"

	"go.uber.org/fx"
)

type wishWatcher struct {
	wishes   usecase.WishUsecase
	interval time.Duration
	logger   *slog.Logger
}

// WishWatcherParams holds dependencies for WishWatcher, injected by Fx.
type WishWatcherParams struct {
	fx.In

	Wishes usecase.WishUsecase
	Config *config.Config
	Logger *slog.Logger
}

// NewWishWatcher creates a polling watcher over ListWishes.
func NewWishWatcher(params WishWatcherParams) usecase.WishWatcher {
	return newWishWatcher(params.Wishes, params.Config.Watch.PollInterval, params.Logger)
}

func newWishWatcher(wishes usecase.WishUsecase, interval time.Duration, logger *slog.Logger) *wishWatcher {
	return &wishWatcher{
		wishes:   wishes,
		interval: interval,
		logger:   logger,
	}
}

// OnWishesChanged calls callback with the current list and again whenever it changes.
// The returned function stops polling and waits for the poller to exit.
func (w *wishWatcher) OnWishesChanged(
	ctx context.Context,
	invitationID string,
	callback func([]*entity.Wish),
) func() {
	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Go(func() {
		w.poll(ctx, invitationID, callback)
	})

	var once sync.Once

	return func() {
		once.Do(func() {
			cancel()
			wg.Wait()
		})
	}
}

func (w *wishWatcher) poll(ctx context.Context, invitationID string, callback func([]*entity.Wish)) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	last := ""
	first := true

	for {
		wishes, err := w.wishes.ListWishes(ctx, invitationID)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return
			}
			w.logger.Warn("Failed to poll wishes",
				slog.String("invitation_id", invitationID),
				slog.Any("error", err),
			)
		case first || fingerprint(wishes) != last:
			first = false
			last = fingerprint(wishes)
			callback(wishes)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// fingerprint identifies a list by its ids and creation times.
func fingerprint(wishes []*entity.Wish) string {
	var b strings.Builder
	for _, wish := range wishes {
		b.WriteString(wish.ID)
		b.WriteByte('@')
		b.WriteString(strconv.FormatInt(wish.CreatedAt.UnixMilli(), 10))
		b.WriteByte(';')
	}

	return b.String()
}
