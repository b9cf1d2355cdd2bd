package impl

import (
	"io"
	"log/slog"
	"time"

	"guestbook/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(pollInterval time.Duration) *config.Config {
	return &config.Config{
		Watch: config.WatchConfig{PollInterval: pollInterval},
	}
}
