package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"guestbook/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
	// Output defaults to stdout. The guestpass CLI logs to stderr so links and
	// tokens on stdout stay pipeable.
	Output io.Writer `optional:"true"`
}

// New builds the process logger. Every record carries the service and env
// names, so API and notifier lines can be told apart in one log stream.
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewJSONHandler(out, opts)
	if params.Config.Env.Log.Pretty {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler).With(serviceAttrs(params.Config)...), nil
}

func serviceAttrs(cfg *config.Config) []any {
	var attrs []any
	if cfg.Env.ServiceName != "" {
		attrs = append(attrs, slog.String("service", cfg.Env.ServiceName))
	}
	if cfg.Env.Env != "" {
		attrs = append(attrs, slog.String("env", cfg.Env.Env))
	}

	return attrs
}

// parseLogLevel maps the configured level; an empty level means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
