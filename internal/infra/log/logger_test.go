package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"guestbook/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "warn"

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelWarn))
}

func TestNew_TagsServiceAndEnv(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Env = "staging"
	cfg.Env.ServiceName = "guestbook-api"

	logger, err := New(Params{Config: cfg, Output: &buf})
	require.NoError(t, err)
	logger.Info("Wish posted", slog.String("wish_id", "w1_raka"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "guestbook-api", record["service"])
	assert.Equal(t, "staging", record["env"])
	assert.Equal(t, "w1_raka", record["wish_id"])
}

func TestNew_PrettyWithoutServiceName(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true

	logger, err := New(Params{Config: cfg, Output: &buf})
	require.NoError(t, err)
	logger.Info("Hosts notified")

	assert.Contains(t, buf.String(), "msg=\"Hosts notified\"")
	assert.NotContains(t, buf.String(), "service=")
}

func TestNew_UnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "verbose"

	_, err := New(Params{Config: cfg})
	assert.ErrorContains(t, err, "unknown log level")
}
