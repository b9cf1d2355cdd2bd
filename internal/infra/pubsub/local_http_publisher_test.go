package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guestbook/config"
	"guestbook/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLocalHTTPPublisher_PublishWishPosted(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	event := &service.WishPostedEvent{
		RequestID:    "req-1",
		EventID:      "evt-1",
		WishID:       "w1_raka",
		InvitationID: "w1",
		Name:         "Raka",
		NameKey:      "raka",
		Message:      "Congrats!",
		CreatedAt:    time.Date(2026, 5, 17, 8, 30, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishWishPosted(t.Context(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "w1", received.Message.Attributes["invitation_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.WishPostedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	err := publisher.PublishWishPosted(t.Context(), &service.WishPostedEvent{EventID: "evt-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestNewEventPublisher(t *testing.T) {
	newParams := func(cfg *config.Config) PublisherParams {
		return PublisherParams{Lc: fxtest.NewLifecycle(t), Ctx: t.Context(), Config: cfg, Logger: slog.Default()}
	}

	publisher, err := NewEventPublisher(newParams(&config.Config{}))
	require.NoError(t, err)
	_, isNoop := publisher.(*noopPublisher)
	assert.True(t, isNoop)
	require.NoError(t, publisher.PublishWishPosted(t.Context(), &service.WishPostedEvent{}))

	_, err = NewEventPublisher(newParams(&config.Config{PubSub: &config.PubSubConfig{Provider: "local"}}))
	require.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}))
	require.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}}))
	require.Error(t, err)

	local, err := NewEventPublisher(newParams(&config.Config{PubSub: &config.PubSubConfig{
		Provider: "local", LocalEndpoint: "http://localhost:8081/push",
	}}))
	require.NoError(t, err)
	assert.NotNil(t, local)
}
