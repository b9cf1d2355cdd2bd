package cache

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"guestbook/config"
	"guestbook/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNoOpCache(t *testing.T) {
	c := NewNoOpCache()

	generation, err := c.Generation(t.Context(), "w1")
	require.NoError(t, err)
	assert.Zero(t, generation)
	require.NoError(t, c.SetWishes(t.Context(), "w1", generation, []*entity.Wish{{ID: "w1_raka"}}))

	wishes, ok, err := c.GetWishes(t.Context(), "w1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, wishes)
	require.NoError(t, c.Invalidate(t.Context(), "w1"))
}

func TestNew_WithoutRedisUsesNoOp(t *testing.T) {
	c := New(Params{Lc: fxtest.NewLifecycle(t), Config: &config.Config{}, Logger: slog.Default()})

	_, isNoOp := c.(*noOpCache)
	assert.True(t, isNoOp)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "guestbook:wishes:{w1}", wishesKey("w1"))
	assert.Equal(t, "guestbook:wishes-gen:{w1}", generationKey("w1"))
}

func newTestRedisCache(t *testing.T) *redisCache {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache(client, time.Minute)
}

func TestRedisCache_RoundTrip(t *testing.T) {
	c := newTestRedisCache(t)
	invitationID := "test-" + uuid.NewString()
	wishes := []*entity.Wish{
		{ID: invitationID + "_raka", InvitationID: invitationID, Name: "Raka", NameKey: "raka", Message: "hi",
			CreatedAt: time.Date(2026, 5, 17, 8, 30, 0, 0, time.UTC)},
		{ID: "legacy", InvitationID: invitationID, Name: "Old", Message: "hello"},
	}

	_, ok, err := c.GetWishes(t.Context(), invitationID)
	require.NoError(t, err)
	assert.False(t, ok)

	generation, err := c.Generation(t.Context(), invitationID)
	require.NoError(t, err)
	require.NoError(t, c.SetWishes(t.Context(), invitationID, generation, wishes))

	cached, ok, err := c.GetWishes(t.Context(), invitationID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, wishes, cached)

	require.NoError(t, c.Invalidate(t.Context(), invitationID))
	_, ok, err = c.GetWishes(t.Context(), invitationID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_StaleFillIsDropped(t *testing.T) {
	c := newTestRedisCache(t)
	invitationID := "test-" + uuid.NewString()
	stale := []*entity.Wish{}

	// A list fetch reads the generation, then a submit invalidates before the fill.
	generation, err := c.Generation(t.Context(), invitationID)
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(t.Context(), invitationID))
	require.NoError(t, c.SetWishes(t.Context(), invitationID, generation, stale))

	_, ok, err := c.GetWishes(t.Context(), invitationID)
	require.NoError(t, err)
	assert.False(t, ok)

	current, err := c.Generation(t.Context(), invitationID)
	require.NoError(t, err)
	assert.Equal(t, generation+1, current)

	fresh := []*entity.Wish{{ID: invitationID + "_raka", InvitationID: invitationID, Name: "Raka", NameKey: "raka", Message: "hi"}}
	require.NoError(t, c.SetWishes(t.Context(), invitationID, current, fresh))

	cached, ok, err := c.GetWishes(t.Context(), invitationID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, fresh, cached)
}
