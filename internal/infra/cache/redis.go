// Package cache provides the read-through cache of listed wishes.
package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"guestbook/internal/domain/entity"
	"guestbook/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	wishesKeyPrefix     = "guestbook:wishes:"
	generationKeyPrefix = "guestbook:wishes-gen:"

	// generationTTL outlives any list fetch racing an invalidation.
	generationTTL = 24 * time.Hour
)

// setIfGeneration writes KEYS[1] only while KEYS[2] still holds ARGV[1].
// A missing generation counts as 0.
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[1] then
	return 0
end
local ttl = tonumber(ARGV[3])
if ttl > 0 then
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ttl)
else
	redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`)

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a cache storing each invitation's list as one JSON value.
func NewRedisCache(client *redis.Client, ttl time.Duration) *redisCache {
	return &redisCache{client: client, ttl: ttl}
}

// The hash tag keeps both keys of an invitation in one cluster slot.
func wishesKey(invitationID string) string {
	return wishesKeyPrefix + "{" + invitationID + "}"
}

func generationKey(invitationID string) string {
	return generationKeyPrefix + "{" + invitationID + "}"
}

// GetWishes returns the cached list of an invitation.
func (c *redisCache) GetWishes(ctx context.Context, invitationID string) ([]*entity.Wish, bool, error) {
	buf, err := c.client.Get(ctx, wishesKey(invitationID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get error")
	}

	var wishes []*entity.Wish
	if err := json.Unmarshal(buf, &wishes); err != nil {
		return nil, false, errors.Wrap(err, "redis unmarshal error")
	}

	return wishes, true, nil
}

// Generation returns the invalidation counter of an invitation, 0 when never invalidated.
func (c *redisCache) Generation(ctx context.Context, invitationID string) (int64, error) {
	generation, err := c.client.Get(ctx, generationKey(invitationID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "redis get generation error")
	}

	return generation, nil
}

// SetWishes stores the list for the configured TTL while the generation is unchanged.
func (c *redisCache) SetWishes(ctx context.Context, invitationID string, generation int64, wishes []*entity.Wish) error {
	buf, err := json.Marshal(wishes)
	if err != nil {
		return errors.Wrap(err, "unable to marshal for Redis cache")
	}

	keys := []string{wishesKey(invitationID), generationKey(invitationID)}
	args := []any{strconv.FormatInt(generation, 10), buf, c.ttl.Milliseconds()}
	if err := setIfGeneration.Run(ctx, c.client, keys, args...).Err(); err != nil {
		return errors.Wrap(err, "redis set error")
	}

	return nil
}

// Invalidate drops the cached list and advances the generation in one transaction.
func (c *redisCache) Invalidate(ctx context.Context, invitationID string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(invitationID))
		pipe.Expire(ctx, generationKey(invitationID), generationTTL)
		pipe.Del(ctx, wishesKey(invitationID))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "redis invalidate error")
	}

	return nil
}
