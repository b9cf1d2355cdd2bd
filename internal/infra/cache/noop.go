package cache

import (
	"context"

	"guestbook/internal/domain/entity"
)

// A noop cache doesn't actually cache anything, but provides an implementation
// of the caching interface
type noOpCache struct{}

func NewNoOpCache() *noOpCache {
	return &noOpCache{}
}

// GetWishes always misses
func (c *noOpCache) GetWishes(context.Context, string) ([]*entity.Wish, bool, error) {
	return nil, false, nil
}

// Generation is always 0
func (c *noOpCache) Generation(context.Context, string) (int64, error) {
	return 0, nil
}

// SetWishes discards the list
func (c *noOpCache) SetWishes(context.Context, string, int64, []*entity.Wish) error {
	return nil
}

// Invalidate has nothing to drop
func (c *noOpCache) Invalidate(context.Context, string) error {
	return nil
}
