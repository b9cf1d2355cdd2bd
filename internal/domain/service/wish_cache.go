package service

import (
	"context"

	"guestbook/internal/domain/entity"
)

// WishCache caches the listed wishes of an invitation.
type WishCache interface {
	// GetWishes returns the cached list and whether it was present.
	GetWishes(ctx context.Context, invitationID string) ([]*entity.Wish, bool, error)

	// Generation returns the invalidation counter of an invitation. Read it before
	// fetching the list from the store and hand it to SetWishes.
	Generation(ctx context.Context, invitationID string) (int64, error)

	// SetWishes stores the list of an invitation unless it was invalidated after
	// generation was read.
	SetWishes(ctx context.Context, invitationID string, generation int64, wishes []*entity.Wish) error

	// Invalidate drops the cached list of an invitation and advances its generation.
	Invalidate(ctx context.Context, invitationID string) error
}
