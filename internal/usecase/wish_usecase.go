package usecase

import (
	"context"

	"guestbook/internal/domain/entity"
)

// WishDraft is a wish as submitted by a guest, before validation.
type WishDraft struct {
	InvitationID string
	Name         string
	NameKey      string // Optional; derived from Name when empty.
	Message      string
}

// WishUsecase defines the guestbook use cases
type WishUsecase interface {
	// SubmitWish validates the draft and creates the wish unless the guest already left one.
	// On success the returned session is Posted and carries the new wish. Returns a *errors.ValidationError, a *errors.WishConflictError carrying the existing
	// wish, or a *errors.DatabaseExecuteError.
	SubmitWish(ctx context.Context, draft *WishDraft) (*entity.GuestSession, error)

	// ListWishes returns the wishes of an invitation newest-first, one per guest.
	ListWishes(ctx context.Context, invitationID string) ([]*entity.Wish, error)

	// FindWish returns the wish of one guest, or nil when the guest has not posted.
	FindWish(ctx context.Context, invitationID, nameKey string) (*entity.Wish, error)

	// ResolveGuest looks up the guest and returns a session in NotEligible, Eligible or Conflict.
	ResolveGuest(ctx context.Context, invitationID, guestName string) (*entity.GuestSession, error)
}

// WishWatcher notifies subscribers when the wishes of an invitation change
type WishWatcher interface {
	// OnWishesChanged calls callback with the current list and again after every change.
	// Calling the returned function, or cancelling ctx, ends the subscription.
	OnWishesChanged(ctx context.Context, invitationID string, callback func([]*entity.Wish)) (unsubscribe func())
}

// InvitationUsecase defines the use cases around sharing an invitation with a guest
type InvitationUsecase interface {
	// GuestLink builds the personalised invitation link, carrying a guest pass when passes are enabled.
	GuestLink(ctx context.Context, invitationID, guestName string) (string, error)

	// GuestQRCode encodes the personalised invitation link as a PNG.
	GuestQRCode(ctx context.Context, invitationID, guestName string) ([]byte, error)

	// VerifyGuestPass checks a pass issued for invitationID and returns the guest name it carries.
	VerifyGuestPass(ctx context.Context, invitationID, pass string) (string, error)
}
