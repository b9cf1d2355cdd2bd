package service

import (
	"context"
	"time"
)

// WishPostedEvent is published after a wish is committed
type WishPostedEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	EventID      string    `json:"event_id"`
	WishID       string    `json:"wish_id"`
	InvitationID string    `json:"invitation_id"`
	Name         string    `json:"name"`
	NameKey      string    `json:"name_key"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishWishPosted publishes a wish event for async processing
	PublishWishPosted(ctx context.Context, event *WishPostedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
