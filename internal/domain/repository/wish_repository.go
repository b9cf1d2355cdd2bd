// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"guestbook/internal/domain/entity"
	"guestbook/internal/errors"
)

// Domain-specific errors for wish persistence.
var (
	// ErrWishNotFound is returned when no wish exists at the requested record id.
	ErrWishNotFound = errors.New("wish not found")

	// ErrDuplicateWish is returned when a wish already exists at the record id being created.
	ErrDuplicateWish = errors.New("wish already exists")
)

// WishRepository defines the interface for wish-related store operations.
type WishRepository interface {
	// FindWishByID retrieves a wish by its record id.
	// Returns ErrWishNotFound if no record exists.
	FindWishByID(ctx context.Context, id string) (*entity.Wish, error)

	// CreateWish persists a new wish at wish.ID.
	// Returns ErrDuplicateWish if a record already exists at that id; never overwrites.
	CreateWish(ctx context.Context, wish *entity.Wish) error

	// FindWishesByInvitation retrieves every wish of an invitation in store order.
	// Callers must not rely on any ordering.
	FindWishesByInvitation(ctx context.Context, invitationID string) ([]*entity.Wish, error)
}
