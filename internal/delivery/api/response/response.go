// Package response renders the wishes API JSON bodies.
package response

import (
	"net/http"

	"guestbook/internal/domain/entity"
	domainerrors "guestbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// WishPayload is the wire form of a wish. CreatedAt is epoch milliseconds, null when unknown.
type WishPayload struct {
	ID           string `json:"id"`
	InvitationID string `json:"invitationId"`
	Name         string `json:"name"`
	NameKey      string `json:"nameKey,omitempty"`
	Message      string `json:"message"`
	CreatedAt    *int64 `json:"createdAt"`
}

// WishesResponse is the body of a list answer
type WishesResponse struct {
	Wishes []*WishPayload `json:"wishes"`
}

// WishResponse is the body of a single wish answer; Wish is null when absent.
// State is set only on a submission answer.
type WishResponse struct {
	Wish  *WishPayload `json:"wish"`
	State string       `json:"state,omitempty"`
}

// GuestStateResponse is the body of the guest state answer
type GuestStateResponse struct {
	State   string       `json:"state"`
	NameKey string       `json:"nameKey"`
	Wish    *WishPayload `json:"wish"`
}

// LinkResponse is the body of the invitation link answer
type LinkResponse struct {
	Link string `json:"link"`
}

// HealthResponse is the body of the health check
type HealthResponse struct {
	Status string `json:"status"`
}

// NewWishPayload converts a wish for the wire. A nil wish yields nil.
func NewWishPayload(wish *entity.Wish) *WishPayload {
	if wish == nil {
		return nil
	}

	payload := &WishPayload{
		ID:           wish.ID,
		InvitationID: wish.InvitationID,
		Name:         wish.Name,
		NameKey:      wish.NameKey,
		Message:      wish.Message,
	}
	if !wish.CreatedAt.IsZero() {
		ms := wish.CreatedAt.UnixMilli()
		payload.CreatedAt = &ms
	}

	return payload
}

// NewWishPayloads converts a list, never returning nil so it encodes as [].
func NewWishPayloads(wishes []*entity.Wish) []*WishPayload {
	payloads := make([]*WishPayload, 0, len(wishes))
	for _, wish := range wishes {
		payloads = append(payloads, NewWishPayload(wish))
	}

	return payloads
}

// Wishes returns 200 with the wish list
func Wishes(c echo.Context, wishes []*entity.Wish) error {
	return c.JSON(http.StatusOK, WishesResponse{Wishes: NewWishPayloads(wishes)})
}

// Wish returns statusCode with a single wish, or null
func Wish(c echo.Context, statusCode int, wish *entity.Wish) error {
	return c.JSON(statusCode, WishResponse{Wish: NewWishPayload(wish)})
}

// Posted returns 201 with the wish of a session that reached Posted
func Posted(c echo.Context, session *entity.GuestSession) error {
	return c.JSON(http.StatusCreated, WishResponse{
		Wish:  NewWishPayload(session.Wish),
		State: string(session.State),
	})
}

// GuestState returns 200 with the guest session
func GuestState(c echo.Context, session *entity.GuestSession) error {
	return c.JSON(http.StatusOK, GuestStateResponse{
		State:   string(session.State),
		NameKey: session.NameKey,
		Wish:    NewWishPayload(session.Wish),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, domainerrors.ErrorResponse{Error: message})
}

// Conflict returns a 409 carrying the wish already posted, or null
func Conflict(c echo.Context, existing *entity.Wish) error {
	return c.JSON(http.StatusConflict, domainerrors.ConflictResponse{
		Error: domainerrors.MsgAlreadyPosted,
		State: string(entity.GuestStateConflict),
		Wish:  NewWishPayload(existing),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// InternalServerError returns a 500 error without exposing internals
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, domainerrors.MsgTryAgain)
}
