package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"guestbook/internal/delivery/api/response"
	deliverycontext "guestbook/internal/delivery/context"
	"guestbook/internal/domain/entity"
	domainerrors "guestbook/internal/domain/errors"
	"guestbook/internal/errors"
	"guestbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	eventWishes       = "wishes"
	streamHeartbeat   = 15 * time.Second
	contentTypeStream = "text/event-stream"
)

// WishHandler serves the wishes API
type WishHandler struct {
	wishUC       usecase.WishUsecase
	watcher      usecase.WishWatcher
	invitationUC usecase.InvitationUsecase
	heartbeat    time.Duration
}

// WishHandlerParams holds dependencies for WishHandler, injected by Fx.
type WishHandlerParams struct {
	fx.In

	WishUC       usecase.WishUsecase
	Watcher      usecase.WishWatcher
	InvitationUC usecase.InvitationUsecase
}

// NewWishHandler creates a new WishHandler instance
func NewWishHandler(params WishHandlerParams) *WishHandler {
	return &WishHandler{
		wishUC:       params.WishUC,
		watcher:      params.Watcher,
		invitationUC: params.InvitationUC,
		heartbeat:    streamHeartbeat,
	}
}

// wishRequest is the body of POST /api/wishes
type wishRequest struct {
	InvitationID string `json:"invitationId"`
	Name         string `json:"name"`
	NameKey      string `json:"nameKey"`
	Message      string `json:"message"`
}

// guestStateQuery carries the query of GET /api/wishes/state
type guestStateQuery struct {
	InvitationID string `query:"invitationId" validate:"required"`
	To           string `query:"to"`
	Pass         string `query:"pass"`
}

// ListWishes answers the wish list, or a single wish when nameKey is given
func (h *WishHandler) ListWishes(c echo.Context) error {
	invitationID := c.QueryParam("invitationId")
	ctx := deliverycontext.WithInvitation(c.Request().Context(), strings.TrimSpace(invitationID))

	if nameKey := c.QueryParam("nameKey"); nameKey != "" {
		wish, err := h.wishUC.FindWish(ctx, invitationID, nameKey)
		if err != nil {
			return err
		}

		return response.Wish(c, http.StatusOK, wish)
	}

	wishes, err := h.wishUC.ListWishes(ctx, invitationID)
	if err != nil {
		return err
	}

	return response.Wishes(c, wishes)
}

// SubmitWish creates the guest's wish unless one was already posted
func (h *WishHandler) SubmitWish(c echo.Context) error {
	var req wishRequest
	if err := c.Echo().JSONSerializer.Deserialize(c, &req); err != nil {
		return decodeError(err)
	}
	// The client always derives and sends the key; only direct callers may omit it.
	if strings.TrimSpace(req.NameKey) == "" {
		return domainerrors.NewValidationError("", domainerrors.MsgMissingFields)
	}

	ctx := deliverycontext.WithInvitation(c.Request().Context(), strings.TrimSpace(req.InvitationID))
	session, err := h.wishUC.SubmitWish(ctx, &usecase.WishDraft{
		InvitationID: req.InvitationID,
		Name:         req.Name,
		NameKey:      req.NameKey,
		Message:      req.Message,
	})
	if err != nil {
		return err
	}

	return response.Posted(c, session)
}

// decodeError maps a body decoding failure. A well-formed body whose fields have
// the wrong JSON type counts as missing fields.
func decodeError(err error) error {
	if _, ok := errors.AsType[*json.UnmarshalTypeError](err); ok {
		return domainerrors.NewValidationError("", domainerrors.MsgMissingFields)
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok && httpErr.Code == http.StatusRequestEntityTooLarge {
		return httpErr
	}

	return domainerrors.ErrInvalidJSON
}

// GuestState resolves whether the guest may still post
func (h *WishHandler) GuestState(c echo.Context) error {
	ctx := c.Request().Context()

	var query guestStateQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return domainerrors.ErrMissingInvitationID
	}
	query.InvitationID = strings.TrimSpace(query.InvitationID)
	if err := c.Validate(&query); err != nil {
		return domainerrors.ErrMissingInvitationID
	}

	guestName := query.To
	if query.Pass != "" {
		name, err := h.invitationUC.VerifyGuestPass(ctx, query.InvitationID, query.Pass)
		if err != nil {
			return err
		}
		guestName = name
	}

	session, err := h.wishUC.ResolveGuest(ctx, query.InvitationID, guestName)
	if err != nil {
		return err
	}

	return response.GuestState(c, session)
}

// StreamWishes pushes the wish list as Server-Sent Events whenever it changes
func (h *WishHandler) StreamWishes(c echo.Context) error {
	invitationID := strings.TrimSpace(c.QueryParam("invitationId"))
	if invitationID == "" {
		return domainerrors.ErrMissingInvitationID
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	updates := make(chan []*entity.Wish, 1)
	unsubscribe := h.watcher.OnWishesChanged(ctx, invitationID, func(wishes []*entity.Wish) {
		select {
		case updates <- wishes:
		case <-ctx.Done():
		}
	})
	defer func() {
		cancel()
		unsubscribe()
	}()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, contentTypeStream)
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case wishes := <-updates:
			if err := writeEvent(res, eventWishes, response.WishesResponse{Wishes: response.NewWishPayloads(wishes)}); err != nil {
				return nil
			}
		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

func writeEvent(res *echo.Response, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return errors.WithStack(err)
	}
	res.Flush()

	return nil
}
