package handler

import (
	"net/http"

	"guestbook/internal/delivery/api/response"
	"guestbook/internal/usecase"

	"github.com/labstack/echo/v4"
)

const contentTypePNG = "image/png"

// InvitationHandler serves personalised invitation links and their QR codes
type InvitationHandler struct {
	invitationUC usecase.InvitationUsecase
}

// NewInvitationHandler creates a new InvitationHandler instance
func NewInvitationHandler(invitationUC usecase.InvitationUsecase) *InvitationHandler {
	return &InvitationHandler{
		invitationUC: invitationUC,
	}
}

// GuestLink answers the personalised link for the guest named by "to"
func (h *InvitationHandler) GuestLink(c echo.Context) error {
	link, err := h.invitationUC.GuestLink(c.Request().Context(), c.Param("invitationId"), c.QueryParam("to"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.LinkResponse{Link: link})
}

// GuestQRCode answers the personalised link encoded as a PNG QR code
func (h *InvitationHandler) GuestQRCode(c echo.Context) error {
	png, err := h.invitationUC.GuestQRCode(c.Request().Context(), c.Param("invitationId"), c.QueryParam("to"))
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, contentTypePNG, png)
}
