package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "guestbook/internal/delivery/context"
	"guestbook/internal/domain/entity"
	domainerrors "guestbook/internal/domain/errors"
	"guestbook/internal/domain/service"
	"guestbook/internal/errors"
	"guestbook/internal/usecase"

	"go.uber.org/fx"
)

type invitationService struct {
	qrCode    service.QRCodeService
	guestPass service.GuestPassService
	logger    *slog.Logger
}

// InvitationServiceParams holds dependencies for InvitationService, injected by Fx.
type InvitationServiceParams struct {
	fx.In

	QRCode    service.QRCodeService
	GuestPass service.GuestPassService `optional:"true"`
	Logger    *slog.Logger
}

// NewInvitationService creates a new invitation service instance
func NewInvitationService(params InvitationServiceParams) usecase.InvitationUsecase {
	return &invitationService{
		qrCode:    params.QRCode,
		guestPass: params.GuestPass,
		logger:    params.Logger,
	}
}

func (s *invitationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GuestLink builds the personalised invitation link, signed when guest passes are configured.
func (s *invitationService) GuestLink(ctx context.Context, invitationID, guestName string) (string, error) {
	invitationID, guestName, pass, err := s.prepare(invitationID, guestName)
	if err != nil {
		return "", err
	}

	link, err := s.qrCode.InvitationLink(invitationID, guestName, pass)
	if err != nil {
		s.log(ctx).Error("Failed to build invitation link",
			slog.String("invitation_id", invitationID),
			slog.Any("error", err),
		)

		return "", errors.Wrap(err, "failed to build invitation link")
	}

	return link, nil
}

// GuestQRCode renders the guest link as a PNG.
func (s *invitationService) GuestQRCode(ctx context.Context, invitationID, guestName string) ([]byte, error) {
	invitationID, guestName, pass, err := s.prepare(invitationID, guestName)
	if err != nil {
		return nil, err
	}

	png, err := s.qrCode.GenerateInvitationQR(invitationID, guestName, pass)
	if err != nil {
		s.log(ctx).Error("Failed to generate invitation QR code",
			slog.String("invitation_id", invitationID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to generate invitation QR code")
	}

	return png, nil
}

// VerifyGuestPass returns the guest name carried by a pass issued for invitationID.
func (s *invitationService) VerifyGuestPass(ctx context.Context, invitationID, pass string) (string, error) {
	if s.guestPass == nil {
		return "", domainerrors.ErrInvalidGuestPass.WithDetails("guest passes are not configured")
	}

	claims, err := s.guestPass.Verify(pass)
	if err != nil {
		s.log(ctx).Info("Rejected guest pass", slog.Any("error", err))

		return "", domainerrors.ErrInvalidGuestPass
	}
	if claims.InvitationID != strings.TrimSpace(invitationID) {
		s.log(ctx).Info("Guest pass issued for another invitation",
			slog.String("invitation_id", invitationID),
			slog.String("pass_invitation_id", claims.InvitationID),
		)

		return "", domainerrors.ErrInvalidGuestPass
	}

	return claims.Name, nil
}

func (s *invitationService) prepare(invitationID, guestName string) (string, string, string, error) {
	invitationID = strings.TrimSpace(invitationID)
	guestName = strings.TrimSpace(guestName)
	if invitationID == "" {
		return "", "", "", domainerrors.ErrMissingInvitationID
	}
	if guestName == "" || entity.NormalizeNameKey(guestName) == "" {
		return "", "", "", domainerrors.NewValidationError("to", domainerrors.MsgInvalidNameKey)
	}
	if s.guestPass == nil {
		return invitationID, guestName, "", nil
	}

	pass, err := s.guestPass.Issue(invitationID, guestName)
	if err != nil {
		return "", "", "", errors.Wrap(err, "failed to issue guest pass")
	}

	return invitationID, guestName, pass, nil
}
