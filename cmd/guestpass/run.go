package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"guestbook/config"
	"guestbook/internal/domain/service"
	"guestbook/internal/infra/auth"
	logs "guestbook/internal/infra/log"
	"guestbook/internal/infra/qrcode"
	"guestbook/internal/usecase"
	"guestbook/internal/usecase/impl"

	"github.com/pkg/errors"
)

type toolkit struct {
	logger      *slog.Logger
	guestPass   service.GuestPassService
	invitations usecase.InvitationUsecase
}

func newToolkit() (*toolkit, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg, Output: os.Stderr})
	if err != nil {
		return nil, err
	}

	guestPass, err := auth.NewGuestPassService(cfg)
	if err != nil {
		return nil, err
	}

	qrCode := qrcode.NewQRCodeService("", 256, "M")
	if cfg.QRCode != nil {
		qrCode = qrcode.NewQRCodeService(cfg.QRCode.BaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
	}

	return &toolkit{
		logger:    logger,
		guestPass: guestPass,
		invitations: impl.NewInvitationService(impl.InvitationServiceParams{
			QRCode:    qrCode,
			GuestPass: guestPass,
			Logger:    logger,
		}),
	}, nil
}

func runIssue(_ context.Context, tools *toolkit, invitationID string, guests []string, _ *guestFlags) error {
	if tools.guestPass == nil {
		return errors.New("guestPass.secret is not configured")
	}

	for _, guest := range guests {
		pass, err := tools.guestPass.Issue(invitationID, guest)
		if err != nil {
			return errors.Wrapf(err, "failed to issue pass for %q", guest)
		}
		fmt.Printf("%s\t%s\n", guest, pass)
	}

	return nil
}

func runLink(ctx context.Context, tools *toolkit, invitationID string, guests []string, _ *guestFlags) error {
	for _, guest := range guests {
		link, err := tools.invitations.GuestLink(ctx, invitationID, guest)
		if err != nil {
			return errors.Wrapf(err, "failed to build link for %q", guest)
		}
		fmt.Printf("%s\t%s\n", guest, link)
	}

	return nil
}

func runQR(ctx context.Context, tools *toolkit, invitationID string, guests []string, flags *guestFlags) error {
	if err := os.MkdirAll(*flags.output, 0o755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}

	for _, guest := range guests {
		png, err := tools.invitations.GuestQRCode(ctx, invitationID, guest)
		if err != nil {
			return errors.Wrapf(err, "failed to render QR code for %q", guest)
		}

		path := filepath.Join(*flags.output, pngName(guest))
		if err := os.WriteFile(path, png, 0o644); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
		tools.logger.Info("Wrote share code", slog.String("guest", guest), slog.String("path", path))
	}

	return nil
}

func runVerify(tools *toolkit, invitationID, pass string) error {
	if tools.guestPass == nil {
		return errors.New("guestPass.secret is not configured")
	}

	claims, err := tools.guestPass.Verify(pass)
	if err != nil {
		return errors.Wrap(err, "invalid guest pass")
	}
	if invitationID != "" && claims.InvitationID != invitationID {
		return errors.Errorf("pass belongs to invitation %q", claims.InvitationID)
	}

	expires := "never"
	if claims.ExpiresAt != nil {
		expires = claims.ExpiresAt.Time.Format("2006-01-02")
	}

	fmt.Printf("name:\t%s\nnameKey:\t%s\ninvitation:\t%s\nexpires:\t%s\n",
		claims.Name, claims.Subject, claims.InvitationID, expires)

	return nil
}
