package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"guestbook/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToLower(errorCorrectionLevel) {
	case "l", "low":
		level = qrcode.Low
	case "m", "medium":
		level = qrcode.Medium
	case "q", "high":
		level = qrcode.High
	case "h", "highest":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// InvitationLink builds <baseUrl>/<invitationId>?to=<guest>[&pass=<pass>]
func (s *qrcodeService) InvitationLink(invitationID, guestName, pass string) (string, error) {
	if s.baseURL == "" {
		return "", fmt.Errorf("invitation base URL is not configured")
	}
	if invitationID == "" {
		return "", fmt.Errorf("invitation ID is required")
	}

	link, err := url.Parse(s.baseURL + "/" + url.PathEscape(invitationID))
	if err != nil {
		return "", fmt.Errorf("failed to parse invitation link: %w", err)
	}

	query := link.Query()
	if guestName = strings.TrimSpace(guestName); guestName != "" {
		query.Set("to", guestName)
	}
	if pass != "" {
		query.Set("pass", pass)
	}
	link.RawQuery = query.Encode()

	return link.String(), nil
}

// GenerateInvitationQR encodes the invitation link as a PNG
func (s *qrcodeService) GenerateInvitationQR(invitationID, guestName, pass string) ([]byte, error) {
	link, err := s.InvitationLink(invitationID, guestName, pass)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
