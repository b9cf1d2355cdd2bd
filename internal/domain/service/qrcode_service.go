package service

// QRCodeService defines the interface for invitation share QR codes
type QRCodeService interface {
	// InvitationLink builds the personalised invitation URL for a guest
	InvitationLink(invitationID, guestName, pass string) (string, error)

	// GenerateInvitationQR encodes the invitation link as a PNG
	GenerateInvitationQR(invitationID, guestName, pass string) ([]byte, error)
}
