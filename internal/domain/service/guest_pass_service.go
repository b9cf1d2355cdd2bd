package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// GuestPassClaims binds a guest to one invitation.
type GuestPassClaims struct {
	Name         string `json:"name"`
	InvitationID string `json:"inv"`
	jwt.RegisteredClaims
}

// GuestPassService issues and verifies signed guest passes.
type GuestPassService interface {
	// Issue creates a pass for guestName on invitationID.
	Issue(invitationID, guestName string) (string, error)

	// Verify checks the signature and expiry of a pass and returns its claims.
	Verify(pass string) (*GuestPassClaims, error)
}
