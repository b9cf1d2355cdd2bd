// Package auth provides concrete implementations for guest identity services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"guestbook/config"
	"guestbook/internal/domain/entity"
	"guestbook/internal/domain/service"
)

const guestPassIssuer = "guestbook"

// jwtGuestPassService signs guest passes with HS256.
type jwtGuestPassService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtGuestPassService.
func NewJWTService(cfg *config.Config) (service.GuestPassService, error) {
	if cfg.GuestPass == nil || cfg.GuestPass.Secret == "" {
		return nil, errors.New("guest pass secret must be provided")
	}

	return &jwtGuestPassService{
		secret: []byte(cfg.GuestPass.Secret),
		ttl:    cfg.GuestPass.TTL,
		now:    time.Now,
	}, nil
}

// NewGuestPassService returns nil when guest passes are not configured, so links
// fall back to plain guest names.
func NewGuestPassService(cfg *config.Config) (service.GuestPassService, error) {
	if cfg.GuestPass == nil {
		return nil, nil
	}

	return NewJWTService(cfg)
}

// Issue creates a pass for guestName on invitationID.
func (s *jwtGuestPassService) Issue(invitationID, guestName string) (string, error) {
	nameKey := entity.NormalizeNameKey(guestName)
	if invitationID == "" || nameKey == "" {
		return "", errors.New("guest pass requires an invitation and a guest name")
	}

	now := s.now()
	claims := service.GuestPassClaims{
		Name:         guestName,
		InvitationID: invitationID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   guestPassIssuer,
			Subject:  nameKey,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry of a pass and returns its claims.
func (s *jwtGuestPassService) Verify(pass string) (*service.GuestPassClaims, error) {
	claims := &service.GuestPassClaims{}
	_, err := jwt.ParseWithClaims(pass, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(guestPassIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}

	if claims.InvitationID == "" || claims.Subject == "" {
		return nil, errors.New("guest pass is missing invitation or guest")
	}

	return claims, nil
}
