package auth

import (
	"testing"
	"time"

	"guestbook/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	return &config.Config{
		GuestPass: &config.GuestPassConfig{Secret: secret, TTL: ttl},
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_guest_pass_secret_key_very_long", time.Hour))
	require.NoError(t, err)

	pass, err := svc.Issue("w1", "Dr. Nadya")
	require.NoError(t, err)
	assert.NotEmpty(t, pass)

	claims, err := svc.Verify(pass)
	require.NoError(t, err)
	assert.Equal(t, "w1", claims.InvitationID)
	assert.Equal(t, "Dr. Nadya", claims.Name)
	assert.Equal(t, "dr_nadya", claims.Subject)
	assert.Equal(t, guestPassIssuer, claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)

	_, err = NewJWTService(newTestConfig("", time.Hour))
	require.Error(t, err)
}

func TestJWTService_IssueRejectsBlankGuest(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret", time.Hour))
	require.NoError(t, err)

	_, err = svc.Issue("w1", "  !! ")
	require.Error(t, err)

	_, err = svc.Issue("", "Raka")
	require.Error(t, err)
}

func TestJWTService_InvalidPass(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret-one", time.Hour))
	require.NoError(t, err)
	other, err := NewJWTService(newTestConfig("secret-two", time.Hour))
	require.NoError(t, err)

	pass, err := other.Issue("w1", "Raka")
	require.NoError(t, err)

	_, err = svc.Verify(pass)
	require.ErrorIs(t, err, jwt.ErrSignatureInvalid)

	_, err = svc.Verify("not-a-token")
	require.Error(t, err)
}

func TestJWTService_ExpiredPass(t *testing.T) {
	cfg := newTestConfig("secret", time.Hour)
	issuer, err := NewJWTService(cfg)
	require.NoError(t, err)
	issuer.(*jwtGuestPassService).now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	pass, err := issuer.Issue("w1", "Raka")
	require.NoError(t, err)

	verifier, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, err = verifier.Verify(pass)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongSigningMethod(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret", time.Hour))
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"inv": "w1", "sub": "raka", "iss": guestPassIssuer})
	pass, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.Verify(pass)
	require.Error(t, err)
}

func TestNewGuestPassService(t *testing.T) {
	svc, err := NewGuestPassService(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, svc)

	svc, err = NewGuestPassService(newTestConfig("secret", time.Hour))
	require.NoError(t, err)
	assert.NotNil(t, svc)

	_, err = NewGuestPassService(newTestConfig("", time.Hour))
	require.Error(t, err)
}
