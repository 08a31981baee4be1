package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("secret", "jobboard", time.Hour)

	tok, err := svc.GenerateAccessToken("user_123", "a@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user_123", claims.ActorID())
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService("secret", "", time.Minute)
	issued := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issued }

	tok, err := svc.GenerateAccessToken("user_123", "")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_WrongSecret(t *testing.T) {
	tok, err := NewHMACService("one", "", time.Hour).GenerateAccessToken("user_123", "")
	require.NoError(t, err)

	_, err = NewHMACService("two", "", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_RejectsMissingSubjectAndExpiry(t *testing.T) {
	secret := []byte("secret")

	noSub := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.RegisteredClaims{
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s1, err := noSub.SignedString(secret)
	require.NoError(t, err)

	noExp := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.RegisteredClaims{Subject: "user_123"})
	s2, err := noExp.SignedString(secret)
	require.NoError(t, err)

	svc := NewHMACService("secret", "", time.Hour)
	_, err = svc.ValidateToken(s1)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, err = svc.ValidateToken(s2)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_IssuerMismatch(t *testing.T) {
	tok, err := NewHMACService("secret", "other", time.Hour).GenerateAccessToken("user_123", "")
	require.NoError(t, err)

	_, err = NewHMACService("secret", "jobboard", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_GenerateRequiresSubject(t *testing.T) {
	_, err := NewHMACService("secret", "", time.Hour).GenerateAccessToken("  ", "")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
