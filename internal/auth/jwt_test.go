package auth

import (
	"strings"
	"testing"
	"time"

	"fitstream_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := "super-secret"

	tok, err := GenerateToken("user-123", "user@test.com", "Test User", secret, time.Hour)
	assert.NoError(t, err)

	claims, err := ParseToken(tok, secret)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user@test.com", claims.Email)
	assert.Equal(t, "Test User", claims.Name)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	secret := "secret"

	tok, err := GenerateToken("u1", "u1@test.com", "U1", secret, -1*time.Second)
	assert.NoError(t, err)

	_, err = ParseToken(tok, secret)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u2", "u2@test.com", "U2", "right-secret", time.Hour)
	assert.NoError(t, err)

	_, err = ParseToken(tok, "wrong-secret")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestParseToken_TamperedPayload(t *testing.T) {
	t.Parallel()

	secret := "secret"
	tok, err := GenerateToken("u3", "u3@test.com", "U3", secret, time.Hour)
	assert.NoError(t, err)

	parts := strings.Split(tok, ".")
	assert.Len(t, parts, 3)

	// Flip one byte in the payload segment.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = ParseToken(tampered, secret)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestParseToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("not.a.jwt", "k")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
