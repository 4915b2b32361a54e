package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := NewTokenService(testSecret, time.Hour)

	tok, err := tokens.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenService_Expired(t *testing.T) {
	tokens := NewTokenService(testSecret, time.Hour)

	tok, err := tokens.IssueWithTTL(7, -time.Minute)
	require.NoError(t, err)

	_, err = tokens.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	tokens := NewTokenService(testSecret, time.Hour)
	other := NewTokenService("a-different-secret", time.Hour)

	tok, err := tokens.Issue(7)
	require.NoError(t, err)

	_, err = other.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	tokens := NewTokenService(testSecret, time.Hour)

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := tokens.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}

func TestTokenService_BadSubject(t *testing.T) {
	tokens := NewTokenService(testSecret, time.Hour)

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{
			name: "Missing subject",
			claims: jwt.MapClaims{
				"exp": time.Now().Add(time.Hour).Unix(),
			},
		},
		{
			name: "Non-numeric subject",
			claims: jwt.MapClaims{
				"sub": "not-a-number",
				"exp": time.Now().Add(time.Hour).Unix(),
			},
		},
		{
			name: "Non-string subject",
			claims: jwt.MapClaims{
				"sub": 42,
				"exp": time.Now().Add(time.Hour).Unix(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).
				SignedString([]byte(testSecret))
			require.NoError(t, err)

			_, err = tokens.Verify(tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenService_RejectsUnsignedToken(t *testing.T) {
	tokens := NewTokenService(testSecret, time.Hour)

	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tokens.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
