package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned by Verify for any token that cannot be
// accepted: bad signature, malformed input, passed expiry, or a missing or
// non-numeric subject.
var ErrInvalidToken = errors.New("invalid token")

// DefaultTokenTTL is the token lifetime used when the config does not
// override it.
const DefaultTokenTTL = 60 * time.Minute

// TokenService issues and verifies HS256 JWTs bound to a user ID. The
// signing secret is fixed for the process lifetime; changing it invalidates
// all outstanding tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given symmetric secret
// and default ttl. A non-positive ttl falls back to DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the given user ID using the default ttl.
func (t *TokenService) Issue(userID uint) (string, error) {
	return t.IssueWithTTL(userID, t.ttl)
}

// IssueWithTTL creates a signed token expiring after the given duration.
func (t *TokenService) IssueWithTTL(userID uint, ttl time.Duration) (string, error) {
	if len(t.secret) == 0 {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10), // Subject (user ID as string)
		"exp": now.Add(ttl).Unix(),                    // Expiration
		"iat": now.Unix(),                             // Issued at
		"jti": generateJTI(),                          // JWT ID (unique identifier)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify validates a token and returns the user ID it was issued for. It is
// a pure function of the token, the current time and the signing key.
func (t *TokenService) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	// Subject claim per RFC 7519, carried as a decimal string.
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return uint(userID), nil
}

// generateJTI creates a unique JWT ID
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
