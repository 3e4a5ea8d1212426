package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a bearer token is malformed, carries a
// bad signature, or has expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims represents the JWT claims carried by a locker API token. The user
// ID is the sole application claim.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// Manager issues and verifies bearer tokens backed by symmetric HMAC.
type Manager struct {
	secretKey string
	ttl       time.Duration
}

// DefaultTTL bounds token validity. Tokens were historically issued without
// an expiry; a bounded lifetime replaces indefinite validity.
const DefaultTTL = 24 * time.Hour

// NewManager creates a token manager signing with the provided secret key.
func NewManager(secretKey string) *Manager {
	return &Manager{secretKey: secretKey, ttl: DefaultTTL}
}

// Issue creates a signed token identifying userID.
func (m *Manager) Issue(userID string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
	})

	signed, err := t.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse validates the token signature and expiry and extracts the user ID.
func (m *Manager) Parse(tokenString string) (string, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !t.Valid {
		return "", ErrInvalidToken
	}
	if claims.UserID == "" {
		return "", fmt.Errorf("%w: missing user id claim", ErrInvalidToken)
	}
	return claims.UserID, nil
}
