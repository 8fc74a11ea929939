// Package authclient is the external identity collaborator: it issues
// and verifies the signed tokens callers present with each command.
// Verification only establishes who the caller is; what they may do is
// decided by the authorization gate against the stored user record.
package authclient

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthenticated is returned when a token is missing, malformed,
// expired, or carries a bad signature
var ErrUnauthenticated = errors.New("could not verify identity")

// Identity is the verified identity extracted from a token
type Identity struct {
	UserID string
}

// Client signs and verifies identity tokens with an HMAC key
type Client struct {
	signingKey []byte
	tokenTTL   time.Duration
}

type identityClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// NewClient creates a token client from the configured signing key
func NewClient(signingKey string, tokenTTL time.Duration) (*Client, error) {
	if signingKey == "" {
		return nil, errors.New("token signing key is required")
	}
	if tokenTTL <= 0 {
		tokenTTL = 30 * 24 * time.Hour
	}
	return &Client{
		signingKey: []byte(signingKey),
		tokenTTL:   tokenTTL,
	}, nil
}

// IssueToken creates a signed token identifying the given user
func (c *Client) IssueToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, identityClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.tokenTTL)),
		},
	})

	signed, err := token.SignedString(c.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the caller's identity
func (c *Client) Verify(tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("empty token: %w", ErrUnauthenticated)
	}

	var claims identityClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrUnauthenticated)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, fmt.Errorf("invalid claims: %w", ErrUnauthenticated)
	}

	return &Identity{UserID: claims.UserID}, nil
}
