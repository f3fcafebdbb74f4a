package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("token is not a JWT")

// Claims is what the client can learn from its own access token. The
// signature is never checked here; the backend owns verification.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ParseClaims decodes a JWT payload without verifying it.
func ParseClaims(token string) (*Claims, error) {
	token = StripBearer(token)
	if strings.Count(token, ".") != 2 {
		return nil, ErrMalformedToken
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	return claims, nil
}

// Expired reports whether the claims carry an exp that lies before now.
// Tokens without exp never expire client-side.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !now.Before(c.ExpiresAt.Time)
}

func BearerHeader(token string) string {
	return "Bearer " + token
}

func StripBearer(header string) string {
	return strings.TrimPrefix(strings.TrimSpace(header), "Bearer ")
}
