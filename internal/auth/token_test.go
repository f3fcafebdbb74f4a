package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestParseClaims(t *testing.T) {
	t.Run("Custom claims", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Truncate(time.Second)
		tok := signed(t, Claims{
			UserID: "u-1",
			Email:  "a@b.c",
			Role:   "seller",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(exp),
			},
		})

		claims, err := ParseClaims(tok)
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.UserID)
		assert.Equal(t, "a@b.c", claims.Email)
		assert.Equal(t, "seller", claims.Role)
		assert.False(t, claims.Expired(time.Now()))
		assert.True(t, claims.Expired(exp.Add(time.Second)))
	})

	t.Run("Subject fallback", func(t *testing.T) {
		tok := signed(t, jwt.RegisteredClaims{Subject: "sub-9"})

		claims, err := ParseClaims(BearerHeader(tok))
		require.NoError(t, err)
		assert.Equal(t, "sub-9", claims.UserID)
		assert.False(t, claims.Expired(time.Now()))
	})

	t.Run("Not a JWT", func(t *testing.T) {
		_, err := ParseClaims("opaque-session-token")
		assert.ErrorIs(t, err, ErrMalformedToken)
	})

	t.Run("Garbage segments", func(t *testing.T) {
		_, err := ParseClaims("a.b.c")
		assert.Error(t, err)
	})
}

func TestBearer(t *testing.T) {
	assert.Equal(t, "Bearer abc", BearerHeader("abc"))
	assert.Equal(t, "abc", StripBearer("Bearer abc"))
	assert.Equal(t, "abc", StripBearer("abc"))
}
