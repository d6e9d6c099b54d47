package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret", WithIssuer("cipherchat"))
	u := uuid.New()

	access, err := j.GenerateAccessToken(u)
	require.NoError(t, err)
	got, err := j.ParseAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestJWT_WrongSecret(t *testing.T) {
	access, err := NewJWT("secret").GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = NewJWT("other").ParseAccessToken(access)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_IssuerMismatch(t *testing.T) {
	access, err := NewJWT("secret", WithIssuer("someone-else")).GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = NewJWT("secret", WithIssuer("cipherchat")).ParseAccessToken(access)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_ExpiryValidation(t *testing.T) {
	j := &JWT{secretKey: []byte("secret"), accessTTL: -time.Minute}

	access, err := j.GenerateAccessToken(uuid.New())
	require.NoError(t, err)
	_, err = j.ParseAccessToken(access)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_Rejects(t *testing.T) {
	secret := []byte("secret")
	sign := func(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := func() Claims {
		return Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   uuid.NewString(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
			TokenType: typeAccess,
		}
	}

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "wrong type",
			token: func(t *testing.T) string {
				c := valid()
				c.TokenType = "refresh"
				return sign(t, jwt.SigningMethodHS256, secret, c)
			},
		},
		{
			name: "subject is not a uuid",
			token: func(t *testing.T) string {
				c := valid()
				c.Subject = "alice"
				return sign(t, jwt.SigningMethodHS256, secret, c)
			},
		},
		{
			name: "no expiry",
			token: func(t *testing.T) string {
				c := valid()
				c.ExpiresAt = nil
				return sign(t, jwt.SigningMethodHS256, secret, c)
			},
		},
		{
			name: "other hmac method",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS512, secret, valid())
			},
		},
		{
			name:  "garbage",
			token: func(t *testing.T) string { return "not.a.token" },
		},
	}

	j := NewJWT(string(secret))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := j.ParseAccessToken(tt.token(t))
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
