package token

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/scribehub/internal/clock"
	"github.com/dtroode/scribehub/internal/model"
)

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret", time.Hour, clock.NewRealClock())
	u := uuid.New()

	access, err := j.GenerateAccessToken(u)
	require.NoError(t, err)
	got, err := j.ParseAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestJWT_PayloadShape(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	j := NewJWT("secret", time.Hour, clock.NewStubClock(now))
	u := uuid.New()

	access, err := j.GenerateAccessToken(u)
	require.NoError(t, err)

	parts := strings.Split(access, ".")
	require.Len(t, parts, 3)
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var payload struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
		Exp int64 `json:"exp"`
		Iat int64 `json:"iat"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, u.String(), payload.User.ID)
	assert.Equal(t, int64(3600), payload.Exp-payload.Iat)
}

func TestJWT_ExpiryValidation(t *testing.T) {
	c := clock.NewStubClock(time.Now())
	j := NewJWT("secret", time.Hour, c)
	u := uuid.New()

	access, err := j.GenerateAccessToken(u)
	require.NoError(t, err)

	c.Advance(59 * time.Minute)
	_, err = j.ParseAccessToken(access)
	require.NoError(t, err)

	c.Advance(2 * time.Minute)
	_, err = j.ParseAccessToken(access)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_Invalid(t *testing.T) {
	j := NewJWT("secret", time.Hour, clock.NewRealClock())
	u := uuid.New()

	valid, err := j.GenerateAccessToken(u)
	require.NoError(t, err)

	otherKey, err := NewJWT("other", time.Hour, clock.NewRealClock()).GenerateAccessToken(u)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{User: UserClaim{ID: u}}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	tests := []struct {
		name  string
		token string
	}{
		{name: "tampered signature", token: tampered},
		{name: "foreign key", token: otherKey},
		{name: "malformed", token: "not.a.token"},
		{name: "empty", token: ""},
		{name: "without expiry", token: noExp},
		{name: "without user", token: noUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := j.ParseAccessToken(tt.token)
			require.ErrorIs(t, err, model.ErrInvalidToken)
			assert.Equal(t, uuid.Nil, id)
		})
	}
}
