package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/scribehub/internal/clock"
	"github.com/dtroode/scribehub/internal/model"
)

// UserClaim identifies the account a token was issued for.
type UserClaim struct {
	ID uuid.UUID `json:"id"`
}

// Claims represents JWT claims carrying the account id as {"user":{"id":...}}.
type Claims struct {
	jwt.RegisteredClaims
	User UserClaim `json:"user"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
	clock     clock.Clock
}

// NewJWT creates a new JWT token manager with the provided secret key and token lifetime.
func NewJWT(secretKey string, ttl time.Duration, c clock.Clock) *JWT {
	return &JWT{secretKey: secretKey, ttl: ttl, clock: c}
}

var _ model.TokenManager = (*JWT)(nil)

// GenerateAccessToken creates a token expiring ttl after issuance.
func (j *JWT) GenerateAccessToken(accountID uuid.UUID) (string, error) {
	now := j.clock.NowUtc()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		User: UserClaim{ID: accountID},
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// ParseAccessToken validates signature and expiry and extracts the account id.
// Every failure is reported as model.ErrInvalidToken.
func (j *JWT) ParseAccessToken(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	}, jwt.WithTimeFunc(j.clock.NowUtc), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return uuid.Nil, model.ErrInvalidToken
	}
	if claims.User.ID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: missing user claim", model.ErrInvalidToken)
	}
	return claims.User.ID, nil
}
