// Package token issues and verifies the signed, expiring tokens that carry
// session claims. Access and refresh tokens share the same structure and
// differ only in TTL policy.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMalformed    = errors.New("malformed token")
	ErrBadSignature = errors.New("invalid token signature")
	ErrExpired      = errors.New("token expired")
)

// Claims is the fixed claim set embedded in every issued token. Keeping it a
// struct instead of a map catches missing or mistyped claims at decode time.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Clock supplies the current time. Injectable so expiry behavior is
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// Codec signs and verifies HS256 tokens with a process-wide secret.
// Signature comparison is constant-time (hmac.Equal inside golang-jwt).
type Codec struct {
	secret []byte
	clock  Clock
}

func NewCodec(secret []byte, clock Clock) *Codec {
	if clock == nil {
		clock = systemClock{}
	}
	return &Codec{secret: secret, clock: clock}
}

// Issue creates a signed token for the given identity, expiring ttl from now.
func (c *Codec) Issue(userID, email string, ttl time.Duration) (string, error) {
	now := c.clock.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			// Timestamps have second precision; the jti keeps two tokens
			// issued within the same second distinct.
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify validates the signature and expiry and returns the embedded claims.
// It never panics on malformed input; every failure is one of ErrMalformed,
// ErrBadSignature, or ErrExpired. A token is rejected at or past its expiry
// timestamp.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.clock.Now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		default:
			return nil, ErrMalformed
		}
	}
	return claims, nil
}
