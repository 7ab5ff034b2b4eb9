// Package token issues and verifies the signed session tokens returned by
// login. Tokens are HS256 JWTs carrying the user id, username, and role;
// validation is stateless, so a token stays valid until its natural expiry.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sivamani2003/accesshub/pkg/model"
)

// ErrInvalidToken is returned for any token that fails parsing, signature
// verification, or expiry checks.
var ErrInvalidToken = errors.New("invalid or expired token")

// MinKeyLength is the minimum accepted signing key length in bytes.
const MinKeyLength = 32

// Claims are the session token claims.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim as a numeric user id.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

// Signer issues and verifies session tokens with a shared HMAC key.
type Signer struct {
	key []byte
	ttl time.Duration
}

// NewSigner creates a Signer. The key must be at least MinKeyLength bytes.
func NewSigner(key []byte, ttl time.Duration) (*Signer, error) {
	if len(key) < MinKeyLength {
		return nil, fmt.Errorf("session key must be at least %d bytes, got %d", MinKeyLength, len(key))
	}
	if ttl <= 0 {
		return nil, errors.New("token TTL must be positive")
	}
	return &Signer{key: key, ttl: ttl}, nil
}

// Issue signs a session token for the user.
func (s *Signer) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Parse verifies a session token and returns its claims. All failure modes
// collapse into ErrInvalidToken so callers cannot distinguish a forged token
// from an expired one.
func (s *Signer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
