// Package token issues and verifies the signed identity tokens that
// authenticate every protected request. Tokens are HS256 JWTs carrying the
// user id; there is no server-side session state.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"folio-be/internal/apperr"
)

// Claims embeds the registered claims and adds the subject user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// Service signs and verifies identity tokens. The secret and lifetime come
// from configuration at construction time; rotating the secret invalidates
// every outstanding token.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service with the given signing secret and
// token lifetime.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate issues a signed token for the given user id, expiring after the
// configured lifetime.
func (s *Service) Generate(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses a token string and returns the embedded user id. Every
// failure class (malformed, bad signature, expired, wrong signing method)
// comes back wrapped around apperr.ErrInvalidToken.
func (s *Service) Validate(tokenString string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.UserID == "" {
		return "", apperr.ErrInvalidToken
	}
	return claims.UserID, nil
}
