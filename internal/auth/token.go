package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"latitude/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

// HMACTokenService implements TokenService with HS256 over a process-wide
// secret. It holds no state beyond the secret and the token lifetime.
type HMACTokenService struct {
	secret []byte
	ttl    time.Duration
	logger *slog.Logger
}

// NewTokenService creates a token service signing with the given secret.
// The secret comes from configuration; an empty one is refused outright
// rather than silently issuing forgeable tokens.
func NewTokenService(secret string, ttl time.Duration, logger *slog.Logger) (*HMACTokenService, error) {
	if secret == "" {
		return nil, errors.New("token secret cannot be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token TTL must be positive, got %s", ttl)
	}

	return &HMACTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		logger: logger,
	}, nil
}

// Issue signs a token whose subject is the user ID, expiring after the
// configured TTL.
func (s *HMACTokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Decode validates a token and extracts the user ID from its subject claim.
func (s *HMACTokenService) Decode(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.AccessClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Prevent algorithm confusion attacks - allow only HMAC
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return "", decodeReason(err)
	}

	if !token.Valid {
		return "", ErrTokenSignature
	}

	claims, ok := token.Claims.(*models.AccessClaims)
	if !ok || claims.GetUserID() == "" {
		s.logger.Debug("token missing subject claim")
		return "", ErrTokenMalformed
	}

	return claims.GetUserID(), nil
}

// decodeReason maps jwt parse errors onto the package's reason errors.
func decodeReason(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrTokenSignature
	default:
		return ErrTokenMalformed
	}
}
