package auth

import (
	"errors"
	"fmt"
)

// Decode failure reasons. All three wrap ErrTokenInvalid, so callers that
// only care about valid/invalid need a single errors.Is check while the
// reason stays available for logging.
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenMalformed = fmt.Errorf("malformed token: %w", ErrTokenInvalid)
	ErrTokenExpired   = fmt.Errorf("expired token: %w", ErrTokenInvalid)
	ErrTokenSignature = fmt.Errorf("token signature mismatch: %w", ErrTokenInvalid)
)

// TokenService issues and decodes signed bearer tokens carrying a user ID.
// This abstraction keeps the identity-resolving middleware agnostic to the
// signing scheme.
type TokenService interface {
	// Issue produces a signed token encoding the user ID and an expiry.
	Issue(userID string) (string, error)

	// Decode validates a token string and returns the user ID it encodes.
	// Returns ErrTokenMalformed, ErrTokenExpired or ErrTokenSignature
	// (all matching ErrTokenInvalid) when validation fails.
	Decode(tokenString string) (string, error)
}
