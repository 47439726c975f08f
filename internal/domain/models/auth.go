package models

import "github.com/golang-jwt/jwt/v5"

// AccessClaims is the claim set carried by an issued bearer token.
// The subject claim holds the user ID; nothing else is trusted from the token.
type AccessClaims struct {
	jwt.RegisteredClaims // Standard JWT claims (sub, exp, iat, etc.)
}

// GetUserID returns the user ID from the JWT subject claim.
// This is the primary identifier for the authenticated user.
func (c *AccessClaims) GetUserID() string {
	return c.Subject
}
