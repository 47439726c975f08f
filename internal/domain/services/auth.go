package services

import (
	"context"

	"latitude/internal/domain/models"
)

// RegisterRequest represents a request to register a new account
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a request to exchange credentials for a token
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the authenticated user and their bearer token
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// AuthService defines registration and credential exchange
type AuthService interface {
	// Register creates an account and issues its first token.
	// Fails with a ConflictError when the email is taken and a
	// ValidationError on malformed email or short password.
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)

	// Login verifies credentials and issues a token. A wrong email and a
	// wrong password are indistinguishable UnauthorizedErrors.
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
}
