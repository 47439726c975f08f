package repositories

import (
	"context"

	"latitude/internal/domain/models"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create persists a new user. Returns a ConflictError when the email
	// is already registered.
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail retrieves a user by email. Returns ErrNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
