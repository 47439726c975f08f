package repositories

import (
	"context"

	"latitude/internal/domain/access"
	"latitude/internal/domain/models"
)

// AlbumRepository defines persistence operations for albums.
type AlbumRepository interface {
	// Create persists a new album and fills in its generated fields.
	Create(ctx context.Context, album *models.Album) error

	// GetByID retrieves an album by ID regardless of visibility.
	// Returns ErrNotFound if absent; visibility is the service's concern.
	GetByID(ctx context.Context, id string) (*models.Album, error)

	// List retrieves albums inside the given visibility scope,
	// ordered by created_at DESC.
	List(ctx context.Context, scope access.Scope) ([]models.Album, error)

	// Update persists name/visibility changes. Returns ErrNotFound if the
	// album no longer exists.
	Update(ctx context.Context, album *models.Album) error

	// Delete removes an album and, via the store's referential integrity,
	// its photos. Returns ErrNotFound if already gone.
	Delete(ctx context.Context, id string) error
}
