package repositories

import (
	"context"

	"latitude/internal/domain/access"
	"latitude/internal/domain/models"
)

// PhotoRepository defines persistence operations for photos.
type PhotoRepository interface {
	// Create persists a new photo and fills in its generated fields.
	Create(ctx context.Context, photo *models.Photo) error

	// GetByID retrieves a photo by ID regardless of visibility.
	// Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*models.Photo, error)

	// List retrieves photos inside the given visibility scope, ordered by
	// created_at DESC. The scope's public side requires both the photo and
	// its album to be public.
	List(ctx context.Context, scope access.Scope) ([]models.Photo, error)

	// ListByAlbum retrieves every photo of one album, ordered by created_at
	// DESC. Visibility filtering happens in the service, which already holds
	// the album.
	ListByAlbum(ctx context.Context, albumID string) ([]models.Photo, error)

	// Delete removes a photo. Returns ErrNotFound if already gone, which is
	// how a concurrent double delete resolves.
	Delete(ctx context.Context, id string) error
}
