package services

import (
	"context"

	"latitude/internal/domain/models"
)

// CreatePhotoRequest represents a request to add a photo to an album.
// Photo is the raw image payload (base64 on the wire).
type CreatePhotoRequest struct {
	Name     string `json:"name"`
	AlbumID  string `json:"album_id"`
	IsPublic bool   `json:"is_public"`
	Photo    []byte `json:"photo"`
}

// PhotoService defines business logic operations for photos. Authorization
// is always against the owning album's owner.
type PhotoService interface {
	// List retrieves the photos visible to the viewer: those in the
	// viewer's albums, plus photos that are public inside public albums.
	List(ctx context.Context, viewer *models.User) ([]models.Photo, error)

	// Create resolves the target album (NotFound when absent), checks that
	// the viewer owns it, stores the asset and persists the photo.
	Create(ctx context.Context, viewer *models.User, req *CreatePhotoRequest) (*models.Photo, error)

	// Delete removes a photo and releases its asset. Album owner only.
	Delete(ctx context.Context, id string, viewer *models.User) error
}
