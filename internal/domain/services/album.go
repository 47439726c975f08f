package services

import (
	"context"

	"latitude/internal/domain/models"
)

// CreateAlbumRequest represents a request to create an album.
// UserID is accepted on the wire for compatibility but never honored:
// the created album's owner is always the requesting viewer.
type CreateAlbumRequest struct {
	Name     string `json:"name"`
	IsPublic bool   `json:"is_public"`
	UserID   string `json:"user_id,omitempty"`
}

// UpdateAlbumRequest represents a patch to an album. Absent fields are
// left unchanged.
type UpdateAlbumRequest struct {
	Name     *string `json:"name,omitempty"`
	IsPublic *bool   `json:"is_public,omitempty"`
}

// AlbumService defines business logic operations for albums. Every
// operation takes the viewer resolved for this request; nil means anonymous.
type AlbumService interface {
	// List retrieves the albums visible to the viewer: public ones, plus
	// the viewer's own when authenticated.
	List(ctx context.Context, viewer *models.User) ([]models.Album, error)

	// Get retrieves one album with the photos visible to the viewer.
	// Fails NotFound when absent, Forbidden when private and not owned.
	Get(ctx context.Context, id string, viewer *models.User) (*models.AlbumDetail, error)

	// Create creates an album owned by the viewer.
	// Fails Unauthenticated for anonymous viewers.
	Create(ctx context.Context, viewer *models.User, req *CreateAlbumRequest) (*models.Album, error)

	// Update patches an album. Owner only.
	Update(ctx context.Context, id string, viewer *models.User, req *UpdateAlbumRequest) (*models.Album, error)

	// Delete removes an album and its photos. Owner only.
	Delete(ctx context.Context, id string, viewer *models.User) error
}
