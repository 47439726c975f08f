package service

import (
	"context"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"latitude/internal/assets"
	"latitude/internal/domain"
	"latitude/internal/domain/access"
	"latitude/internal/domain/models"
	"latitude/internal/domain/repositories"
	"latitude/internal/domain/services"
)

// albumService implements the AlbumService interface
type albumService struct {
	albums repositories.AlbumRepository
	photos repositories.PhotoRepository
	store  assets.Store
	logger *slog.Logger
}

// NewAlbumService creates a new album service
func NewAlbumService(
	albums repositories.AlbumRepository,
	photos repositories.PhotoRepository,
	store assets.Store,
	logger *slog.Logger,
) services.AlbumService {
	return &albumService{
		albums: albums,
		photos: photos,
		store:  store,
		logger: logger,
	}
}

// List retrieves the albums visible to the viewer
func (s *albumService) List(ctx context.Context, viewer *models.User) ([]models.Album, error) {
	return s.albums.List(ctx, access.AlbumScope(viewer))
}

// Get retrieves one album plus the photos the viewer may see inside it
func (s *albumService) Get(ctx context.Context, id string, viewer *models.User) (*models.AlbumDetail, error) {
	album, err := s.albums.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !access.CanViewAlbum(viewer, album) {
		return nil, &domain.ForbiddenError{Message: "album is private"}
	}

	all, err := s.photos.ListByAlbum(ctx, album.ID)
	if err != nil {
		return nil, err
	}

	visible := make([]models.Photo, 0, len(all))
	for _, photo := range all {
		if access.VisiblePhoto(viewer, &photo, album) {
			photo.PhotoURL = s.store.URL(photo.AssetKey)
			visible = append(visible, photo)
		}
	}

	return &models.AlbumDetail{Album: *album, Photos: visible}, nil
}

// Create creates an album owned by the viewer
func (s *albumService) Create(ctx context.Context, viewer *models.User, req *services.CreateAlbumRequest) (*models.Album, error) {
	if !access.CanCreateAlbum(viewer) {
		return nil, &domain.UnauthorizedError{Message: "authentication required"}
	}

	name := strings.TrimSpace(req.Name)
	if err := s.validateName(name); err != nil {
		return nil, err
	}

	// Owner is the viewer, unconditionally. A client-supplied user_id is
	// ignored rather than rejected, matching the permissive input shape.
	album := &models.Album{
		UserID:   viewer.ID,
		Name:     name,
		IsPublic: req.IsPublic,
	}

	if err := s.albums.Create(ctx, album); err != nil {
		return nil, err
	}

	s.logger.Info("album created",
		"id", album.ID,
		"name", album.Name,
		"user_id", viewer.ID,
	)

	return album, nil
}

// Update patches an album's name and visibility
func (s *albumService) Update(ctx context.Context, id string, viewer *models.User, req *services.UpdateAlbumRequest) (*models.Album, error) {
	album, err := s.albums.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !access.CanModifyAlbum(viewer, album) {
		return nil, forbiddenOrUnauthenticated(viewer, "only the album owner may modify it")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := s.validateName(name); err != nil {
			return nil, err
		}
		album.Name = name
	}
	if req.IsPublic != nil {
		album.IsPublic = *req.IsPublic
	}

	if err := s.albums.Update(ctx, album); err != nil {
		return nil, err
	}

	s.logger.Info("album updated", "id", album.ID, "user_id", viewer.ID)

	return album, nil
}

// Delete removes an album and its photos, releasing their assets
func (s *albumService) Delete(ctx context.Context, id string, viewer *models.User) error {
	album, err := s.albums.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !access.CanDeleteAlbum(viewer, album) {
		return forbiddenOrUnauthenticated(viewer, "only the album owner may delete it")
	}

	// Collect asset keys before the rows cascade away.
	photos, err := s.photos.ListByAlbum(ctx, album.ID)
	if err != nil {
		return err
	}

	if err := s.albums.Delete(ctx, album.ID); err != nil {
		return err
	}

	for _, photo := range photos {
		if err := s.store.Delete(ctx, photo.AssetKey); err != nil {
			// The row is gone; a stranded file is not worth failing the
			// request over.
			s.logger.Warn("failed to release asset", "key", photo.AssetKey, "error", err)
		}
	}

	s.logger.Info("album deleted", "id", album.ID, "user_id", viewer.ID)

	return nil
}

func (s *albumService) validateName(name string) error {
	err := validation.Errors{
		"name": validation.Validate(name, validation.Required, validation.Length(1, 255)),
	}.Filter()
	if err != nil {
		return validationError(err)
	}
	return nil
}

// forbiddenOrUnauthenticated keeps the status-code contract in one place:
// anonymous callers of owner-gated operations get 401, authenticated
// non-owners get 403.
func forbiddenOrUnauthenticated(viewer *models.User, reason string) error {
	if viewer == nil {
		return &domain.UnauthorizedError{Message: "authentication required"}
	}
	return &domain.ForbiddenError{Message: reason}
}
