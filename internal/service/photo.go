package service

import (
	"context"
	"errors"
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

// photoService implements the PhotoService interface
type photoService struct {
	photos repositories.PhotoRepository
	albums repositories.AlbumRepository
	store  assets.Store
	logger *slog.Logger
}

// NewPhotoService creates a new photo service
func NewPhotoService(
	photos repositories.PhotoRepository,
	albums repositories.AlbumRepository,
	store assets.Store,
	logger *slog.Logger,
) services.PhotoService {
	return &photoService{
		photos: photos,
		albums: albums,
		store:  store,
		logger: logger,
	}
}

// List retrieves the photos visible to the viewer
func (s *photoService) List(ctx context.Context, viewer *models.User) ([]models.Photo, error) {
	photos, err := s.photos.List(ctx, access.PhotoScope(viewer))
	if err != nil {
		return nil, err
	}

	for i := range photos {
		photos[i].PhotoURL = s.store.URL(photos[i].AssetKey)
	}

	return photos, nil
}

// Create adds a photo to an album the viewer owns
func (s *photoService) Create(ctx context.Context, viewer *models.User, req *services.CreatePhotoRequest) (*models.Photo, error) {
	name := strings.TrimSpace(req.Name)
	err := validation.Errors{
		"name":     validation.Validate(name, validation.Required, validation.Length(1, 255)),
		"album_id": validation.Validate(req.AlbumID, validation.Required),
		"photo":    validation.Validate(req.Photo, validation.Required),
	}.Filter()
	if err != nil {
		return nil, validationError(err)
	}

	// The album is resolved before authorization: a missing album is
	// NotFound, not Forbidden.
	album, err := s.albums.GetByID(ctx, req.AlbumID)
	if err != nil {
		return nil, err
	}

	if !access.CanCreatePhoto(viewer, album) {
		return nil, forbiddenOrUnauthenticated(viewer, "only the album owner may add photos")
	}

	key, err := s.store.Save(ctx, req.Photo)
	if err != nil {
		if errors.Is(err, assets.ErrUnsupportedFormat) {
			// Same field-level shape as the ozzo failures above.
			return nil, &domain.ValidationError{Fields: []string{"photo must be a supported image format"}}
		}
		return nil, err
	}

	photo := &models.Photo{
		AlbumID:  album.ID,
		Name:     name,
		IsPublic: req.IsPublic,
		AssetKey: key,
	}

	if err := s.photos.Create(ctx, photo); err != nil {
		// Keep the asset store consistent with the row that never landed.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.logger.Warn("failed to release asset after insert failure", "key", key, "error", delErr)
		}
		return nil, err
	}

	photo.PhotoURL = s.store.URL(photo.AssetKey)

	s.logger.Info("photo created",
		"id", photo.ID,
		"album_id", album.ID,
		"user_id", viewer.ID,
	)

	return photo, nil
}

// Delete removes a photo and releases its asset
func (s *photoService) Delete(ctx context.Context, id string, viewer *models.User) error {
	photo, err := s.photos.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Two-hop ownership read: photo -> album -> owner. Photos never carry
	// an owner of their own.
	album, err := s.albums.GetByID(ctx, photo.AlbumID)
	if err != nil {
		return err
	}

	if !access.CanDeletePhoto(viewer, album) {
		return forbiddenOrUnauthenticated(viewer, "only the album owner may delete photos")
	}

	if err := s.photos.Delete(ctx, photo.ID); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, photo.AssetKey); err != nil {
		s.logger.Warn("failed to release asset", "key", photo.AssetKey, "error", err)
	}

	s.logger.Info("photo deleted", "id", photo.ID, "album_id", album.ID, "user_id", viewer.ID)

	return nil
}
