package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"latitude/internal/domain"
	"latitude/internal/domain/access"
	"latitude/internal/domain/models"
)

// In-memory fakes for the repository and asset-store interfaces. They keep
// insertion order stable (sorted by ID) so list assertions are deterministic.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return &domain.ConflictError{
			Message:      fmt.Sprintf("email %q is already registered", user.Email),
			ResourceType: "user",
		}
	}
	f.nextID++
	user.ID = fmt.Sprintf("user-%d", f.nextID)
	stored := *user
	f.byID[user.ID] = &stored
	f.byEmail[user.Email] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if user, ok := f.byID[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := f.byEmail[email]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
}

type fakeAlbumRepo struct {
	albums map[string]*models.Album
	nextID int
}

func newFakeAlbumRepo() *fakeAlbumRepo {
	return &fakeAlbumRepo{albums: make(map[string]*models.Album)}
}

func (f *fakeAlbumRepo) Create(ctx context.Context, album *models.Album) error {
	f.nextID++
	album.ID = fmt.Sprintf("album-%d", f.nextID)
	stored := *album
	f.albums[album.ID] = &stored
	return nil
}

func (f *fakeAlbumRepo) GetByID(ctx context.Context, id string) (*models.Album, error) {
	if album, ok := f.albums[id]; ok {
		copied := *album
		return &copied, nil
	}
	return nil, fmt.Errorf("album %s: %w", id, domain.ErrNotFound)
}

func (f *fakeAlbumRepo) List(ctx context.Context, scope access.Scope) ([]models.Album, error) {
	var out []models.Album
	for _, album := range f.albums {
		if scope.MatchAlbum(album) {
			out = append(out, *album)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAlbumRepo) Update(ctx context.Context, album *models.Album) error {
	if _, ok := f.albums[album.ID]; !ok {
		return fmt.Errorf("album %s: %w", album.ID, domain.ErrNotFound)
	}
	stored := *album
	f.albums[album.ID] = &stored
	return nil
}

func (f *fakeAlbumRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.albums[id]; !ok {
		return fmt.Errorf("album %s: %w", id, domain.ErrNotFound)
	}
	delete(f.albums, id)
	return nil
}

type fakePhotoRepo struct {
	photos map[string]*models.Photo
	albums *fakeAlbumRepo
	nextID int
	// failCreate simulates a store failure after the asset was written.
	failCreate error
}

func newFakePhotoRepo(albums *fakeAlbumRepo) *fakePhotoRepo {
	return &fakePhotoRepo{photos: make(map[string]*models.Photo), albums: albums}
}

func (f *fakePhotoRepo) Create(ctx context.Context, photo *models.Photo) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	if _, ok := f.albums.albums[photo.AlbumID]; !ok {
		return fmt.Errorf("album %s: %w", photo.AlbumID, domain.ErrNotFound)
	}
	f.nextID++
	photo.ID = fmt.Sprintf("photo-%d", f.nextID)
	stored := *photo
	f.photos[photo.ID] = &stored
	return nil
}

func (f *fakePhotoRepo) GetByID(ctx context.Context, id string) (*models.Photo, error) {
	if photo, ok := f.photos[id]; ok {
		copied := *photo
		return &copied, nil
	}
	return nil, fmt.Errorf("photo %s: %w", id, domain.ErrNotFound)
}

func (f *fakePhotoRepo) List(ctx context.Context, scope access.Scope) ([]models.Photo, error) {
	var out []models.Photo
	for _, photo := range f.photos {
		album, ok := f.albums.albums[photo.AlbumID]
		if !ok {
			continue
		}
		if scope.MatchPhoto(photo, album) {
			out = append(out, *photo)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePhotoRepo) ListByAlbum(ctx context.Context, albumID string) ([]models.Photo, error) {
	var out []models.Photo
	for _, photo := range f.photos {
		if photo.AlbumID == albumID {
			out = append(out, *photo)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePhotoRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.photos[id]; !ok {
		return fmt.Errorf("photo %s: %w", id, domain.ErrNotFound)
	}
	delete(f.photos, id)
	return nil
}

// fakeAssetStore records saved payloads by generated key.
type fakeAssetStore struct {
	saved   map[string][]byte
	deleted []string
	nextKey int
	saveErr error
}

func newFakeAssetStore() *fakeAssetStore {
	return &fakeAssetStore{saved: make(map[string][]byte)}
}

func (f *fakeAssetStore) Save(ctx context.Context, data []byte) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.nextKey++
	key := fmt.Sprintf("asset-%d.gif", f.nextKey)
	f.saved[key] = data
	return key, nil
}

func (f *fakeAssetStore) URL(key string) string {
	return "/assets/" + key
}

func (f *fakeAssetStore) Delete(ctx context.Context, key string) error {
	delete(f.saved, key)
	f.deleted = append(f.deleted, key)
	return nil
}
