package service

import (
	"context"
	"errors"
	"testing"

	"latitude/internal/domain"
	"latitude/internal/domain/models"
	"latitude/internal/domain/services"
)

type albumFixture struct {
	albums   *fakeAlbumRepo
	photos   *fakePhotoRepo
	store    *fakeAssetStore
	service  services.AlbumService
	owner    *models.User
	stranger *models.User
}

func newAlbumFixture(t *testing.T) *albumFixture {
	t.Helper()

	albums := newFakeAlbumRepo()
	photos := newFakePhotoRepo(albums)
	store := newFakeAssetStore()

	return &albumFixture{
		albums:   albums,
		photos:   photos,
		store:    store,
		service:  NewAlbumService(albums, photos, store, testLogger()),
		owner:    &models.User{ID: "user-owner", Email: "amelia@example.com"},
		stranger: &models.User{ID: "user-other", Email: "theo@example.com"},
	}
}

func (f *albumFixture) seedAlbum(t *testing.T, owner *models.User, name string, isPublic bool) *models.Album {
	t.Helper()
	album := &models.Album{UserID: owner.ID, Name: name, IsPublic: isPublic}
	if err := f.albums.Create(context.Background(), album); err != nil {
		t.Fatalf("seed album: %v", err)
	}
	return album
}

func TestAlbumListAnonymousSeesOnlyPublic(t *testing.T) {
	f := newAlbumFixture(t)
	public := f.seedAlbum(t, f.owner, "South America", true)
	f.seedAlbum(t, f.owner, "Antarctica drafts", false)

	got, err := f.service.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(got) != 1 || got[0].ID != public.ID {
		t.Errorf("anonymous list = %v, want only %q", got, public.ID)
	}
}

func TestAlbumListOwnerSeesOwnPrivate(t *testing.T) {
	f := newAlbumFixture(t)
	public := f.seedAlbum(t, f.stranger, "Southeast Asia", true)
	private := f.seedAlbum(t, f.owner, "Antarctica drafts", false)

	got, err := f.service.List(context.Background(), f.owner)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	ids := map[string]bool{}
	for _, album := range got {
		ids[album.ID] = true
	}
	if len(got) != 2 || !ids[public.ID] || !ids[private.ID] {
		t.Errorf("owner list = %v, want public %q and own private %q", got, public.ID, private.ID)
	}
}

func TestAlbumGetPrivateForbiddenForStrangers(t *testing.T) {
	f := newAlbumFixture(t)
	private := f.seedAlbum(t, f.owner, "Antarctica drafts", false)

	for _, viewer := range []*models.User{nil, f.stranger} {
		if _, err := f.service.Get(context.Background(), private.ID, viewer); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("Get(viewer=%v) error = %v, want ErrForbidden", viewer, err)
		}
	}

	if _, err := f.service.Get(context.Background(), private.ID, f.owner); err != nil {
		t.Errorf("Get(owner) error = %v, want nil", err)
	}
}

func TestAlbumGetMissingIsNotFound(t *testing.T) {
	f := newAlbumFixture(t)

	if _, err := f.service.Get(context.Background(), "album-404", nil); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
}

func TestAlbumGetFiltersPhotosByVisibility(t *testing.T) {
	f := newAlbumFixture(t)
	album := f.seedAlbum(t, f.owner, "South America", true)

	visible := &models.Photo{AlbumID: album.ID, Name: "Machu Picchu", IsPublic: true, AssetKey: "a.gif"}
	hidden := &models.Photo{AlbumID: album.ID, Name: "Atacama", IsPublic: false, AssetKey: "b.gif"}
	for _, p := range []*models.Photo{visible, hidden} {
		if err := f.photos.Create(context.Background(), p); err != nil {
			t.Fatalf("seed photo: %v", err)
		}
	}

	detail, err := f.service.Get(context.Background(), album.ID, f.stranger)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(detail.Photos) != 1 || detail.Photos[0].ID != visible.ID {
		t.Errorf("stranger sees photos %v, want only %q", detail.Photos, visible.ID)
	}
	if detail.Photos[0].PhotoURL != "/assets/a.gif" {
		t.Errorf("photo URL = %q, want resolved asset URL", detail.Photos[0].PhotoURL)
	}

	detail, err = f.service.Get(context.Background(), album.ID, f.owner)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(detail.Photos) != 2 {
		t.Errorf("owner sees %d photos, want 2", len(detail.Photos))
	}
}

func TestAlbumCreateRequiresAuthentication(t *testing.T) {
	f := newAlbumFixture(t)

	_, err := f.service.Create(context.Background(), nil, &services.CreateAlbumRequest{Name: "South America"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("Create error = %v, want ErrUnauthorized", err)
	}
	if len(f.albums.albums) != 0 {
		t.Error("anonymous create must not persist an album")
	}
}

func TestAlbumCreateForcesOwnerToViewer(t *testing.T) {
	f := newAlbumFixture(t)

	album, err := f.service.Create(context.Background(), f.owner, &services.CreateAlbumRequest{
		Name:     "South America",
		IsPublic: true,
		UserID:   f.stranger.ID, // must be ignored
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if album.UserID != f.owner.ID {
		t.Errorf("album owner = %q, want viewer %q despite supplied user_id", album.UserID, f.owner.ID)
	}
}

func TestAlbumCreateValidatesName(t *testing.T) {
	f := newAlbumFixture(t)

	_, err := f.service.Create(context.Background(), f.owner, &services.CreateAlbumRequest{Name: "   "})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Create error = %v, want ErrValidation", err)
	}

	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) || len(validationErr.Fields) == 0 {
		t.Errorf("expected field-level messages, got %v", err)
	}
}

func TestAlbumUpdatePatchSemantics(t *testing.T) {
	f := newAlbumFixture(t)
	album := f.seedAlbum(t, f.owner, "South America", false)

	isPublic := true
	updated, err := f.service.Update(context.Background(), album.ID, f.owner, &services.UpdateAlbumRequest{
		IsPublic: &isPublic,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Name != "South America" {
		t.Errorf("name changed to %q, want untouched", updated.Name)
	}
	if !updated.IsPublic {
		t.Error("is_public not updated")
	}
}

func TestAlbumUpdateNonOwnerForbidden(t *testing.T) {
	f := newAlbumFixture(t)
	album := f.seedAlbum(t, f.owner, "South America", true)

	name := "Hijacked"
	_, err := f.service.Update(context.Background(), album.ID, f.stranger, &services.UpdateAlbumRequest{Name: &name})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("Update error = %v, want ErrForbidden", err)
	}

	stored, _ := f.albums.GetByID(context.Background(), album.ID)
	if stored.Name != "South America" {
		t.Errorf("album name mutated to %q by forbidden update", stored.Name)
	}
}

func TestAlbumDeleteNonOwnerForbiddenAndNoOp(t *testing.T) {
	f := newAlbumFixture(t)
	album := f.seedAlbum(t, f.owner, "South America", true)

	err := f.service.Delete(context.Background(), album.ID, f.stranger)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("Delete error = %v, want ErrForbidden", err)
	}

	if _, err := f.albums.GetByID(context.Background(), album.ID); err != nil {
		t.Error("forbidden delete must leave the album in place")
	}
}

func TestAlbumDeleteAnonymousUnauthorized(t *testing.T) {
	f := newAlbumFixture(t)
	album := f.seedAlbum(t, f.owner, "South America", true)

	if err := f.service.Delete(context.Background(), album.ID, nil); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("Delete error = %v, want ErrUnauthorized", err)
	}
}

func TestAlbumDeleteReleasesPhotoAssets(t *testing.T) {
	f := newAlbumFixture(t)
	album := f.seedAlbum(t, f.owner, "South America", true)

	photo := &models.Photo{AlbumID: album.ID, Name: "Machu Picchu", AssetKey: "a.gif"}
	if err := f.photos.Create(context.Background(), photo); err != nil {
		t.Fatalf("seed photo: %v", err)
	}

	if err := f.service.Delete(context.Background(), album.ID, f.owner); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := f.albums.GetByID(context.Background(), album.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Error("album still present after delete")
	}
	if len(f.store.deleted) != 1 || f.store.deleted[0] != "a.gif" {
		t.Errorf("released assets = %v, want [a.gif]", f.store.deleted)
	}
}
