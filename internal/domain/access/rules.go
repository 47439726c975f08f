// Package access holds the pure authorization rules for albums and photos.
// Every function here is a decision over in-memory values: no I/O, no
// mutation, no knowledge of HTTP. Services apply these rules after resolving
// the target entity and translate a false result into a ForbiddenError.
package access

import (
	"latitude/internal/domain/models"
)

// CanViewAlbum reports whether the viewer may read a single album.
// Public albums are readable by anyone, including anonymous viewers.
func CanViewAlbum(viewer *models.User, album *models.Album) bool {
	if album.IsPublic {
		return true
	}
	return viewer != nil && viewer.ID == album.UserID
}

// CanCreateAlbum reports whether the viewer may create an album.
// Any authenticated user may; the new album's owner is always the viewer.
func CanCreateAlbum(viewer *models.User) bool {
	return viewer != nil
}

// CanModifyAlbum reports whether the viewer may update the album.
func CanModifyAlbum(viewer *models.User, album *models.Album) bool {
	return viewer != nil && viewer.ID == album.UserID
}

// CanDeleteAlbum reports whether the viewer may delete the album.
// Same rule as modification: owner only.
func CanDeleteAlbum(viewer *models.User, album *models.Album) bool {
	return CanModifyAlbum(viewer, album)
}

// CanCreatePhoto reports whether the viewer may add a photo to targetAlbum.
// The caller resolves targetAlbum from client input before this check, so a
// missing album surfaces as NotFound rather than Forbidden.
func CanCreatePhoto(viewer *models.User, targetAlbum *models.Album) bool {
	return viewer != nil && viewer.ID == targetAlbum.UserID
}

// CanDeletePhoto reports whether the viewer may delete a photo that lives
// in album. Authorization is always against the album's owner; photos carry
// no owner of their own.
func CanDeletePhoto(viewer *models.User, album *models.Album) bool {
	return viewer != nil && viewer.ID == album.UserID
}

// VisiblePhoto reports whether the viewer may see a photo in album.
// Non-owners see a photo only when both the photo and its album are public;
// the album owner always sees it.
func VisiblePhoto(viewer *models.User, photo *models.Photo, album *models.Album) bool {
	if viewer != nil && viewer.ID == album.UserID {
		return true
	}
	return photo.IsPublic && album.IsPublic
}

// Scope describes the visibility window for list queries. Repositories
// translate it to SQL; tests exercise it directly through Match helpers.
// OwnerID is nil for anonymous viewers.
type Scope struct {
	OwnerID *string
}

// AlbumScope returns the list scope for albums: owned plus public for an
// authenticated viewer, public only otherwise.
func AlbumScope(viewer *models.User) Scope {
	if viewer == nil {
		return Scope{}
	}
	id := viewer.ID
	return Scope{OwnerID: &id}
}

// PhotoScope returns the list scope for photos. Same owner semantics as
// AlbumScope, but the public side requires both photo and album flags.
func PhotoScope(viewer *models.User) Scope {
	return AlbumScope(viewer)
}

// MatchAlbum reports whether an album falls inside the scope.
func (s Scope) MatchAlbum(album *models.Album) bool {
	if album.IsPublic {
		return true
	}
	return s.OwnerID != nil && *s.OwnerID == album.UserID
}

// MatchPhoto reports whether a photo (with its album) falls inside the scope.
func (s Scope) MatchPhoto(photo *models.Photo, album *models.Album) bool {
	if s.OwnerID != nil && *s.OwnerID == album.UserID {
		return true
	}
	return photo.IsPublic && album.IsPublic
}
