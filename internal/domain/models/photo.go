package models

import (
	"time"
)

// Photo belongs to exactly one album and is owned transitively through it;
// there is no photo-level owner column. AssetKey is the opaque handle into
// the asset store, resolved to PhotoURL at the transport boundary.
type Photo struct {
	ID        string    `json:"id" db:"id"`
	AlbumID   string    `json:"album_id" db:"album_id"`
	Name      string    `json:"name" db:"name"`
	IsPublic  bool      `json:"is_public" db:"is_public"`
	AssetKey  string    `json:"-" db:"asset_key"`
	PhotoURL  string    `json:"photo_url"` // Computed from AssetKey, not stored in DB
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
