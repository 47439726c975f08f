package models

import (
	"time"
)

// Album is a named, visibility-flagged photo collection owned by exactly
// one user. UserID is fixed at creation and never taken from client input.
type Album struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	IsPublic  bool      `json:"is_public" db:"is_public"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// AlbumDetail is an album plus the photos visible to the requesting viewer.
type AlbumDetail struct {
	Album
	Photos []Photo `json:"photos"`
}
