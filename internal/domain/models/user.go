package models

import (
	"time"
)

// User is an account that can own albums. Identity is immutable once
// registered; there is no update or delete path.
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // bcrypt, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
