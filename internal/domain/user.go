package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Email is stored lower-cased and is unique.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is the stored side of a refresh token. Only the SHA-256 hex
// digest of the raw token is kept; rotation revokes the old row.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// Usable reports whether the token may still be exchanged at now.
func (t *RefreshToken) Usable(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
