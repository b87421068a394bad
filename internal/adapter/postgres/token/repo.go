// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const tokenColumns = `id, user_id, token_hash, expires_at, created_at, revoked_at`

const createTokenSQL = `
INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
VALUES ($1, $2, $3)
RETURNING ` + tokenColumns

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	var row tokenRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createTokenSQL, userID, tokenHash, expiresAt); err != nil {
		return nil, postgres.MapError(err, "refresh_token", userID)
	}

	t := row.toDomain()
	return &t, nil
}

const getActiveByHashSQL = `
SELECT ` + tokenColumns + `
FROM refresh_tokens
WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > now()`

// GetByHash returns an active (non-revoked, non-expired) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	var row tokenRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getActiveByHashSQL, tokenHash); err != nil {
		return nil, postgres.MapError(err, "refresh_token", shortHash(tokenHash))
	}

	t := row.toDomain()
	return &t, nil
}

const revokeByIDSQL = `UPDATE refresh_tokens SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL`

// RevokeByID revokes a specific refresh token by setting revoked_at.
// Idempotent: revoking an already-revoked token is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, revokeByIDSQL, id); err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	return nil
}

const revokeAllByUserSQL = `UPDATE refresh_tokens SET revoked_at = now() WHERE user_id = $1 AND revoked_at IS NULL`

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, revokeAllByUserSQL, userID); err != nil {
		return postgres.MapError(err, "refresh_tokens of user", userID)
	}
	return nil
}

const deleteExpiredSQL = `DELETE FROM refresh_tokens WHERE expires_at < now() OR revoked_at IS NOT NULL`

// DeleteExpired removes all expired or revoked tokens from the database.
// Returns the count of deleted tokens.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteExpiredSQL)
	if err != nil {
		return 0, fmt.Errorf("delete expired refresh_tokens: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type tokenRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

func (r tokenRow) toDomain() domain.RefreshToken {
	return domain.RefreshToken{
		ID:        r.ID,
		UserID:    r.UserID,
		TokenHash: r.TokenHash,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
		RevokedAt: r.RevokedAt,
	}
}

// shortHash keeps token hashes out of full-length log lines.
func shortHash(h string) string {
	if len(h) > 8 {
		return h[:8]
	}
	return h
}
