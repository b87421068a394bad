// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const userColumns = `id, email, password_hash, created_at, updated_at`

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, id, getByIDSQL, id)
}

const getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

// GetByEmail returns a user by (normalized) email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, email, getByEmailSQL, email)
}

const createUserSQL = `
INSERT INTO users (id, email, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + userColumns

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	return r.getOne(ctx, u.Email, createUserSQL, u.ID, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
}

const updatePasswordSQL = `
UPDATE users SET password_hash = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

// UpdatePassword replaces the password hash of a user.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) (*domain.User, error) {
	return r.getOne(ctx, id, updatePasswordSQL, id, passwordHash)
}

func (r *Repo) getOne(ctx context.Context, key any, sql string, args ...any) (*domain.User, error) {
	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}

	u := row.toDomain()
	return &u, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
