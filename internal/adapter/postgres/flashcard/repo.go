// Package flashcard implements the Flashcard repository using PostgreSQL.
package flashcard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

const table = "flashcards"

var (
	columns   = []string{"id", "user_id", "front", "back", "source", "generation_id", "created_at", "updated_at"}
	returning = strings.Join(columns, ", ")
)

// Repo provides flashcard persistence backed by PostgreSQL.
// Every operation is scoped by owner.
type Repo struct {
	db postgres.Querier
}

// New creates a new flashcard repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateMany inserts all items in one multi-row statement and returns the
// persisted rows in insertion order.
func (r *Repo) CreateMany(ctx context.Context, userID uuid.UUID, items []domain.FlashcardInput) ([]domain.Flashcard, error) {
	if len(items) == 0 {
		return []domain.Flashcard{}, nil
	}

	insert := postgres.Builder().
		Insert(table).
		Columns("user_id", "front", "back", "source", "generation_id")
	for _, it := range items {
		insert = insert.Values(userID, it.Front, it.Back, string(it.Source), it.GenerationID)
	}
	insert = insert.Suffix("RETURNING " + returning)

	sql, args, err := insert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert flashcards: %w", err)
	}

	var rows []flashcardRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "flashcards", userID)
	}

	return toDomainSlice(rows), nil
}

// Update applies a partial update. Returns domain.ErrNotFound if the card
// does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, id int64, patch domain.FlashcardPatch) (*domain.Flashcard, error) {
	if patch.IsEmpty() {
		return nil, domain.NewValidationError("body", "at least one field is required")
	}

	update := postgres.Builder().
		Update(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + returning)

	if patch.Front != nil {
		update = update.Set("front", *patch.Front)
	}
	if patch.Back != nil {
		update = update.Set("back", *patch.Back)
	}
	if patch.Source != nil {
		update = update.Set("source", string(*patch.Source))
	}
	if patch.SetGenerationID {
		update = update.Set("generation_id", patch.GenerationID)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update flashcard: %w", err)
	}

	var row flashcardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard", id)
	}

	fc := row.toDomain()
	return &fc, nil
}

// Delete removes a flashcard. Returns domain.ErrNotFound if the card does
// not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete flashcard: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "flashcard", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("flashcard %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns one flashcard owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.Flashcard, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get flashcard: %w", err)
	}

	var row flashcardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard", id)
	}

	fc := row.toDomain()
	return &fc, nil
}

// List returns one page of the user's flashcards and the total count.
// The count is a separate query with the same owner filter; the two are not atomic.
// Returns an empty slice when the page is empty.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.FlashcardFilter) ([]domain.Flashcard, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	// id breaks ties so pages stay stable for equal sort keys.
	order := fmt.Sprintf("%s %s, id %s", filter.SortBy, filter.Order, filter.Order)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy(order).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list flashcards: %w", err)
	}

	var rows []flashcardRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, 0, fmt.Errorf("list flashcards: %w", err)
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count flashcards: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count flashcards: %w", err)
	}

	return toDomainSlice(rows), total, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type flashcardRow struct {
	ID           int64     `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Front        string    `db:"front"`
	Back         string    `db:"back"`
	Source       string    `db:"source"`
	GenerationID *int64    `db:"generation_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r flashcardRow) toDomain() domain.Flashcard {
	return domain.Flashcard{
		ID:           r.ID,
		UserID:       r.UserID,
		Front:        r.Front,
		Back:         r.Back,
		Source:       domain.FlashcardSource(r.Source),
		GenerationID: r.GenerationID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toDomainSlice(rows []flashcardRow) []domain.Flashcard {
	out := make([]domain.Flashcard, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}
