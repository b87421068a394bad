// Package generation implements persistence of generation records and
// generation error logs using PostgreSQL.
package generation

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Repo provides generation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new generation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Generations
// ---------------------------------------------------------------------------

const createGenerationSQL = `
INSERT INTO generations (user_id, model, source_text_hash, source_text_length, generated_count, generation_duration)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at`

// Create inserts a generation record and returns it with id and created_at set.
func (r *Repo) Create(ctx context.Context, g domain.Generation) (*domain.Generation, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	err := q.QueryRow(ctx, createGenerationSQL,
		g.UserID, g.Model, g.SourceTextHash, g.SourceTextLength, g.GeneratedCount, g.GenerationDuration.Milliseconds(),
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "generation", g.UserID)
	}

	return &g, nil
}

// GetByID returns a generation owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.Generation, error) {
	sql, args, err := postgres.Builder().
		Select("id", "user_id", "model", "source_text_hash", "source_text_length", "generated_count",
			"generation_duration", "accepted_unedited_count", "accepted_edited_count", "created_at").
		From("generations").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get generation: %w", err)
	}

	var row generationRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "generation", id)
	}

	g := row.toDomain()
	return &g, nil
}

// FilterOwned returns the subset of ids that belong to userID.
func (r *Repo) FilterOwned(ctx context.Context, userID uuid.UUID, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return []int64{}, nil
	}

	sql, args, err := postgres.Builder().
		Select("id").
		From("generations").
		Where(squirrel.Eq{"user_id": userID, "id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build filter generations: %w", err)
	}

	owned := []int64{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &owned, sql, args...); err != nil {
		return nil, fmt.Errorf("filter owned generations: %w", err)
	}

	return owned, nil
}

const generationExistsSQL = `SELECT EXISTS (SELECT 1 FROM generations WHERE id = $1 AND user_id = $2)`

// SetAcceptedCounts records how many proposals of a generation were
// accepted unedited and edited. The counts are written once: a second call
// returns domain.ErrConflict. Analytical columns are never touched.
func (r *Repo) SetAcceptedCounts(ctx context.Context, userID uuid.UUID, id int64, unedited, edited int) error {
	sql, args, err := postgres.Builder().
		Update("generations").
		Set("accepted_unedited_count", unedited).
		Set("accepted_edited_count", edited).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Where("accepted_unedited_count IS NULL").
		ToSql()
	if err != nil {
		return fmt.Errorf("build update generation counts: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "generation", id)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := q.QueryRow(ctx, generationExistsSQL, id, userID).Scan(&exists); err != nil {
		return postgres.MapError(err, "generation", id)
	}
	if exists {
		return fmt.Errorf("generation %d: accepted counts already recorded: %w", id, domain.ErrConflict)
	}
	return fmt.Errorf("generation %d: %w", id, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Error logs
// ---------------------------------------------------------------------------

const createErrorLogSQL = `
INSERT INTO generation_error_logs (user_id, model, source_text_hash, source_text_length, error_code, error_message)
VALUES ($1, $2, $3, $4, $5, $6)`

// CreateErrorLog inserts a generation error log record.
func (r *Repo) CreateErrorLog(ctx context.Context, l domain.GenerationErrorLog) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createErrorLogSQL,
		l.UserID, l.Model, l.SourceTextHash, l.SourceTextLength, string(l.ErrorCode), l.ErrorMessage,
	)
	if err != nil {
		return postgres.MapError(err, "generation_error_log", l.UserID)
	}

	return nil
}

const deleteErrorLogsSQL = `DELETE FROM generation_error_logs WHERE created_at < $1`

// DeleteErrorLogsBefore removes error logs older than threshold.
// Returns the number of deleted rows. Does not use a transaction.
func (r *Repo) DeleteErrorLogsBefore(ctx context.Context, threshold time.Time) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteErrorLogsSQL, threshold)
	if err != nil {
		return 0, fmt.Errorf("delete generation_error_logs: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type generationRow struct {
	ID                    int64     `db:"id"`
	UserID                uuid.UUID `db:"user_id"`
	Model                 string    `db:"model"`
	SourceTextHash        string    `db:"source_text_hash"`
	SourceTextLength      int       `db:"source_text_length"`
	GeneratedCount        int       `db:"generated_count"`
	GenerationDuration    int64     `db:"generation_duration"`
	AcceptedUneditedCount *int      `db:"accepted_unedited_count"`
	AcceptedEditedCount   *int      `db:"accepted_edited_count"`
	CreatedAt             time.Time `db:"created_at"`
}

func (r generationRow) toDomain() domain.Generation {
	return domain.Generation{
		ID:                    r.ID,
		UserID:                r.UserID,
		Model:                 r.Model,
		SourceTextHash:        r.SourceTextHash,
		SourceTextLength:      r.SourceTextLength,
		GeneratedCount:        r.GeneratedCount,
		GenerationDuration:    time.Duration(r.GenerationDuration) * time.Millisecond,
		AcceptedUneditedCount: r.AcceptedUneditedCount,
		AcceptedEditedCount:   r.AcceptedEditedCount,
		CreatedAt:             r.CreatedAt,
	}
}
