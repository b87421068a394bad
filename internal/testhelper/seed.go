package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + uniqueSuffix() + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplacehold",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedGeneration creates a generation row owned by userID.
func SeedGeneration(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Generation {
	t.Helper()

	g := domain.Generation{
		UserID:             userID,
		Model:              "test-model",
		SourceTextHash:     "d41d8cd98f00b204e9800998ecf8427e",
		SourceTextLength:   1500,
		GeneratedCount:     3,
		GenerationDuration: 250 * time.Millisecond,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO generations (user_id, model, source_text_hash, source_text_length, generated_count, generation_duration)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		g.UserID, g.Model, g.SourceTextHash, g.SourceTextLength, g.GeneratedCount, g.GenerationDuration.Milliseconds(),
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedGeneration: %v", err)
	}

	return g
}

// SeedFlashcard creates a manual flashcard owned by userID.
func SeedFlashcard(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Flashcard {
	t.Helper()

	suffix := uniqueSuffix()
	fc := domain.Flashcard{
		UserID: userID,
		Front:  "front " + suffix,
		Back:   "back " + suffix,
		Source: domain.SourceManual,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO flashcards (user_id, front, back, source)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		fc.UserID, fc.Front, fc.Back, string(fc.Source),
	).Scan(&fc.ID, &fc.CreatedAt, &fc.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedFlashcard: %v", err)
	}

	return fc
}
