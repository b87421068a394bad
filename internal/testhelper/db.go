package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
)

var (
	dbOnce    sync.Once
	sharedDSN string
	dbErr     error
)

// SetupTestDB returns a pool on a PostgreSQL 17 container shared by the whole
// test binary. The schema is created by the embedded goose migrations on
// first use. Tests isolate themselves with fresh users from SeedUser.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dbOnce.Do(func() {
		sharedDSN, dbErr = startPostgres()
	})
	if dbErr != nil {
		t.Fatalf("testhelper: setup test DB: %v", dbErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, sharedDSN)
	if err != nil {
		t.Fatalf("testhelper: create pgxpool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func startPostgres() (string, error) {
	ctx, cancel := startupContext()
	defer cancel()

	addr, err := startContainer(ctx, testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "flashcards",
			"POSTGRES_PASSWORD": "flashcards",
			"POSTGRES_DB":       "flashcards_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}, "5432")
	if err != nil {
		return "", err
	}

	dsn := fmt.Sprintf("postgres://flashcards:flashcards@%s/flashcards_test?sslmode=disable", addr)
	if _, err := postgres.Migrate(ctx, dsn); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}

	return dsn, nil
}
