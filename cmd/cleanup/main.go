// Command cleanup deletes generation error logs older than the configured
// retention period. It is intended to be invoked by an external cron job,
// not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/generation"
	"github.com/heartmarshall/flashcards-backend/internal/app"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	generationsvc "github.com/heartmarshall/flashcards-backend/internal/service/generation"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// Cleanup only touches the repository.
	svc := generationsvc.NewService(logger, nil, generation.New(pool), nil)

	retention := time.Duration(cfg.Generation.ErrorLogRetentionDays) * 24 * time.Hour

	deleted, err := svc.CleanupErrorLogs(ctx, retention)
	if err != nil {
		logger.Error("error log cleanup failed",
			slog.String("error", err.Error()),
			slog.Duration("retention", retention),
		)
		os.Exit(1)
	}

	logger.Info("error log cleanup completed",
		slog.Int("deleted", deleted),
		slog.Duration("retention", retention),
	)
}
