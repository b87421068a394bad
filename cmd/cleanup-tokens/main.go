// Command cleanup-tokens deletes expired and revoked refresh tokens.
// It is intended to be invoked by an external cron job.
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
	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/flashcards-backend/internal/app"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	authsvc "github.com/heartmarshall/flashcards-backend/internal/service/auth"
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := authsvc.NewService(logger, authsvc.Deps{Tokens: token.New(pool)}, cfg.Auth)

	deleted, err := svc.CleanupExpiredTokens(ctx)
	if err != nil {
		logger.Error("token cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("token cleanup completed", slog.Int("deleted", deleted))
}
