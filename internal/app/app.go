package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres"
	flashcardrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/flashcard"
	generationrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/generation"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/provider/article"
	authpkg "github.com/heartmarshall/flashcards-backend/internal/auth"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	authsvc "github.com/heartmarshall/flashcards-backend/internal/service/auth"
	"github.com/heartmarshall/flashcards-backend/internal/service/chat"
	"github.com/heartmarshall/flashcards-backend/internal/service/flashcard"
	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
	"github.com/heartmarshall/flashcards-backend/internal/service/review"
	"github.com/heartmarshall/flashcards-backend/internal/service/source"
	"github.com/heartmarshall/flashcards-backend/internal/transport/middleware"
	"github.com/heartmarshall/flashcards-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to the
// database and optional Redis/RabbitMQ, builds services and serves HTTP until
// ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("ai_provider", cfg.AI.Provider),
	)

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	in, err := newInfra(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer in.close(logger)

	completer, err := NewCompleter(cfg.AI, logger)
	if err != nil {
		return err
	}

	// Repositories.
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	tokens := token.New(pool)
	cards := flashcardrepo.New(pool)
	generations := generationrepo.New(pool)

	// Services.
	authService := authsvc.NewService(logger, authsvc.Deps{
		Users:     users,
		Tokens:    tokens,
		Resets:    in.resets,
		Tx:        txm,
		JWT:       authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		Passwords: authpkg.NewPasswordHasher(cfg.Auth.PasswordHashCost),
		Events:    in.events,
	}, cfg.Auth)
	flashcardService := flashcard.NewService(logger, cards, generations, txm)
	generationService := generation.NewService(logger, completer, generations, in.events)
	reviewService := review.NewService(logger, in.reviews, flashcardService, generations, txm, cfg.Review)
	chatService := chat.NewService(logger, completer)
	sourceService := source.NewService(logger, article.NewProvider(logger))

	// HTTP.
	pingers := map[string]rest.Pinger{"database": pool}
	for name, p := range in.pingers {
		pingers[name] = p
	}

	opts := rest.RouterOptions{
		Middleware: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID,
			middleware.CORS(cfg.CORS),
			middleware.Auth(authService),
			middleware.Logger(logger),
			middleware.BodyLimit(cfg.Server.MaxBodyBytes),
		},
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(5 * time.Minute)
		defer limiter.Stop()
		opts.AuthLimit = limiter.Limit("auth", cfg.RateLimit.Auth, cfg.RateLimit.Window())
		opts.GenerationLimit = limiter.Limit("generation", cfg.RateLimit.Generation, cfg.RateLimit.Window())
	}

	handler := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(BuildVersion(), pingers),
		Auth:       rest.NewAuthHandler(authService, logger),
		Generation: rest.NewGenerationHandler(generationService, reviewService, logger),
		Flashcard:  rest.NewFlashcardHandler(flashcardService, logger),
		Review:     rest.NewReviewHandler(reviewService, logger),
		Chat:       rest.NewChatHandler(chatService, logger),
		Source:     rest.NewSourceHandler(sourceService, logger),
	}, opts)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
