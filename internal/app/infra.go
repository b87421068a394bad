package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/memory"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/rabbitmq"
	"github.com/heartmarshall/flashcards-backend/internal/adapter/redisstore"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/transport/rest"
)

type reviewStore interface {
	Save(ctx context.Context, s domain.ReviewSession, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.ReviewSession, error)
	Delete(ctx context.Context, id string) error
	Lock(ctx context.Context, id string, ttl time.Duration) (func(context.Context) error, error)
}

type resetStore interface {
	Save(ctx context.Context, tokenHash string, userID uuid.UUID, ttl time.Duration) error
	Consume(ctx context.Context, tokenHash string) (uuid.UUID, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// infra holds the short-lived state stores and the event publisher, backed
// by Redis and RabbitMQ when configured and by in-process fallbacks otherwise.
type infra struct {
	reviews reviewStore
	resets  resetStore
	events  eventPublisher
	pingers map[string]rest.Pinger
	closers []func() error
}

func newInfra(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*infra, error) {
	in := &infra{pingers: make(map[string]rest.Pinger)}

	if cfg.Redis.Enabled() {
		rdb, err := redisstore.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		in.closers = append(in.closers, rdb.Close)
		in.reviews = redisstore.NewReviewStore(rdb)
		in.resets = redisstore.NewResetTokenStore(rdb)
		in.pingers["redis"] = redisPinger(rdb)
		logger.Info("state stores: redis", slog.String("addr", cfg.Redis.Addr))
	} else {
		in.reviews = memory.NewReviewStore()
		in.resets = memory.NewResetTokenStore()
		logger.Warn("state stores: in-memory, review sessions do not survive restarts")
	}

	if cfg.RabbitMQ.Enabled() {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.EventQueue)
		if err != nil {
			in.close(logger)
			return nil, fmt.Errorf("rabbitmq: %w", err)
		}
		in.closers = append(in.closers, pub.Close)
		in.events = pub
		logger.Info("events: rabbitmq", slog.String("queue", cfg.RabbitMQ.EventQueue))
	} else {
		in.events = rabbitmq.NewLogPublisher(logger)
		logger.Warn("events: broker not configured, events are only logged")
	}

	return in, nil
}

func (in *infra) close(logger *slog.Logger) {
	for i := len(in.closers) - 1; i >= 0; i-- {
		if err := in.closers[i](); err != nil {
			logger.Warn("close resource", slog.String("error", err.Error()))
		}
	}
}

func redisPinger(rdb redis.UniversalClient) rest.Pinger {
	return rest.PingFunc(func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
}
