package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

const resetKeyPrefix = "pwreset:"

// ResetTokenStore maps password-reset token hashes to user ids.
type ResetTokenStore struct {
	rdb redis.UniversalClient
}

// NewResetTokenStore creates a new ResetTokenStore.
func NewResetTokenStore(rdb redis.UniversalClient) *ResetTokenStore {
	return &ResetTokenStore{rdb: rdb}
}

// Save stores the token hash for ttl.
func (s *ResetTokenStore) Save(ctx context.Context, tokenHash string, userID uuid.UUID, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, resetKeyPrefix+tokenHash, userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}
	return nil
}

// Consume reads and deletes the token in one GETDEL so it can be used once.
func (s *ResetTokenStore) Consume(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	raw, err := s.rdb.GetDel(ctx, resetKeyPrefix+tokenHash).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, fmt.Errorf("reset token: %w", domain.ErrNotFound)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("consume reset token: %w", err)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("reset token owner %q: %w", raw, err)
	}
	return id, nil
}
