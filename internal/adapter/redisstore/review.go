package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

const (
	reviewKeyPrefix = "review:"
	lockKeySuffix   = ":lock"
)

// unlockScript deletes the lock only if it still holds the caller's token.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// ReviewStore keeps review sessions as JSON values with a TTL.
type ReviewStore struct {
	rdb redis.UniversalClient
}

// NewReviewStore creates a new ReviewStore.
func NewReviewStore(rdb redis.UniversalClient) *ReviewStore {
	return &ReviewStore{rdb: rdb}
}

// Save stores the session and refreshes its TTL.
func (s *ReviewStore) Save(ctx context.Context, sess domain.ReviewSession, ttl time.Duration) error {
	raw, err := json.Marshal(toRecord(sess))
	if err != nil {
		return fmt.Errorf("encode review %s: %w", sess.ID, err)
	}

	if err := s.rdb.Set(ctx, reviewKey(sess.ID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("save review %s: %w", sess.ID, err)
	}
	return nil
}

// Get returns the session or domain.ErrNotFound when it is missing or expired.
func (s *ReviewStore) Get(ctx context.Context, id string) (*domain.ReviewSession, error) {
	raw, err := s.rdb.Get(ctx, reviewKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("review %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get review %s: %w", id, err)
	}

	var rec reviewRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode review %s: %w", id, err)
	}

	sess := rec.toDomain()
	return &sess, nil
}

// Delete removes the session. Deleting a missing session is not an error.
func (s *ReviewStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, reviewKey(id)).Err(); err != nil {
		return fmt.Errorf("delete review %s: %w", id, err)
	}
	return nil
}

// Lock takes the mutation lock of a session with SET NX. The lock expires
// after ttl even if it is never released. Returns domain.ErrConflict while
// another holder has it.
func (s *ReviewStore) Lock(ctx context.Context, id string, ttl time.Duration) (func(context.Context) error, error) {
	token, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("lock token: %w", err)
	}

	key := reviewKey(id) + lockKeySuffix
	ok, err := s.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("lock review %s: %w", id, err)
	}
	if !ok {
		return nil, fmt.Errorf("review %s is locked: %w", id, domain.ErrConflict)
	}

	return func(ctx context.Context) error {
		if err := unlockScript.Run(ctx, s.rdb, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("unlock review %s: %w", id, err)
		}
		return nil
	}, nil
}

func reviewKey(id string) string { return reviewKeyPrefix + id }

type proposalRecord struct {
	ID     string `json:"id"`
	Front  string `json:"front"`
	Back   string `json:"back"`
	Source string `json:"source"`
	Status string `json:"status"`
	Edited bool   `json:"edited"`
}

type reviewRecord struct {
	ID           string           `json:"id"`
	UserID       uuid.UUID        `json:"user_id"`
	GenerationID int64            `json:"generation_id"`
	Status       string           `json:"status"`
	Proposals    []proposalRecord `json:"proposals"`
	EditingID    string           `json:"editing_id,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	SavingSince  time.Time        `json:"saving_since"`
}

func toRecord(s domain.ReviewSession) reviewRecord {
	ps := make([]proposalRecord, len(s.Proposals))
	for i, p := range s.Proposals {
		ps[i] = proposalRecord{
			ID:     p.ID,
			Front:  p.Front,
			Back:   p.Back,
			Source: string(p.Source),
			Status: string(p.Status),
			Edited: p.Edited,
		}
	}
	return reviewRecord{
		ID:           s.ID,
		UserID:       s.UserID,
		GenerationID: s.GenerationID,
		Status:       string(s.Status),
		Proposals:    ps,
		EditingID:    s.EditingID,
		CreatedAt:    s.CreatedAt,
		SavingSince:  s.SavingSince,
	}
}

func (r reviewRecord) toDomain() domain.ReviewSession {
	ps := make([]domain.Proposal, len(r.Proposals))
	for i, p := range r.Proposals {
		ps[i] = domain.Proposal{
			ID:     p.ID,
			Front:  p.Front,
			Back:   p.Back,
			Source: domain.FlashcardSource(p.Source),
			Status: domain.ProposalStatus(p.Status),
			Edited: p.Edited,
		}
	}
	return domain.ReviewSession{
		ID:           r.ID,
		UserID:       r.UserID,
		GenerationID: r.GenerationID,
		Status:       domain.ReviewStatus(r.Status),
		Proposals:    ps,
		EditingID:    r.EditingID,
		CreatedAt:    r.CreatedAt,
		SavingSince:  r.SavingSince,
	}
}
