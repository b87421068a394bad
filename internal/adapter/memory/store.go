// Package memory provides process-local stores used when Redis is not
// configured. State is lost on restart and is not shared between instances.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

func (e entry[T]) expired(now time.Time) bool {
	return !now.Before(e.expiresAt)
}

// ReviewStore keeps review sessions in a map with per-entry expiry.
type ReviewStore struct {
	mu       sync.Mutex
	sessions map[string]entry[domain.ReviewSession]
	locks    map[string]entry[uint64]
	seq      uint64
	now      func() time.Time
}

// NewReviewStore creates an empty ReviewStore.
func NewReviewStore() *ReviewStore {
	return &ReviewStore{
		sessions: make(map[string]entry[domain.ReviewSession]),
		locks:    make(map[string]entry[uint64]),
		now:      time.Now,
	}
}

func (s *ReviewStore) Save(_ context.Context, sess domain.ReviewSession, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.Proposals = slices.Clone(sess.Proposals)
	s.sessions[sess.ID] = entry[domain.ReviewSession]{value: sess, expiresAt: s.now().Add(ttl)}
	s.sweepLocked()
	return nil
}

func (s *ReviewStore) Get(_ context.Context, id string) (*domain.ReviewSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok || e.expired(s.now()) {
		delete(s.sessions, id)
		return nil, fmt.Errorf("review %s: %w", id, domain.ErrNotFound)
	}

	sess := e.value
	sess.Proposals = slices.Clone(sess.Proposals)
	return &sess, nil
}

func (s *ReviewStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// Lock returns domain.ErrConflict while an unexpired lock is held.
func (s *ReviewStore) Lock(_ context.Context, id string, ttl time.Duration) (func(context.Context) error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.locks[id]; ok && !e.expired(s.now()) {
		return nil, fmt.Errorf("review %s is locked: %w", id, domain.ErrConflict)
	}

	s.seq++
	token := s.seq
	s.locks[id] = entry[uint64]{value: token, expiresAt: s.now().Add(ttl)}

	return func(context.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		if e, ok := s.locks[id]; ok && e.value == token {
			delete(s.locks, id)
		}
		return nil
	}, nil
}

// sweepLocked drops expired entries. Callers hold s.mu.
func (s *ReviewStore) sweepLocked() {
	now := s.now()
	for id, e := range s.sessions {
		if e.expired(now) {
			delete(s.sessions, id)
		}
	}
	for id, e := range s.locks {
		if e.expired(now) {
			delete(s.locks, id)
		}
	}
}

// ResetTokenStore keeps password-reset token hashes in a map.
type ResetTokenStore struct {
	mu     sync.Mutex
	tokens map[string]entry[uuid.UUID]
	now    func() time.Time
}

// NewResetTokenStore creates an empty ResetTokenStore.
func NewResetTokenStore() *ResetTokenStore {
	return &ResetTokenStore{
		tokens: make(map[string]entry[uuid.UUID]),
		now:    time.Now,
	}
}

func (s *ResetTokenStore) Save(_ context.Context, tokenHash string, userID uuid.UUID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for h, e := range s.tokens {
		if e.expired(now) {
			delete(s.tokens, h)
		}
	}
	s.tokens[tokenHash] = entry[uuid.UUID]{value: userID, expiresAt: now.Add(ttl)}
	return nil
}

// Consume returns the token owner and forgets the token.
func (s *ResetTokenStore) Consume(_ context.Context, tokenHash string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.tokens[tokenHash]
	delete(s.tokens, tokenHash)
	if !ok || e.expired(s.now()) {
		return uuid.Nil, fmt.Errorf("reset token: %w", domain.ErrNotFound)
	}
	return e.value, nil
}
