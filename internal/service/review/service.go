// Package review keeps generated proposals on the server while the user
// accepts, rejects and edits them, and persists the accepted subset.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/flashcard"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// sessionStore keeps review sessions and their mutation locks.
type sessionStore interface {
	Save(ctx context.Context, s domain.ReviewSession, ttl time.Duration) error
	Get(ctx context.Context, id string) (*domain.ReviewSession, error)
	Delete(ctx context.Context, id string) error
	// Lock returns domain.ErrConflict when the lock is already held.
	Lock(ctx context.Context, id string, ttl time.Duration) (func(context.Context) error, error)
}

// flashcardCreator is the persistence gateway for accepted proposals.
type flashcardCreator interface {
	CreateMany(ctx context.Context, input flashcard.CreateInput) ([]domain.Flashcard, error)
}

// generationRepo records how a generation was received.
type generationRepo interface {
	SetAcceptedCounts(ctx context.Context, userID uuid.UUID, id int64, unedited, edited int) error
}

// txManager makes the card insert and the counts update one unit.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages server-side review sessions.
type Service struct {
	log         *slog.Logger
	store       sessionStore
	cards       flashcardCreator
	generations generationRepo
	tx          txManager
	sessionTTL  time.Duration
	lockTTL     time.Duration
	newID       func() (string, error)
	now         func() time.Time
}

// NewService creates a new review service.
func NewService(logger *slog.Logger, store sessionStore, cards flashcardCreator, generations generationRepo, tx txManager, cfg config.ReviewConfig) *Service {
	return &Service{
		log:         logger.With("service", "review"),
		store:       store,
		cards:       cards,
		generations: generations,
		tx:          tx,
		sessionTTL:  cfg.SessionTTL,
		lockTTL:     cfg.LockTTL,
		newID:       func() (string, error) { return gonanoid.New() },
		now:         time.Now,
	}
}

// Start opens a review over the proposals of a fresh generation.
func (s *Service) Start(ctx context.Context, generationID int64, proposals []domain.Proposal) (*domain.ReviewSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("review.Start: new id: %w", err)
	}

	sess := NewSession(id, userID, generationID, proposals, s.now().UTC())
	st := sess.State()
	if err := s.store.Save(ctx, st, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("review.Start: %w", err)
	}

	s.log.InfoContext(ctx, "review started",
		slog.String("user_id", userID.String()),
		slog.String("review_id", id),
		slog.Int64("generation_id", generationID),
		slog.Int("proposals", len(proposals)),
	)

	return &st, nil
}

// Get returns a review of the caller.
func (s *Service) Get(ctx context.Context, id string) (*domain.ReviewSession, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("review.Get: %w", err)
	}
	st := sess.State()
	return &st, nil
}

func (s *Service) Accept(ctx context.Context, id, proposalID string) (*domain.ReviewSession, error) {
	return s.mutate(ctx, "review.Accept", id, func(sess *Session) error { return sess.Accept(proposalID) })
}

func (s *Service) Reject(ctx context.Context, id, proposalID string) (*domain.ReviewSession, error) {
	return s.mutate(ctx, "review.Reject", id, func(sess *Session) error { return sess.Reject(proposalID) })
}

func (s *Service) AcceptAll(ctx context.Context, id string) (*domain.ReviewSession, error) {
	return s.mutate(ctx, "review.AcceptAll", id, (*Session).AcceptAll)
}

func (s *Service) RejectAll(ctx context.Context, id string) (*domain.ReviewSession, error) {
	return s.mutate(ctx, "review.RejectAll", id, (*Session).RejectAll)
}

func (s *Service) StartEdit(ctx context.Context, id, proposalID string) (*domain.ReviewSession, error) {
	return s.mutate(ctx, "review.StartEdit", id, func(sess *Session) error { return sess.StartEdit(proposalID) })
}

func (s *Service) CancelEdit(ctx context.Context, id string) (*domain.ReviewSession, error) {
	return s.mutate(ctx, "review.CancelEdit", id, (*Session).CancelEdit)
}

// SaveEdit overwrites a proposal and accepts it.
func (s *Service) SaveEdit(ctx context.Context, id string, input SaveEditInput) (*domain.ReviewSession, error) {
	return s.mutate(ctx, "review.SaveEdit", id, func(sess *Session) error {
		return sess.SaveEdit(input.ProposalID, input.Front, input.Back)
	})
}

// Save persists the accepted proposals and records the accepted counts on
// the generation in one transaction, then removes the session. When
// persisting fails the session is stored back in reviewing so the caller
// can retry. A session left in saving by a save that never finished is
// reclaimed once the lock TTL has passed; the counts update refuses a second
// write, so a save that had committed cannot insert the cards twice.
func (s *Service) Save(ctx context.Context, id string) ([]domain.Flashcard, error) {
	unlock, err := s.store.Lock(ctx, id, s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("review.Save: %w", err)
	}
	defer s.release(ctx, id, unlock)

	sess, err := s.loadLocked(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("review.Save: %w", err)
	}

	cards, err := sess.BeginSave(s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("review.Save: %w", err)
	}
	if err := s.store.Save(ctx, sess.State(), s.sessionTTL); err != nil {
		return nil, fmt.Errorf("review.Save: %w", err)
	}

	unedited, edited := sess.Counts()
	var created []domain.Flashcard
	saveErr := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.cards.CreateMany(ctx, flashcard.CreateInput{Flashcards: cards})
		if err != nil {
			return err
		}
		return s.generations.SetAcceptedCounts(ctx, sess.UserID(), sess.GenerationID(), unedited, edited)
	})
	sess.FinishSave(saveErr)

	if saveErr != nil {
		// The session goes back to reviewing with a detached context so a
		// cancelled request does not leave it stuck in saving.
		restoreCtx := context.WithoutCancel(ctx)
		if err := s.store.Save(restoreCtx, sess.State(), s.sessionTTL); err != nil {
			s.log.ErrorContext(ctx, "failed to restore review after save failure",
				slog.String("review_id", id),
				slog.String("error", err.Error()),
			)
		}
		return nil, fmt.Errorf("review.Save: %w", saveErr)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "failed to delete saved review",
			slog.String("review_id", id),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "review saved",
		slog.String("user_id", sess.UserID().String()),
		slog.String("review_id", id),
		slog.Int("accepted_unedited", unedited),
		slog.Int("accepted_edited", edited),
	)

	return created, nil
}

// mutate runs one transition under the session lock and stores the result.
func (s *Service) mutate(ctx context.Context, op, id string, fn func(*Session) error) (*domain.ReviewSession, error) {
	unlock, err := s.store.Lock(ctx, id, s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer s.release(ctx, id, unlock)

	sess, err := s.loadLocked(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := fn(sess); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	st := sess.State()
	if err := s.store.Save(ctx, st, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &st, nil
}

// load fetches a session of the caller. Sessions of other users are
// reported as not found.
func (s *Service) load(ctx context.Context, id string) (*Session, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	st, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if st.UserID != userID {
		return nil, fmt.Errorf("review %s: %w", id, domain.ErrNotFound)
	}
	return FromState(*st), nil
}

// loadLocked is load for callers holding the session lock. Holding the lock
// means no save is in flight, so a saving state older than the lock TTL was
// left by a save that died.
func (s *Service) loadLocked(ctx context.Context, id string) (*Session, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Reclaim(s.now().UTC(), s.lockTTL) {
		s.log.WarnContext(ctx, "reclaimed review stuck in saving",
			slog.String("review_id", id),
		)
	}
	return sess, nil
}

func (s *Service) release(ctx context.Context, id string, unlock func(context.Context) error) {
	if err := unlock(context.WithoutCancel(ctx)); err != nil {
		s.log.WarnContext(ctx, "failed to release review lock",
			slog.String("review_id", id),
			slog.String("error", err.Error()),
		)
	}
}
