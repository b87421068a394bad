// Package generation turns source text into flashcard proposals through the
// completion backend and keeps the audit trail of every attempt.
package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/provider"
)

var (
	// ErrGenerationFailed is returned when the completion backend failed or
	// returned an unusable payload.
	ErrGenerationFailed = fmt.Errorf("AI service failed to generate flashcards: %w", domain.ErrRemoteService)

	// ErrGenerationNotSaved is returned when the generation record could not be stored.
	ErrGenerationNotSaved = errors.New("failed to save generation data")
)

// errorLogTimeout bounds the detached write of an error log record.
const errorLogTimeout = 5 * time.Second

// completer is the remote completion client.
type completer interface {
	Complete(ctx context.Context, req provider.CompletionRequest) (*provider.CompletionResult, error)
	Model() string
}

// generationRepo persists generation records and error logs.
type generationRepo interface {
	Create(ctx context.Context, g domain.Generation) (*domain.Generation, error)
	CreateErrorLog(ctx context.Context, l domain.GenerationErrorLog) error
	DeleteErrorLogsBefore(ctx context.Context, threshold time.Time) (int, error)
}

// eventPublisher publishes domain events.
type eventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// Service orchestrates flashcard generation.
type Service struct {
	log    *slog.Logger
	ai     completer
	repo   generationRepo
	events eventPublisher
	newID  func() (string, error)
	now    func() time.Time
}

// NewService creates a new generation service.
func NewService(logger *slog.Logger, ai completer, repo generationRepo, events eventPublisher) *Service {
	return &Service{
		log:    logger.With("service", "generation"),
		ai:     ai,
		repo:   repo,
		events: events,
		newID:  newProposalID,
		now:    time.Now,
	}
}
