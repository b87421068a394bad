// Package flashcard is the persistence gateway for flashcards: every call is
// scoped to the authenticated user.
package flashcard

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// flashcardRepo defines the flashcard repository interface needed by the service.
type flashcardRepo interface {
	CreateMany(ctx context.Context, userID uuid.UUID, items []domain.FlashcardInput) ([]domain.Flashcard, error)
	Update(ctx context.Context, userID uuid.UUID, id int64, patch domain.FlashcardPatch) (*domain.Flashcard, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
	GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.Flashcard, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.FlashcardFilter) ([]domain.Flashcard, int, error)
}

// generationRepo checks generation ownership.
type generationRepo interface {
	FilterOwned(ctx context.Context, userID uuid.UUID, ids []int64) ([]int64, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements flashcard operations.
type Service struct {
	log         *slog.Logger
	cards       flashcardRepo
	generations generationRepo
	tx          txManager
}

// NewService creates a new flashcard service.
func NewService(logger *slog.Logger, cards flashcardRepo, generations generationRepo, tx txManager) *Service {
	return &Service{
		log:         logger.With("service", "flashcard"),
		cards:       cards,
		generations: generations,
		tx:          tx,
	}
}
