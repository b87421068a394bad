package flashcard

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// CreateMany validates and inserts all cards in one transaction.
// Every referenced generation must belong to the caller.
func (s *Service) CreateMany(ctx context.Context, input CreateInput) ([]domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created []domain.Flashcard
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkOwnership(txCtx, userID, input.Flashcards); err != nil {
			return err
		}

		var err error
		created, err = s.cards.CreateMany(txCtx, userID, input.Flashcards)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("flashcard.CreateMany: %w", err)
	}

	s.log.InfoContext(ctx, "flashcards created",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(created)),
	)

	return created, nil
}

// List returns one page of the caller's cards and the total count.
func (s *Service) List(ctx context.Context, filter domain.FlashcardFilter) (*domain.FlashcardPage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	filter = filter.WithDefaults()
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	items, total, err := s.cards.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("flashcard.List: %w", err)
	}

	return &domain.FlashcardPage{
		Items: items,
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
	}, nil
}

// Get returns one card owned by the caller.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive integer")
	}

	fc, err := s.cards.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("flashcard.Get: %w", err)
	}
	return fc, nil
}

// Update applies a partial update to one of the caller's cards.
// Returns domain.ErrNotFound for unknown ids and for cards of other users.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Flashcard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	patch := input.normalized()

	if patch.SetGenerationID && patch.GenerationID != nil {
		owned, err := s.generations.FilterOwned(ctx, userID, []int64{*patch.GenerationID})
		if err != nil {
			return nil, fmt.Errorf("flashcard.Update: %w", err)
		}
		if len(owned) == 0 {
			return nil, domain.NewValidationError("generation_id", "generation not found")
		}
	}

	fc, err := s.cards.Update(ctx, userID, input.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("flashcard.Update: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard updated",
		slog.String("user_id", userID.String()),
		slog.Int64("flashcard_id", fc.ID),
	)

	return fc, nil
}

// Delete removes one of the caller's cards.
func (s *Service) Delete(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive integer")
	}

	if err := s.cards.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("flashcard.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "flashcard deleted",
		slog.String("user_id", userID.String()),
		slog.Int64("flashcard_id", id),
	)

	return nil
}

// checkOwnership reports every card whose generation belongs to someone else
// (or does not exist) as a field error.
func (s *Service) checkOwnership(ctx context.Context, userID uuid.UUID, items []domain.FlashcardInput) error {
	var ids []int64
	for _, it := range items {
		if it.GenerationID != nil && !slices.Contains(ids, *it.GenerationID) {
			ids = append(ids, *it.GenerationID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	owned, err := s.generations.FilterOwned(ctx, userID, ids)
	if err != nil {
		return fmt.Errorf("check generation ownership: %w", err)
	}

	var errs domain.FieldErrors
	for idx, it := range items {
		if it.GenerationID != nil && !slices.Contains(owned, *it.GenerationID) {
			errs.Add(fmt.Sprintf("flashcards[%d].generation_id", idx), "generation not found")
		}
	}
	return errs.Err()
}
