package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Register creates a new user with email + password authentication.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = domain.NormalizeEmail(input.Email)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Step 3: Create user and issue the first token pair in one transaction.
	// Email uniqueness is enforced by a DB constraint.
	var result *AuthResult

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now().UTC()
		user, err := s.users.Create(txCtx, domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		result, err = s.issueTokens(txCtx, user)
		return err
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered via password",
		slog.String("user_id", result.User.ID.String()))

	return result, nil
}
