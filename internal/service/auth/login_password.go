package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashcards-backend/internal/auth"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// LoginWithPassword authenticates a user with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
func (s *Service) LoginWithPassword(ctx context.Context, input LoginPasswordInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = domain.NormalizeEmail(input.Email)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find user by email
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.LoginWithPassword get user: %w", err)
	}

	// Step 3: Verify password
	if err := s.passwords.Compare(user.PasswordHash, input.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.LoginWithPassword compare password: %w", err)
	}

	// Step 4: Issue tokens
	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in via password",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
