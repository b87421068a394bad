package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/heartmarshall/flashcards-backend/internal/auth"
	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// RequestPasswordRecovery starts a password reset for the given email.
// The outcome is never revealed to the caller: unknown emails and internal
// failures both return nil after logging.
func (s *Service) RequestPasswordRecovery(ctx context.Context, input RecoveryInput) error {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.startRecovery(ctx, input.Email); err != nil {
		s.log.ErrorContext(ctx, "password recovery failed", slog.String("error", err.Error()))
	}
	return nil
}

func (s *Service) startRecovery(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.InfoContext(ctx, "password recovery for unknown email")
			return nil
		}
		return fmt.Errorf("get user: %w", err)
	}

	raw, hash, err := auth.GenerateOpaqueToken()
	if err != nil {
		return err
	}

	if err := s.resets.Save(ctx, hash, user.ID, s.cfg.ResetTokenTTL); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	event, err := domain.NewEvent(domain.EventPasswordResetRequested, user.ID, domain.PasswordResetPayload{
		Email:     user.Email,
		ResetURL:  resetLink(s.cfg.ResetURL, raw),
		ExpiresAt: s.now().Add(s.cfg.ResetTokenTTL).UTC(),
	})
	if err != nil {
		return err
	}

	if err := s.events.Publish(ctx, event); err != nil {
		return fmt.Errorf("publish reset event: %w", err)
	}

	s.log.InfoContext(ctx, "password recovery requested", slog.String("user_id", user.ID.String()))
	return nil
}

// ResetPassword consumes a reset token and sets a new password.
// All refresh tokens of the user are revoked.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	userID, err := s.resets.Consume(ctx, auth.HashToken(input.AccessToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.ResetPassword consume token: %w", err)
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("auth.ResetPassword: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.users.UpdatePassword(txCtx, userID, hash); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		return s.tokens.RevokeAllByUser(txCtx, userID)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.ResetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password reset", slog.String("user_id", userID.String()))
	return nil
}

// resetLink appends the raw token to the configured reset page URL.
func resetLink(base, token string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base + "?token=" + url.QueryEscape(token)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}
