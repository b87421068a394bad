// Package notify reacts to domain events consumed from the broker.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Mail is one outgoing message.
type Mail struct {
	To      string
	Subject string
	Body    string
}

type mailSender interface {
	Send(ctx context.Context, m Mail) error
}

// Service turns events into mails and analytics log lines.
type Service struct {
	log    *slog.Logger
	mailer mailSender
}

// NewService creates a new notify service.
func NewService(logger *slog.Logger, mailer mailSender) *Service {
	return &Service{
		log:    logger.With("service", "notify"),
		mailer: mailer,
	}
}

// Handle processes one event. Unknown event types are logged and skipped.
func (s *Service) Handle(ctx context.Context, event domain.Event) error {
	switch event.Type {
	case domain.EventPasswordResetRequested:
		return s.sendPasswordReset(ctx, event)
	case domain.EventGenerationCompleted:
		var p domain.GenerationCompletedPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return fmt.Errorf("notify.Handle: decode %s: %w", event.Type, err)
		}
		s.log.InfoContext(ctx, "generation completed",
			slog.String("event_id", event.ID),
			slog.String("user_id", event.UserID.String()),
			slog.Int64("generation_id", p.GenerationID),
			slog.String("model", p.Model),
			slog.Int("generated_count", p.GeneratedCount),
			slog.Int64("duration_ms", p.DurationMs),
		)
		return nil
	case domain.EventGenerationFailed:
		var p domain.GenerationFailedPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			return fmt.Errorf("notify.Handle: decode %s: %w", event.Type, err)
		}
		s.log.WarnContext(ctx, "generation failed",
			slog.String("event_id", event.ID),
			slog.String("user_id", event.UserID.String()),
			slog.String("model", p.Model),
			slog.String("error_code", p.ErrorCode),
		)
		return nil
	default:
		s.log.WarnContext(ctx, "unknown event type skipped",
			slog.String("event_id", event.ID),
			slog.String("type", string(event.Type)),
		)
		return nil
	}
}

func (s *Service) sendPasswordReset(ctx context.Context, event domain.Event) error {
	var p domain.PasswordResetPayload
	if err := json.Unmarshal(event.Payload, &p); err != nil {
		return fmt.Errorf("notify.Handle: decode %s: %w", event.Type, err)
	}

	if err := s.mailer.Send(ctx, passwordResetMail(p)); err != nil {
		return fmt.Errorf("notify.Handle: send reset mail: %w", err)
	}

	s.log.InfoContext(ctx, "password reset mail sent",
		slog.String("event_id", event.ID),
		slog.String("user_id", event.UserID.String()),
	)
	return nil
}

func passwordResetMail(p domain.PasswordResetPayload) Mail {
	var b strings.Builder
	b.WriteString("Hello,\n\n")
	b.WriteString("We received a request to reset the password of your Flashcards account.\n")
	b.WriteString("Open the link below to choose a new password:\n\n")
	b.WriteString(p.ResetURL)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "The link expires at %s.\n", p.ExpiresAt.UTC().Format("2006-01-02 15:04 UTC"))
	b.WriteString("If you did not ask for this, you can ignore this message.\n")

	return Mail{
		To:      p.Email,
		Subject: "Reset your Flashcards password",
		Body:    b.String(),
	}
}
