// Package mail delivers outgoing mail.
package mail

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/flashcards-backend/internal/service/notify"
)

// LogSender writes mails to the structured log instead of sending them.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a new LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{log: logger.With("adapter", "mail")}
}

func (s *LogSender) Send(ctx context.Context, m notify.Mail) error {
	s.log.InfoContext(ctx, "mail delivered",
		slog.String("to", m.To),
		slog.String("subject", m.Subject),
		slog.String("body", m.Body),
	)
	return nil
}
