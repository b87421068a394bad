// Package chat forwards free-form completion requests to the configured
// backend after validating them.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/provider"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

type completer interface {
	Complete(ctx context.Context, req provider.CompletionRequest) (*provider.CompletionResult, error)
}

// Service is the chat passthrough.
type Service struct {
	log *slog.Logger
	ai  completer
}

// NewService creates a new chat service.
func NewService(logger *slog.Logger, ai completer) *Service {
	return &Service{
		log: logger.With("service", "chat"),
		ai:  ai,
	}
}

// Chat validates the request and returns the backend's answer unchanged.
func (s *Service) Chat(ctx context.Context, req provider.CompletionRequest) (*provider.CompletionResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := Validate(req); err != nil {
		return nil, err
	}

	res, err := s.ai.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("chat.Chat: %w", err)
	}

	s.log.InfoContext(ctx, "chat completed",
		slog.String("user_id", userID.String()),
		slog.Bool("structured", req.ResponseSchema != nil),
	)

	return res, nil
}

// Validate checks the request fields and sampling parameter ranges.
func Validate(req provider.CompletionRequest) error {
	var errs domain.FieldErrors

	if strings.TrimSpace(req.UserMessage) == "" {
		errs.Add("userMessage", "required")
	}

	if rs := req.ResponseSchema; rs != nil {
		if strings.TrimSpace(rs.Name) == "" {
			errs.Add("responseSchema.name", "required")
		}
		if rs.Schema == nil {
			errs.Add("responseSchema.schema", "must be an object")
		}
	}

	if p := req.Params; p != nil {
		checkRange(&errs, "params.temperature", p.Temperature, 0, 2)
		checkRange(&errs, "params.top_p", p.TopP, 0, 1)
		checkRange(&errs, "params.frequency_penalty", p.FrequencyPenalty, -2, 2)
		checkRange(&errs, "params.presence_penalty", p.PresencePenalty, -2, 2)
	}

	return errs.Err()
}

func checkRange(errs *domain.FieldErrors, field string, v *float64, lo, hi float64) {
	if v != nil && (*v < lo || *v > hi) {
		errs.Add(field, fmt.Sprintf("must be between %g and %g", lo, hi))
	}
}
