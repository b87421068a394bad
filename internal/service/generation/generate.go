package generation

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

// Generate asks the completion backend for flashcards extracted from the
// source text and records the attempt.
//
// Backend failures are logged as AI_SERVICE_ERROR and returned as
// ErrGenerationFailed. A failure to store the generation record is logged as
// DATABASE_INSERT_ERROR and returned as ErrGenerationNotSaved.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	start := s.now()
	sum := md5.Sum([]byte(input.SourceText))
	att := attempt{
		userID: userID,
		model:  s.ai.Model(),
		hash:   hex.EncodeToString(sum[:]),
		length: domain.RuneLen(input.SourceText),
	}

	proposals, err := s.propose(ctx, input.SourceText)
	if err != nil {
		s.logFailure(ctx, att, domain.GenErrAIService, err)
		return nil, fmt.Errorf("generation.Generate: %w: %w", ErrGenerationFailed, err)
	}

	gen, err := s.repo.Create(ctx, domain.Generation{
		UserID:             userID,
		Model:              att.model,
		SourceTextHash:     att.hash,
		SourceTextLength:   att.length,
		GeneratedCount:     len(proposals),
		GenerationDuration: s.now().Sub(start),
	})
	if err != nil {
		s.log.ErrorContext(ctx, "error saving generation to database", slog.String("error", err.Error()))
		s.logFailure(ctx, att, domain.GenErrDatabaseInsert, err)
		return nil, fmt.Errorf("generation.Generate: %w", ErrGenerationNotSaved)
	}

	s.log.InfoContext(ctx, "flashcards generated",
		slog.String("user_id", userID.String()),
		slog.Int64("generation_id", gen.ID),
		slog.Int("count", len(proposals)),
		slog.Duration("duration", gen.GenerationDuration),
	)

	s.publish(ctx, domain.EventGenerationCompleted, userID, domain.GenerationCompletedPayload{
		GenerationID:   gen.ID,
		Model:          gen.Model,
		GeneratedCount: gen.GeneratedCount,
		DurationMs:     gen.GenerationDuration.Milliseconds(),
	})

	return &Result{
		GenerationID:   gen.ID,
		Proposals:      proposals,
		GeneratedCount: len(proposals),
	}, nil
}

// CleanupErrorLogs deletes error log records older than retention.
func (s *Service) CleanupErrorLogs(ctx context.Context, retention time.Duration) (int, error) {
	count, err := s.repo.DeleteErrorLogsBefore(ctx, s.now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("generation.CleanupErrorLogs: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up generation error logs", slog.Int("count", count))
	}
	return count, nil
}

type attempt struct {
	userID uuid.UUID
	model  string
	hash   string
	length int
}

func (s *Service) propose(ctx context.Context, sourceText string) ([]domain.Proposal, error) {
	res, err := s.ai.Complete(ctx, buildRequest(sourceText))
	if err != nil {
		return nil, err
	}
	return parseProposals(res.StructuredContent, s.newID)
}

// logFailure writes an error log record on a context detached from the
// request so that a cancelled request still leaves a trace. A failure to
// write the record is only logged.
func (s *Service) logFailure(ctx context.Context, a attempt, code domain.GenerationErrorCode, cause error) {
	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), errorLogTimeout)
	defer cancel()

	err := s.repo.CreateErrorLog(logCtx, domain.GenerationErrorLog{
		UserID:           a.userID,
		Model:            a.model,
		SourceTextHash:   a.hash,
		SourceTextLength: a.length,
		ErrorCode:        code,
		ErrorMessage:     errorMessage(cause),
	})
	if err != nil {
		s.log.ErrorContext(ctx, "critical: failed to log generation error to the database",
			slog.String("error_code", string(code)),
			slog.String("error", err.Error()),
		)
	}

	s.publish(logCtx, domain.EventGenerationFailed, a.userID, domain.GenerationFailedPayload{
		Model:     a.model,
		ErrorCode: string(code),
	})
}

func (s *Service) publish(ctx context.Context, t domain.EventType, userID uuid.UUID, payload any) {
	event, err := domain.NewEvent(t, userID, payload)
	if err == nil {
		err = s.events.Publish(ctx, event)
	}
	if err != nil {
		s.log.WarnContext(ctx, "event publish failed",
			slog.String("event_type", t.String()),
			slog.String("error", err.Error()),
		)
	}
}

// errorMessage prefers the backend's own message over the wrapped chain.
func errorMessage(err error) string {
	var ce *domain.CompletionError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return err.Error()
}
