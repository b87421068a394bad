package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Event is a domain event published to the message broker.
type Event struct {
	ID         string          `json:"id"`
	Type       EventType       `json:"type"`
	UserID     uuid.UUID       `json:"user_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// GenerationCompletedPayload is the payload of EventGenerationCompleted.
type GenerationCompletedPayload struct {
	GenerationID   int64  `json:"generation_id"`
	Model          string `json:"model"`
	GeneratedCount int    `json:"generated_count"`
	DurationMs     int64  `json:"duration_ms"`
}

// GenerationFailedPayload is the payload of EventGenerationFailed.
type GenerationFailedPayload struct {
	Model     string `json:"model"`
	ErrorCode string `json:"error_code"`
}

// PasswordResetPayload is the payload of EventPasswordResetRequested.
type PasswordResetPayload struct {
	Email     string    `json:"email"`
	ResetURL  string    `json:"reset_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewEvent builds an Event with a fresh ULID and the JSON-encoded payload.
func NewEvent(eventType EventType, userID uuid.UUID, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("encode %s payload: %w", eventType, err)
	}

	now := time.Now().UTC()
	return Event{
		ID:         ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Type:       eventType,
		UserID:     userID,
		OccurredAt: now,
		Payload:    raw,
	}, nil
}
