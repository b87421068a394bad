package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinSourceTextLength = 1000
	MaxSourceTextLength = 10000
)

// Generation is the audit row of one successful AI extraction call.
// The accepted counts are filled once the review of the generation is saved.
type Generation struct {
	ID                    int64
	UserID                uuid.UUID
	Model                 string
	SourceTextHash        string
	SourceTextLength      int
	GeneratedCount        int
	GenerationDuration    time.Duration
	AcceptedUneditedCount *int
	AcceptedEditedCount   *int
	CreatedAt             time.Time
}

// GenerationErrorLog records a failed generation attempt.
type GenerationErrorLog struct {
	ID               int64
	UserID           uuid.UUID
	Model            string
	SourceTextHash   string
	SourceTextLength int
	ErrorCode        GenerationErrorCode
	ErrorMessage     string
	CreatedAt        time.Time
}

// Proposal is a candidate flashcard awaiting the user's decision.
type Proposal struct {
	ID     string
	Front  string
	Back   string
	Source FlashcardSource
	Status ProposalStatus
	Edited bool
}
