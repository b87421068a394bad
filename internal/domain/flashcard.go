package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxFrontLength = 200
	MaxBackLength  = 500

	// MaxBatchSize limits how many cards one batch insert may carry.
	MaxBatchSize = 100
)

// Flashcard is a persisted front/back card owned by a user.
// GenerationID is nil iff Source is SourceManual.
type Flashcard struct {
	ID           int64
	UserID       uuid.UUID
	Front        string
	Back         string
	Source       FlashcardSource
	GenerationID *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FlashcardInput is one card to be created.
type FlashcardInput struct {
	Front        string
	Back         string
	Source       FlashcardSource
	GenerationID *int64
}

// FlashcardPatch is a partial update. SetGenerationID distinguishes an
// explicit null from an absent field.
type FlashcardPatch struct {
	Front           *string
	Back            *string
	Source          *FlashcardSource
	GenerationID    *int64
	SetGenerationID bool
}

// IsEmpty reports whether the patch changes nothing.
func (p FlashcardPatch) IsEmpty() bool {
	return p.Front == nil && p.Back == nil && p.Source == nil && !p.SetGenerationID
}
