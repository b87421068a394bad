package generation

import (
	"fmt"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// GenerateInput holds the text to extract flashcards from.
type GenerateInput struct {
	SourceText string
}

// Validate checks the character length of the source text.
func (i GenerateInput) Validate() error {
	n := domain.RuneLen(i.SourceText)
	if n < domain.MinSourceTextLength || n > domain.MaxSourceTextLength {
		return domain.NewValidationError("source_text",
			fmt.Sprintf("must be between %d and %d characters, got %d",
				domain.MinSourceTextLength, domain.MaxSourceTextLength, n))
	}
	return nil
}

// Result is the outcome of a successful generation.
type Result struct {
	GenerationID   int64
	Proposals      []domain.Proposal
	GeneratedCount int
}
