package flashcard

import (
	"fmt"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// MaxBatchSize limits how many cards one CreateMany call may insert.
const MaxBatchSize = domain.MaxBatchSize

// CreateInput holds the cards to create.
type CreateInput struct {
	Flashcards []domain.FlashcardInput
}

// Validate checks every card and the source/generation invariant.
func (i CreateInput) Validate() error {
	var errs domain.FieldErrors

	switch {
	case len(i.Flashcards) == 0:
		errs.Add("flashcards", "at least one flashcard is required")
	case len(i.Flashcards) > MaxBatchSize:
		errs.Add("flashcards", fmt.Sprintf("at most %d flashcards per request", MaxBatchSize))
	}

	for idx, fc := range i.Flashcards {
		prefix := fmt.Sprintf("flashcards[%d].", idx)
		errs.CheckText(prefix+"front", fc.Front, domain.MaxFrontLength)
		errs.CheckText(prefix+"back", fc.Back, domain.MaxBackLength)

		if !fc.Source.IsValid() {
			errs.Add(prefix+"source", "must be one of ai-full, ai-edited, manual")
			continue
		}
		checkGenerationLink(&errs, prefix+"generation_id", fc.Source, fc.GenerationID)
	}

	return errs.Err()
}

// UpdateInput holds a partial update of one card.
type UpdateInput struct {
	ID    int64
	Patch domain.FlashcardPatch
}

// Validate checks the patch. Only ai-edited and manual are accepted as a new source.
func (i UpdateInput) Validate() error {
	var errs domain.FieldErrors

	if i.ID <= 0 {
		errs.Add("id", "must be a positive integer")
	}

	p := i.Patch
	if p.IsEmpty() {
		errs.Add("body", "at least one field is required")
	}
	if p.Front != nil {
		errs.CheckText("front", *p.Front, domain.MaxFrontLength)
	}
	if p.Back != nil {
		errs.CheckText("back", *p.Back, domain.MaxBackLength)
	}

	if p.Source != nil {
		switch *p.Source {
		case domain.SourceManual:
			if p.SetGenerationID && p.GenerationID != nil {
				errs.Add("generation_id", "must be null for manual flashcards")
			}
		case domain.SourceAIEdited:
			if p.SetGenerationID && p.GenerationID == nil {
				errs.Add("generation_id", "is required for AI flashcards")
			}
		default:
			errs.Add("source", "must be one of ai-edited, manual")
		}
	}

	if p.SetGenerationID && p.GenerationID != nil && *p.GenerationID <= 0 {
		errs.Add("generation_id", "must be a positive integer")
	}

	return errs.Err()
}

// normalized returns the patch with the generation link cleared when the
// card becomes manual without an explicit generation_id.
func (i UpdateInput) normalized() domain.FlashcardPatch {
	p := i.Patch
	if p.Source != nil && *p.Source == domain.SourceManual && !p.SetGenerationID {
		p.SetGenerationID = true
		p.GenerationID = nil
	}
	return p
}

func checkGenerationLink(errs *domain.FieldErrors, field string, source domain.FlashcardSource, id *int64) {
	switch {
	case source == domain.SourceManual && id != nil:
		errs.Add(field, "must be null for manual flashcards")
	case source.IsAI() && id == nil:
		errs.Add(field, "is required for AI flashcards")
	case id != nil && *id <= 0:
		errs.Add(field, "must be a positive integer")
	}
}
