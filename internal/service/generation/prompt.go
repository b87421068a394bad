package generation

import (
	"encoding/json"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/provider"
)

const systemPrompt = `You are an expert educator who writes concise study flashcards.
Read the text supplied by the user and extract the most important facts, definitions and concepts.
For each one write a flashcard with a short question or term on the front (at most 200 characters)
and a precise answer on the back (at most 500 characters).
Write the flashcards in the language of the source text. Do not invent facts that are not in the text.
Return the result by calling the provided function.`

const schemaName = "flashcards"

// flashcardsSchema is the JSON schema of the structured payload.
var flashcardsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"flashcards": map[string]any{
			"type":     "array",
			"maxItems": domain.MaxBatchSize,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"front": map[string]any{"type": "string", "maxLength": domain.MaxFrontLength},
					"back":  map[string]any{"type": "string", "maxLength": domain.MaxBackLength},
				},
				"required": []string{"front", "back"},
			},
		},
	},
	"required": []string{"flashcards"},
}

func buildRequest(sourceText string) provider.CompletionRequest {
	temperature := 0.3
	return provider.CompletionRequest{
		SystemMessage:  systemPrompt,
		UserMessage:    sourceText,
		ResponseSchema: &provider.ResponseSchema{Name: schemaName, Schema: flashcardsSchema},
		Params:         &provider.Params{Temperature: &temperature},
	}
}

type payload struct {
	Flashcards *[]struct {
		Front string `json:"front"`
		Back  string `json:"back"`
	} `json:"flashcards"`
}

// parseProposals validates the structured payload and converts it into pending
// ai-full proposals. Every proposal passes the same text checks as a manual
// card, and cards past MaxBatchSize are dropped so that a full accept still
// fits one save.
func parseProposals(raw json.RawMessage, newID func() (string, error)) ([]domain.Proposal, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, malformed("response is not a flashcards object")
	}
	if p.Flashcards == nil {
		return nil, malformed("response is missing the flashcards array")
	}
	if len(*p.Flashcards) == 0 {
		return nil, malformed("response contains no flashcards")
	}

	cards := *p.Flashcards
	if len(cards) > domain.MaxBatchSize {
		cards = cards[:domain.MaxBatchSize]
	}

	proposals := make([]domain.Proposal, 0, len(cards))
	for _, fc := range cards {
		front := domain.Truncate(fc.Front, domain.MaxFrontLength)
		back := domain.Truncate(fc.Back, domain.MaxBackLength)

		var errs domain.FieldErrors
		if !errs.CheckText("front", front, domain.MaxFrontLength) || !errs.CheckText("back", back, domain.MaxBackLength) {
			return nil, malformed("flashcard with empty front or back")
		}

		id, err := newID()
		if err != nil {
			return nil, err
		}

		proposals = append(proposals, domain.Proposal{
			ID:     id,
			Front:  front,
			Back:   back,
			Source: domain.SourceAIFull,
			Status: domain.ProposalPending,
		})
	}
	return proposals, nil
}

func malformed(msg string) error {
	return &domain.CompletionError{
		Kind:    domain.CompletionErrResponseParse,
		Message: "invalid data structure from AI: " + msg,
	}
}

func newProposalID() (string, error) {
	return gonanoid.New()
}
