package provider

import (
	"encoding/json"
	"strings"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Normalize builds a CompletionResult from what a backend returned.
//
// Without a schema the raw content is returned as is. With a schema the tool
// call arguments win and become RawContent; otherwise RawContent itself must
// parse as JSON.
func Normalize(rawContent, toolArguments string, structured bool) (*CompletionResult, error) {
	if !structured {
		return &CompletionResult{RawContent: rawContent}, nil
	}

	payload := rawContent
	if strings.TrimSpace(toolArguments) != "" {
		payload = toolArguments
	}

	if !json.Valid([]byte(payload)) {
		return nil, &domain.CompletionError{
			Kind:    domain.CompletionErrResponseParse,
			Message: "could not parse JSON response from model",
		}
	}

	return &CompletionResult{
		RawContent:        payload,
		StructuredContent: json.RawMessage(payload),
	}, nil
}
