// Package mock implements a deterministic provider.Completer for local
// development and tests.
package mock

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/provider"
)

// ModelName is reported as the model of every mock generation.
const ModelName = "mock-model"

// FailureMarker makes Complete fail when present in the user message.
const FailureMarker = "FAIL"

// FailureMessage is the message of the simulated failure.
const FailureMessage = "Simulated AI service failure: The model could not process the request."

type card struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

var fixedCards = []card{
	{Front: "Mock question 1?", Back: "Mock answer 1."},
	{Front: "Mock question 2?", Back: "Mock answer 2."},
}

// Provider returns two fixed flashcards for every request.
type Provider struct{}

// New creates a mock Provider.
func New() *Provider { return &Provider{} }

// Model returns ModelName.
func (*Provider) Model() string { return ModelName }

// Complete returns the fixed flashcards, or an API error when the user
// message contains FailureMarker.
func (*Provider) Complete(ctx context.Context, req provider.CompletionRequest) (*provider.CompletionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.CompletionError{Kind: domain.CompletionErrNetwork, Message: "request cancelled", Err: err}
	}

	if strings.Contains(req.UserMessage, FailureMarker) {
		return nil, domain.NewCompletionAPIError(http.StatusServiceUnavailable, FailureMessage)
	}

	payload, err := json.Marshal(map[string][]card{"flashcards": fixedCards})
	if err != nil {
		return nil, &domain.CompletionError{Kind: domain.CompletionErrResponseParse, Message: "encode mock response", Err: err}
	}

	if req.ResponseSchema != nil {
		return provider.Normalize("", string(payload), true)
	}
	return provider.Normalize(string(payload), "", false)
}
