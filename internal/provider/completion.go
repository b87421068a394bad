// Package provider defines the contract shared by remote completion backends.
package provider

import (
	"context"
	"encoding/json"
)

// ToolDescription is attached to the single function tool sent in structured mode.
const ToolDescription = "Extract information based on the provided JSON schema."

// ResponseSchema asks the backend for a structured payload conforming to Schema.
type ResponseSchema struct {
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
}

// Params are optional sampling parameters. Nil fields are not sent; an
// explicit zero is sent as zero.
type Params struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	TopP             *float64 `json:"top_p,omitempty"`
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty"`
	PresencePenalty  *float64 `json:"presence_penalty,omitempty"`
}

// CompletionRequest is one chat completion call: an optional system message
// followed by the user message.
type CompletionRequest struct {
	UserMessage    string
	SystemMessage  string
	Model          string
	ResponseSchema *ResponseSchema
	Params         *Params
}

// CompletionResult carries the raw text and, in structured mode, the parsed JSON payload.
type CompletionResult struct {
	RawContent        string
	StructuredContent json.RawMessage
}

// Completer is implemented by every completion backend.
// Errors are always *domain.CompletionError.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error)
	// Model returns the model used when the request does not name one.
	Model() string
}
