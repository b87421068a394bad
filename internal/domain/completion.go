package domain

import (
	"fmt"
	"net/http"
)

// CompletionErrorKind classifies failures of the remote completion backend.
type CompletionErrorKind string

const (
	CompletionErrConfiguration CompletionErrorKind = "configuration"
	CompletionErrAPI           CompletionErrorKind = "api"
	CompletionErrNetwork       CompletionErrorKind = "network"
	CompletionErrResponseParse CompletionErrorKind = "response_parse"
)

func (k CompletionErrorKind) String() string { return string(k) }

// CompletionError is returned by every completion provider.
// Status is set only for CompletionErrAPI.
type CompletionError struct {
	Kind    CompletionErrorKind
	Status  int
	Message string
	Err     error
}

func (e *CompletionError) Error() string {
	switch e.Kind {
	case CompletionErrAPI:
		return fmt.Sprintf("completion api error (status %d): %s", e.Status, e.Message)
	default:
		if e.Err != nil {
			return fmt.Sprintf("completion %s error: %s: %v", e.Kind, e.Message, e.Err)
		}
		return fmt.Sprintf("completion %s error: %s", e.Kind, e.Message)
	}
}

func (e *CompletionError) Unwrap() error { return e.Err }

// Is reports every CompletionError as a remote service failure.
func (e *CompletionError) Is(target error) bool { return target == ErrRemoteService }

// NewCompletionAPIError builds an API error, falling back to the status text
// when the remote body carried no message.
func NewCompletionAPIError(status int, message string) *CompletionError {
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = fmt.Sprintf("API error: status %d", status)
	}
	return &CompletionError{Kind: CompletionErrAPI, Status: status, Message: message}
}
