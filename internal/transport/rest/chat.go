package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/provider"
)

type chatService interface {
	Chat(ctx context.Context, req provider.CompletionRequest) (*provider.CompletionResult, error)
}

// ChatHandler serves POST /chat.
type ChatHandler struct {
	svc chatService
	log *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger.With("handler", "chat")}
}

type chatRequest struct {
	UserMessage    string                   `json:"userMessage"`
	SystemMessage  string                   `json:"systemMessage"`
	Model          string                   `json:"model"`
	ResponseSchema *provider.ResponseSchema `json:"responseSchema"`
	Params         *provider.Params         `json:"params"`
}

type chatResponse struct {
	RawContent        string          `json:"rawContent"`
	StructuredContent json.RawMessage `json:"structuredContent,omitempty"`
}

// Chat handles POST /chat. Client errors reported by the backend keep their
// status code but not their message. Other backend failures map to 502/503.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Chat(r.Context(), provider.CompletionRequest{
		UserMessage:    req.UserMessage,
		SystemMessage:  req.SystemMessage,
		Model:          req.Model,
		ResponseSchema: req.ResponseSchema,
		Params:         req.Params,
	})
	if err != nil {
		var ce *domain.CompletionError
		if errors.As(err, &ce) && ce.Kind == domain.CompletionErrAPI && ce.Status >= 400 && ce.Status < 500 {
			logError(h.log, r, "completion rejected by backend", err)
			writeError(w, ce.Status, http.StatusText(ce.Status))
			return
		}
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		RawContent:        res.RawContent,
		StructuredContent: res.StructuredContent,
	})
}
