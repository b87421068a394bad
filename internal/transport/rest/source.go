package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashcards-backend/internal/service/source"
)

type sourceService interface {
	Extract(ctx context.Context, rawURL string) (*source.Result, error)
}

// SourceHandler serves POST /sources/extract.
type SourceHandler struct {
	svc sourceService
	log *slog.Logger
}

// NewSourceHandler creates a SourceHandler.
func NewSourceHandler(svc sourceService, logger *slog.Logger) *SourceHandler {
	return &SourceHandler{svc: svc, log: logger.With("handler", "source")}
}

type extractRequest struct {
	URL string `json:"url"`
}

type extractResponse struct {
	Title      string `json:"title"`
	SourceText string `json:"source_text"`
	Truncated  bool   `json:"truncated"`
}

// Extract handles POST /sources/extract.
func (h *SourceHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Extract(r.Context(), req.URL)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, extractResponse{
		Title:      res.Title,
		SourceText: res.SourceText,
		Truncated:  res.Truncated,
	})
}
