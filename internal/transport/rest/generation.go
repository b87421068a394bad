package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/generation"
)

type generationService interface {
	Generate(ctx context.Context, input generation.GenerateInput) (*generation.Result, error)
}

type reviewStarter interface {
	Start(ctx context.Context, generationID int64, proposals []domain.Proposal) (*domain.ReviewSession, error)
}

// GenerationHandler serves POST /generations.
type GenerationHandler struct {
	svc     generationService
	reviews reviewStarter
	log     *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(svc generationService, reviews reviewStarter, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{svc: svc, reviews: reviews, log: logger.With("handler", "generation")}
}

type generateRequest struct {
	SourceText string `json:"source_text"`
}

type proposalResponse struct {
	ID     string `json:"id"`
	Front  string `json:"front"`
	Back   string `json:"back"`
	Source string `json:"source"`
	Status string `json:"status"`
	Edited bool   `json:"edited"`
}

type generateResponse struct {
	GenerationID       int64              `json:"generation_id"`
	ReviewID           string             `json:"review_id,omitempty"`
	FlashcardProposals []proposalResponse `json:"flashcard_proposals"`
	GeneratedCount     int                `json:"generated_count"`
}

// Generate handles POST /generations. A review session is opened for the
// proposals; if that fails the proposals are still returned without review_id.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Generate(r.Context(), generation.GenerateInput{SourceText: req.SourceText})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := generateResponse{
		GenerationID:       result.GenerationID,
		FlashcardProposals: toProposalResponses(result.Proposals),
		GeneratedCount:     result.GeneratedCount,
	}

	session, err := h.reviews.Start(r.Context(), result.GenerationID, result.Proposals)
	if err != nil {
		logError(h.log, r, "review session not started", err)
	} else {
		resp.ReviewID = session.ID
		resp.FlashcardProposals = toProposalResponses(session.Proposals)
	}

	writeJSON(w, http.StatusOK, resp)
}

func toProposalResponses(proposals []domain.Proposal) []proposalResponse {
	out := make([]proposalResponse, len(proposals))
	for i, p := range proposals {
		out[i] = proposalResponse{
			ID:     p.ID,
			Front:  p.Front,
			Back:   p.Back,
			Source: string(p.Source),
			Status: string(p.Status),
			Edited: p.Edited,
		}
	}
	return out
}
