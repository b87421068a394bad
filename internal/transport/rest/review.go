package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/review"
)

type reviewService interface {
	Get(ctx context.Context, id string) (*domain.ReviewSession, error)
	Accept(ctx context.Context, id, proposalID string) (*domain.ReviewSession, error)
	Reject(ctx context.Context, id, proposalID string) (*domain.ReviewSession, error)
	AcceptAll(ctx context.Context, id string) (*domain.ReviewSession, error)
	RejectAll(ctx context.Context, id string) (*domain.ReviewSession, error)
	StartEdit(ctx context.Context, id, proposalID string) (*domain.ReviewSession, error)
	CancelEdit(ctx context.Context, id string) (*domain.ReviewSession, error)
	SaveEdit(ctx context.Context, id string, input review.SaveEditInput) (*domain.ReviewSession, error)
	Save(ctx context.Context, id string) ([]domain.Flashcard, error)
}

// ReviewHandler serves the /reviews endpoints.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type saveEditRequest struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type reviewResponse struct {
	ID            string             `json:"id"`
	GenerationID  int64              `json:"generation_id"`
	Status        string             `json:"status"`
	EditingID     string             `json:"editing_id,omitempty"`
	AcceptedCount int                `json:"accepted_count"`
	Proposals     []proposalResponse `json:"proposals"`
	CreatedAt     time.Time          `json:"created_at"`
}

// Get handles GET /reviews/{id}.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Get(r.Context(), r.PathValue("id"))
	h.respond(w, r, session, err)
}

// AcceptAll handles POST /reviews/{id}/accept-all.
func (h *ReviewHandler) AcceptAll(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.AcceptAll(r.Context(), r.PathValue("id"))
	h.respond(w, r, session, err)
}

// RejectAll handles POST /reviews/{id}/reject-all.
func (h *ReviewHandler) RejectAll(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.RejectAll(r.Context(), r.PathValue("id"))
	h.respond(w, r, session, err)
}

// Accept handles POST /reviews/{id}/proposals/{pid}/accept.
func (h *ReviewHandler) Accept(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Accept(r.Context(), r.PathValue("id"), r.PathValue("pid"))
	h.respond(w, r, session, err)
}

// Reject handles POST /reviews/{id}/proposals/{pid}/reject.
func (h *ReviewHandler) Reject(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Reject(r.Context(), r.PathValue("id"), r.PathValue("pid"))
	h.respond(w, r, session, err)
}

// StartEdit handles POST /reviews/{id}/proposals/{pid}/edit.
func (h *ReviewHandler) StartEdit(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.StartEdit(r.Context(), r.PathValue("id"), r.PathValue("pid"))
	h.respond(w, r, session, err)
}

// CancelEdit handles DELETE /reviews/{id}/edit.
func (h *ReviewHandler) CancelEdit(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.CancelEdit(r.Context(), r.PathValue("id"))
	h.respond(w, r, session, err)
}

// SaveEdit handles PUT /reviews/{id}/proposals/{pid}.
func (h *ReviewHandler) SaveEdit(w http.ResponseWriter, r *http.Request) {
	var req saveEditRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.svc.SaveEdit(r.Context(), r.PathValue("id"), review.SaveEditInput{
		ProposalID: r.PathValue("pid"),
		Front:      req.Front,
		Back:       req.Back,
	})
	h.respond(w, r, session, err)
}

// Save handles POST /reviews/{id}/save.
func (h *ReviewHandler) Save(w http.ResponseWriter, r *http.Request) {
	created, err := h.svc.Save(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFlashcardResponses(created))
}

func (h *ReviewHandler) respond(w http.ResponseWriter, r *http.Request, session *domain.ReviewSession, err error) {
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewResponse(session))
}

func toReviewResponse(s *domain.ReviewSession) reviewResponse {
	accepted := 0
	for _, p := range s.Proposals {
		if p.Status == domain.ProposalAccepted {
			accepted++
		}
	}
	return reviewResponse{
		ID:            s.ID,
		GenerationID:  s.GenerationID,
		Status:        string(s.Status),
		EditingID:     s.EditingID,
		AcceptedCount: accepted,
		Proposals:     toProposalResponses(s.Proposals),
		CreatedAt:     s.CreatedAt,
	}
}
