package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/flashcard"
)

type flashcardService interface {
	CreateMany(ctx context.Context, input flashcard.CreateInput) ([]domain.Flashcard, error)
	List(ctx context.Context, filter domain.FlashcardFilter) (*domain.FlashcardPage, error)
	Get(ctx context.Context, id int64) (*domain.Flashcard, error)
	Update(ctx context.Context, input flashcard.UpdateInput) (*domain.Flashcard, error)
	Delete(ctx context.Context, id int64) error
}

// FlashcardHandler serves the /flashcards endpoints.
type FlashcardHandler struct {
	svc flashcardService
	log *slog.Logger
}

// NewFlashcardHandler creates a FlashcardHandler.
func NewFlashcardHandler(svc flashcardService, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{svc: svc, log: logger.With("handler", "flashcard")}
}

type flashcardInputRequest struct {
	Front        string `json:"front"`
	Back         string `json:"back"`
	Source       string `json:"source"`
	GenerationID *int64 `json:"generation_id"`
}

type createFlashcardsRequest struct {
	Flashcards []flashcardInputRequest `json:"flashcards"`
}

// updateFlashcardRequest keeps generation_id raw so an explicit null can be
// told apart from an absent field.
type updateFlashcardRequest struct {
	Front        *string         `json:"front"`
	Back         *string         `json:"back"`
	Source       *string         `json:"source"`
	GenerationID json.RawMessage `json:"generation_id"`
}

type flashcardResponse struct {
	ID           int64     `json:"id"`
	Front        string    `json:"front"`
	Back         string    `json:"back"`
	Source       string    `json:"source"`
	GenerationID *int64    `json:"generation_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type paginationResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type flashcardListResponse struct {
	Data       []flashcardResponse `json:"data"`
	Pagination paginationResponse  `json:"pagination"`
}

// Create handles POST /flashcards.
func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFlashcardsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	items := make([]domain.FlashcardInput, len(req.Flashcards))
	for i, fc := range req.Flashcards {
		items[i] = domain.FlashcardInput{
			Front:        fc.Front,
			Back:         fc.Back,
			Source:       domain.FlashcardSource(fc.Source),
			GenerationID: fc.GenerationID,
		}
	}

	created, err := h.svc.CreateMany(r.Context(), flashcard.CreateInput{Flashcards: items})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFlashcardResponses(created))
}

// List handles GET /flashcards.
func (h *FlashcardHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFlashcardFilter(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, flashcardListResponse{
		Data: toFlashcardResponses(page.Items),
		Pagination: paginationResponse{
			Page:  page.Page,
			Limit: page.Limit,
			Total: page.Total,
		},
	})
}

// Get handles GET /flashcards/{id}.
func (h *FlashcardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	card, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFlashcardResponse(*card))
}

// Update handles PUT /flashcards/{id}.
func (h *FlashcardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateFlashcardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	patch, err := req.toPatch()
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if _, err := h.svc.Update(r.Context(), flashcard.UpdateInput{ID: id, Patch: patch}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /flashcards/{id}.
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (req updateFlashcardRequest) toPatch() (domain.FlashcardPatch, error) {
	patch := domain.FlashcardPatch{
		Front: req.Front,
		Back:  req.Back,
	}
	if req.Source != nil {
		src := domain.FlashcardSource(*req.Source)
		patch.Source = &src
	}

	if len(req.GenerationID) > 0 {
		patch.SetGenerationID = true
		if !bytes.Equal(bytes.TrimSpace(req.GenerationID), []byte("null")) {
			var genID int64
			if err := json.Unmarshal(req.GenerationID, &genID); err != nil {
				return domain.FlashcardPatch{}, domain.NewValidationError("generation_id", "must be an integer or null")
			}
			patch.GenerationID = &genID
		}
	}

	return patch, nil
}

// parseFlashcardFilter reads page, limit, sort and order. Absent values are
// left zero so the service applies its defaults.
func parseFlashcardFilter(q url.Values) (domain.FlashcardFilter, error) {
	var (
		filter domain.FlashcardFilter
		errs   domain.FieldErrors
	)

	parseInt := func(name string, dst *int) {
		raw := q.Get(name)
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs.Add(name, "must be a positive integer")
			return
		}
		*dst = n
	}
	parseInt("page", &filter.Page)
	parseInt("limit", &filter.Limit)

	filter.SortBy = domain.FlashcardSortField(q.Get("sort"))
	filter.Order = domain.SortOrder(q.Get("order"))

	if err := errs.Err(); err != nil {
		return domain.FlashcardFilter{}, err
	}
	return filter, nil
}

func toFlashcardResponse(fc domain.Flashcard) flashcardResponse {
	return flashcardResponse{
		ID:           fc.ID,
		Front:        fc.Front,
		Back:         fc.Back,
		Source:       string(fc.Source),
		GenerationID: fc.GenerationID,
		CreatedAt:    fc.CreatedAt,
		UpdatedAt:    fc.UpdatedAt,
	}
}

func toFlashcardResponses(cards []domain.Flashcard) []flashcardResponse {
	out := make([]flashcardResponse, len(cards))
	for i, fc := range cards {
		out[i] = toFlashcardResponse(fc)
	}
	return out
}
