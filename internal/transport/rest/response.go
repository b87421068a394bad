package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/pkg/ctxutil"
)

type errorResponse struct {
	Error  string          `json:"error"`
	Fields []fieldResponse `json:"fields,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads the request body into v. It writes a 400 response and
// returns false when the body is missing or malformed.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.Is(err, io.EOF):
		writeError(w, http.StatusBadRequest, "request body is required")
	default:
		writeError(w, http.StatusBadRequest, "invalid request body")
	}
	return false
}

// pathID parses a positive integer path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// handleError maps a service error to a response. Full error text is only
// logged; clients get a generic message per category.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	var ce *domain.CompletionError

	switch {
	case errors.As(err, &ve):
		fields := make([]fieldResponse, len(ve.Errors))
		for i, fe := range ve.Errors {
			fields[i] = fieldResponse{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation failed")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.As(err, &ce) && ce.Kind == domain.CompletionErrConfiguration:
		logError(log, r, "completion backend misconfigured", err)
		writeError(w, http.StatusServiceUnavailable, "AI service is not available")
	case errors.Is(err, domain.ErrRemoteService):
		logError(log, r, "remote service error", err)
		writeError(w, http.StatusBadGateway, "AI service error, try again later")
	default:
		logError(log, r, "internal error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func logError(log *slog.Logger, r *http.Request, msg string, err error) {
	log.ErrorContext(r.Context(), msg,
		slog.String("error", err.Error()),
		slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
}
