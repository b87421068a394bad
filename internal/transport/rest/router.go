package rest

import (
	"net/http"

	"github.com/heartmarshall/flashcards-backend/internal/transport/middleware"
)

// Handlers groups every REST handler served by the router.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Generation *GenerationHandler
	Flashcard  *FlashcardHandler
	Review     *ReviewHandler
	Chat       *ChatHandler
	Source     *SourceHandler
}

// RouterOptions configures the middleware around the routes.
type RouterOptions struct {
	// Middleware wraps the whole mux, outermost first.
	Middleware []middleware.Middleware
	// AuthLimit and GenerationLimit are optional per-route rate limits.
	AuthLimit       middleware.Middleware
	GenerationLimit middleware.Middleware
}

// NewRouter registers all routes on a new ServeMux.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	mux := http.NewServeMux()

	public := func(limit middleware.Middleware, fn http.HandlerFunc) http.Handler {
		return middleware.Chain(limit)(fn)
	}
	private := func(limit middleware.Middleware, fn http.HandlerFunc) http.Handler {
		return middleware.Chain(middleware.RequireAuth, limit)(fn)
	}

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/register", public(opts.AuthLimit, h.Auth.Register))
	mux.Handle("POST /auth/login", public(opts.AuthLimit, h.Auth.Login))
	mux.Handle("POST /auth/refresh", public(opts.AuthLimit, h.Auth.Refresh))
	mux.Handle("POST /auth/password-recovery", public(opts.AuthLimit, h.Auth.PasswordRecovery))
	mux.Handle("POST /auth/password-reset", public(opts.AuthLimit, h.Auth.PasswordReset))
	mux.Handle("POST /auth/logout", private(nil, h.Auth.Logout))

	mux.Handle("POST /generations", private(opts.GenerationLimit, h.Generation.Generate))
	mux.Handle("POST /chat", private(opts.GenerationLimit, h.Chat.Chat))
	mux.Handle("POST /sources/extract", private(nil, h.Source.Extract))

	mux.Handle("POST /flashcards", private(nil, h.Flashcard.Create))
	mux.Handle("GET /flashcards", private(nil, h.Flashcard.List))
	mux.Handle("GET /flashcards/{id}", private(nil, h.Flashcard.Get))
	mux.Handle("PUT /flashcards/{id}", private(nil, h.Flashcard.Update))
	mux.Handle("DELETE /flashcards/{id}", private(nil, h.Flashcard.Delete))

	mux.Handle("GET /reviews/{id}", private(nil, h.Review.Get))
	mux.Handle("POST /reviews/{id}/accept-all", private(nil, h.Review.AcceptAll))
	mux.Handle("POST /reviews/{id}/reject-all", private(nil, h.Review.RejectAll))
	mux.Handle("POST /reviews/{id}/proposals/{pid}/accept", private(nil, h.Review.Accept))
	mux.Handle("POST /reviews/{id}/proposals/{pid}/reject", private(nil, h.Review.Reject))
	mux.Handle("POST /reviews/{id}/proposals/{pid}/edit", private(nil, h.Review.StartEdit))
	mux.Handle("PUT /reviews/{id}/proposals/{pid}", private(nil, h.Review.SaveEdit))
	mux.Handle("DELETE /reviews/{id}/edit", private(nil, h.Review.CancelEdit))
	mux.Handle("POST /reviews/{id}/save", private(nil, h.Review.Save))

	return middleware.Chain(opts.Middleware...)(mux)
}
