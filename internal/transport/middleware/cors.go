package middleware

import (
	"net/http"
	"slices"

	"github.com/rs/cors"

	"github.com/heartmarshall/flashcards-backend/internal/config"
)

// CORS returns middleware that answers preflight requests and sets the
// Access-Control headers for allowed origins.
func CORS(cfg config.CORSConfig) Middleware {
	origins := cfg.Origins()
	opts := cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{"X-Request-Id", "Retry-After"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// A wildcard with credentials must echo the caller's origin.
	if cfg.AllowCredentials && slices.Contains(origins, "*") {
		opts.AllowedOrigins = nil
		opts.AllowOriginFunc = func(string) bool { return true }
	}

	c := cors.New(opts)
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
