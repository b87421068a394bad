package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	requestIDKey ctxKey = "request_id"
	clientIPKey  ctxKey = "client_ip"
)

// WithUserID stores the authenticated principal in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx returns the principal. A missing value, a value of another
// type and uuid.Nil all report false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns "" when no request id was set.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClientIP stores the remote address the request came from. It keys
// per-client rate limits and appears in request logs.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

func ClientIPFromCtx(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}

// LogAttrs returns the request-scoped identifiers as slog-style key/value
// pairs, skipping the ones that are not set.
func LogAttrs(ctx context.Context) []any {
	var attrs []any
	if id := RequestIDFromCtx(ctx); id != "" {
		attrs = append(attrs, "request_id", id)
	}
	if id, ok := UserIDFromCtx(ctx); ok {
		attrs = append(attrs, "user_id", id.String())
	}
	return attrs
}
