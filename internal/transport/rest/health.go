package rest

import (
	"context"
	"net/http"
	"sort"
	"time"
)

// Pinger is a dependency that can report its availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to the Pinger interface.
type PingFunc func(ctx context.Context) error

// Ping calls f(ctx).
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	version    string
	components map[string]Pinger
}

// NewHealthHandler creates a HealthHandler. Components are pinged by
// /ready and /health; nil entries are ignored.
func NewHealthHandler(version string, components map[string]Pinger) *HealthHandler {
	checked := make(map[string]Pinger, len(components))
	for name, p := range components {
		if p != nil {
			checked[name] = p
		}
	}
	return &HealthHandler{version: version, components: checked}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 if every component answers, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.check(r.Context())

	resp := HealthResponse{Status: "ok", Timestamp: time.Now()}
	status := http.StatusOK
	if !ok {
		resp.Status = "down"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, resp)
}

// Health is the full health check with per-component latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	}
	status := http.StatusOK
	if !ok {
		resp.Status = "down"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, resp)
}

func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.components))
	for name := range h.components {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make(map[string]CompStatus, len(names))
	ok := true
	for _, name := range names {
		start := time.Now()
		err := h.components[name].Ping(ctx)
		if err != nil {
			result[name] = CompStatus{Status: "down"}
			ok = false
			continue
		}
		result[name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}

	return result, ok
}
