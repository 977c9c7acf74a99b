package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/buildline/crm-backend/internal/transport/respond"
)

const probeTimeout = 3 * time.Second

// Pinger is a dependency that can report its availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db       Pinger
	optional map[string]Pinger
	version  string
}

// NewHealthHandler creates a HealthHandler. The database gates readiness;
// optional components such as the cache are reported by /health but never
// fail it.
func NewHealthHandler(db Pinger, version string, optional map[string]Pinger) *HealthHandler {
	return &HealthHandler{db: db, optional: optional, version: version}
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
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 when the database answers, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		respond.JSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	respond.JSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health pings every component with latency and includes the build version.
// Optional components that are down degrade the status but keep 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	components := map[string]CompStatus{"database": probe(ctx, h.db)}
	overall, status := "ok", http.StatusOK
	if components["database"].Status != "ok" {
		overall, status = "down", http.StatusServiceUnavailable
	}

	for name, p := range h.optional {
		c := probe(ctx, p)
		components[name] = c
		if c.Status != "ok" && overall == "ok" {
			overall = "degraded"
		}
	}

	respond.JSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func probe(ctx context.Context, p Pinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: "down", Error: err.Error()}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
