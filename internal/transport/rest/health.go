package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/SiphoChris/afrilex/internal/domain"
)

const probeTimeout = 3 * time.Second

// dbPinger checks database reachability.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// SessionCounter reports how many editing sessions are held in memory.
type SessionCounter interface {
	Len() int
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db       dbPinger
	version  string
	sessions map[string]SessionCounter
	now      func() time.Time
}

// NewHealthHandler creates a HealthHandler. sessions maps a session kind
// ("dictionary_drafts", "word_drafts") to its store and may be nil.
func NewHealthHandler(db dbPinger, version string, sessions map[string]SessionCounter) *HealthHandler {
	return &HealthHandler{db: db, version: version, sessions: sessions, now: time.Now}
}

// HealthResponse is the body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Sessions   map[string]int        `json:"sessions,omitempty"`
	Languages  int                   `json:"languages,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process serves requests.
// GET /live
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 503 until the database is reachable.
// GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if _, err := h.pingDB(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: h.now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Health reports the database latency, open editing sessions, the size of
// the language catalog and the build version.
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: make(map[string]CompStatus, 1),
		Languages:  len(domain.Languages()),
	}

	latency, err := h.pingDB(r.Context())
	if err != nil {
		resp.Status = "down"
		resp.Components["database"] = CompStatus{Status: "down"}
	} else {
		resp.Components["database"] = CompStatus{Status: "ok", Latency: latency.String()}
	}

	if len(h.sessions) > 0 {
		resp.Sessions = make(map[string]int, len(h.sessions))
		for kind, store := range h.sessions {
			resp.Sessions[kind] = store.Len()
		}
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	resp.Timestamp = h.now()
	writeJSON(w, status, resp)
}

func (h *HealthHandler) pingDB(ctx context.Context) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := h.now()
	err := h.db.Ping(ctx)
	return h.now().Sub(start), err
}
