package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"

	domaindraws "github.com/preston-bernstein/badminton-draw-service/internal/domain/draws"
	"github.com/preston-bernstein/badminton-draw-service/internal/domain/teams"
	"github.com/preston-bernstein/badminton-draw-service/internal/logging"
	"github.com/preston-bernstein/badminton-draw-service/internal/verifier"
)

var errEmptyBody = errors.New("empty request body")

// DrawService is the slice of the draw service the HTTP layer depends on.
type DrawService interface {
	Categories(ctx context.Context) ([]string, error)
	EligibleTeams(ctx context.Context, category string) ([]teams.Team, error)
	Results(ctx context.Context, category string) ([]domaindraws.Result, error)
	Assign(ctx context.Context, category, teamID string) (domaindraws.Result, error)
}

// Pinger reports whether a dependency can serve traffic.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PassStore issues and redeems the single-use passes handed out by the relay.
type PassStore interface {
	Issue() string
	Consume(id string) bool
}

// Handler wires HTTP routes to the draw service and the verification relay.
type Handler struct {
	draws    DrawService
	verifier verifier.Verifier
	passes   PassStore
	store    Pinger
	minScore float64
	logger   *slog.Logger
}

// Options holds the collaborators for NewHandler. Store may be nil when readiness
// should not depend on persistence. Without Passes the relay issues no draw passes
// and POST /draws verifies its token directly.
type Options struct {
	Draws    DrawService
	Verifier verifier.Verifier
	Passes   PassStore
	Store    Pinger
	MinScore float64
	Logger   *slog.Logger
}

// NewHandler constructs a Handler with defaults.
func NewHandler(opts Options) *Handler {
	return &Handler{
		draws:    opts.Draws,
		verifier: opts.Verifier,
		passes:   opts.Passes,
		store:    opts.Store,
		minScore: opts.MinScore,
		logger:   opts.Logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic; it fails while the store is unreachable.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			logging.Warn(loggerFromContext(r, h.logger), "readiness check failed", "err", err)
			writeError(w, r, nethttp.StatusServiceUnavailable, "store unavailable", h.logger)
			return
		}
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}
