package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/badminton-draw-service/internal/domain/teams"
	"github.com/preston-bernstein/badminton-draw-service/internal/logging"
)

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

type teamsResponse struct {
	Category string       `json:"category"`
	Teams    []teams.Team `json:"teams"`
}

// Categories lists the categories that have teams.
func (h *Handler) Categories(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	cats, err := h.draws.Categories(r.Context())
	if err != nil {
		logging.Error(logger, "list categories failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "failed to load teams", logger)
		return
	}
	if cats == nil {
		cats = []string{}
	}
	writeJSON(w, nethttp.StatusOK, categoriesResponse{Categories: cats}, logger)
}

// Teams lists the teams of a category that still need a drawing number.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		writeError(w, r, nethttp.StatusBadRequest, "category is required", logger)
		return
	}

	items, err := h.draws.EligibleTeams(r.Context(), category)
	if err != nil {
		logging.Error(logger, "list eligible teams failed", err, slog.String(logging.FieldCategory, category))
		writeError(w, r, nethttp.StatusInternalServerError, "failed to load teams", logger)
		return
	}
	if items == nil {
		items = []teams.Team{}
	}
	writeJSON(w, nethttp.StatusOK, teamsResponse{Category: category, Teams: items}, logger)
}
