package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"strings"

	appdraws "github.com/preston-bernstein/badminton-draw-service/internal/app/draws"
	domaindraws "github.com/preston-bernstein/badminton-draw-service/internal/domain/draws"
	"github.com/preston-bernstein/badminton-draw-service/internal/logging"
	"github.com/preston-bernstein/badminton-draw-service/internal/verifier"
)

type drawRequest struct {
	Category string `json:"category"`
	TeamID   string `json:"teamId"`
	Token    string `json:"token"`
	Pass     string `json:"pass"`
}

type drawResponse struct {
	TeamID   string `json:"teamId"`
	TeamName string `json:"teamName"`
	Category string `json:"category"`
	Number   int    `json:"number"`
	Message  string `json:"message"`
}

type resultsResponse struct {
	Category    string               `json:"category"`
	Assignments []domaindraws.Result `json:"assignments"`
}

// Draws serves the draw results (GET) and assigns a new drawing number (POST).
func (h *Handler) Draws(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.Method {
	case nethttp.MethodGet:
		h.listDraws(w, r)
	case nethttp.MethodPost:
		h.assignDraw(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) listDraws(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		writeError(w, r, nethttp.StatusBadRequest, "category is required", logger)
		return
	}

	results, err := h.draws.Results(r.Context(), category)
	if err != nil {
		logging.Error(logger, "list draw results failed", err, slog.String(logging.FieldCategory, category))
		writeError(w, r, nethttp.StatusInternalServerError, "failed to load drawing numbers", logger)
		return
	}
	if results == nil {
		results = []domaindraws.Result{}
	}
	writeJSON(w, nethttp.StatusOK, resultsResponse{Category: category, Assignments: results}, logger)
}

func (h *Handler) assignDraw(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)

	var req drawRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", logger)
		return
	}
	req.Category = strings.TrimSpace(req.Category)
	req.TeamID = strings.TrimSpace(req.TeamID)
	req.Pass = strings.TrimSpace(req.Pass)
	switch {
	case req.Category == "":
		writeError(w, r, nethttp.StatusBadRequest, "category is required", logger)
		return
	case req.TeamID == "":
		writeError(w, r, nethttp.StatusBadRequest, "please select a team", logger)
		return
	case req.Pass == "" && strings.TrimSpace(req.Token) == "":
		writeError(w, r, nethttp.StatusBadRequest, "verification token is required", logger)
		return
	}

	if req.Pass != "" {
		if h.passes == nil || !h.passes.Consume(req.Pass) {
			logging.Warn(logger, "draw pass rejected", slog.String(logging.FieldTeamID, req.TeamID))
			writeError(w, r, nethttp.StatusForbidden, "verification pass is invalid or already used", logger)
			return
		}
	} else if status, msg, ok := h.checkToken(r, req.Token); !ok {
		writeError(w, r, status, msg, logger)
		return
	}

	result, err := h.draws.Assign(r.Context(), req.Category, req.TeamID)
	switch {
	case errors.Is(err, appdraws.ErrTeamNotEligible):
		writeError(w, r, nethttp.StatusConflict, "team is not eligible for a drawing number", logger)
		return
	case errors.Is(err, appdraws.ErrNumbersExhausted):
		writeError(w, r, nethttp.StatusServiceUnavailable, appdraws.ErrNumbersExhausted.Error(), logger)
		return
	case err != nil:
		logging.Error(logger, "assign drawing number failed", err,
			slog.String(logging.FieldCategory, req.Category),
			slog.String(logging.FieldTeamID, req.TeamID),
		)
		writeError(w, r, nethttp.StatusInternalServerError, "failed to save drawing number, please try again", logger)
		return
	}

	writeJSON(w, nethttp.StatusCreated, drawResponse{
		TeamID:   result.TeamID,
		TeamName: result.TeamName,
		Category: result.Category,
		Number:   result.Number,
		Message:  fmt.Sprintf("drawing number saved for team: %s", result.TeamName),
	}, logger)
}

// checkToken verifies the proof token and applies the score threshold.
func (h *Handler) checkToken(r *nethttp.Request, token string) (int, string, bool) {
	logger := loggerFromContext(r, h.logger)
	if h.verifier == nil {
		return nethttp.StatusInternalServerError, "verifier not configured", false
	}

	res, err := h.verifier.Verify(r.Context(), token, clientIP(r))
	switch {
	case errors.Is(err, verifier.ErrSecretMissing), errors.Is(err, verifier.ErrVerifierUnavailable):
		return nethttp.StatusInternalServerError, "verification is not configured", false
	case err != nil:
		return upstreamFailure(logger, err)
	case !res.Passes(h.minScore):
		logging.Warn(logger, "draw rejected by verification",
			"success", res.Success,
			"score", res.Score,
			"error_codes", res.ErrorCodes,
		)
		return nethttp.StatusForbidden, "verification failed", false
	}
	return 0, "", true
}

// upstreamFailure maps a failed upstream call. A 4xx from the upstream means our
// request was wrong, which is a server fault; anything else is a gateway failure.
func upstreamFailure(logger *slog.Logger, err error) (int, string, bool) {
	status := 0
	if upErr, ok := verifier.AsUpstreamError(err); ok {
		status = upErr.StatusCode
	}
	logging.Warn(logger, "draw verification failed", "err", err, "upstream_status", status)
	if status >= 400 && status < 500 {
		return nethttp.StatusInternalServerError, "verification request rejected upstream", false
	}
	return nethttp.StatusBadGateway, "verification service unavailable", false
}
