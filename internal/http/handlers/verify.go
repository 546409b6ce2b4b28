package handlers

import (
	"errors"
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/badminton-draw-service/internal/logging"
	"github.com/preston-bernstein/badminton-draw-service/internal/verifier"
)

// Relay messages are part of the public contract with the browser client.
const (
	msgRelayMethodNotAllowed = "Method Not Allowed"
	msgRelayMissingToken     = "Missing reCAPTCHA token."
	msgRelaySecretMissing    = "Server configuration error: reCAPTCHA secret key missing."
	msgRelayNotConfigured    = "Server configuration error: reCAPTCHA verification not configured."
	msgRelayUpstreamFailed   = "Internal server error during reCAPTCHA verification."
)

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	ErrorCodes []string `json:"errorCodes"`
	Pass       string   `json:"pass,omitempty"`
}

// VerifyRecaptcha relays a client token to the verifier and reports its verdict as is.
// The verdict itself is not thresholded; a verdict that clears the minimum score
// also carries a single-use pass for POST /draws, since the token cannot be
// verified upstream a second time.
func (h *Handler) VerifyRecaptcha(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	if r.Method != nethttp.MethodPost {
		w.Header().Set("Allow", nethttp.MethodPost)
		writeJSON(w, nethttp.StatusMethodNotAllowed, map[string]string{"error": msgRelayMethodNotAllowed}, logger)
		return
	}

	var req verifyRequest
	if err := decodeJSONBody(w, r, &req); err != nil || strings.TrimSpace(req.Token) == "" {
		writeJSON(w, nethttp.StatusBadRequest, map[string]string{"error": msgRelayMissingToken}, logger)
		return
	}

	if h.verifier == nil {
		logging.Error(logger, "recaptcha relay has no verifier", verifier.ErrVerifierUnavailable)
		writeJSON(w, nethttp.StatusInternalServerError, map[string]string{"error": msgRelayNotConfigured}, logger)
		return
	}
	res, err := h.verifier.Verify(r.Context(), req.Token, clientIP(r))
	switch {
	case errors.Is(err, verifier.ErrVerifierUnavailable):
		logging.Error(logger, "recaptcha relay has no verifier", err)
		writeJSON(w, nethttp.StatusInternalServerError, map[string]string{"error": msgRelayNotConfigured}, logger)
		return
	case errors.Is(err, verifier.ErrSecretMissing):
		writeJSON(w, nethttp.StatusInternalServerError, map[string]string{"error": msgRelaySecretMissing}, logger)
		return
	case err != nil:
		logging.Error(logger, "recaptcha relay failed", err)
		writeJSON(w, nethttp.StatusInternalServerError, map[string]string{"error": msgRelayUpstreamFailed}, logger)
		return
	}

	codes := res.ErrorCodes
	if codes == nil {
		codes = []string{}
	}
	resp := verifyResponse{
		Success:    res.Success,
		Score:      res.Score,
		ErrorCodes: codes,
	}
	if h.passes != nil && res.Passes(h.minScore) {
		resp.Pass = h.passes.Issue()
	}
	writeJSON(w, nethttp.StatusOK, resp, logger)
}
