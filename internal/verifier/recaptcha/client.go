package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/badminton-draw-service/internal/verifier"
)

// Config controls how the reCAPTCHA client reaches the siteverify API.
type Config struct {
	SecretKey  string
	VerifyURL  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client verifies reCAPTCHA tokens against Google's siteverify endpoint.
type Client struct {
	secret     string
	verifyURL  string
	httpClient httpDoer
}

// NewClient constructs a reCAPTCHA client with the provided configuration.
// An empty secret is accepted; Verify then fails with verifier.ErrSecretMissing.
func NewClient(cfg Config) *Client {
	return &Client{
		secret:     strings.TrimSpace(cfg.SecretKey),
		verifyURL:  normalizeVerifyURL(cfg.VerifyURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// Verify posts the token with the shared secret and maps the verdict.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) (verifier.Result, error) {
	if c.secret == "" {
		return verifier.Result{}, verifier.ErrSecretMissing
	}

	req, err := c.buildRequest(ctx, token, remoteIP)
	if err != nil {
		return verifier.Result{}, &verifier.UpstreamError{Verifier: verifierName, Message: "build request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return verifier.Result{}, &verifier.UpstreamError{Verifier: verifierName, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return verifier.Result{}, &verifier.UpstreamError{
			Verifier:   verifierName,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	var payload siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return verifier.Result{}, &verifier.UpstreamError{Verifier: verifierName, StatusCode: resp.StatusCode, Message: "decode response", Err: err}
	}
	return mapResult(payload), nil
}

func (c *Client) buildRequest(ctx context.Context, token, remoteIP string) (*http.Request, error) {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func mapResult(p siteverifyResponse) verifier.Result {
	codes := p.ErrorCodes
	if codes == nil {
		codes = []string{}
	}
	return verifier.Result{
		Success:     p.Success,
		Score:       p.Score,
		ErrorCodes:  codes,
		Action:      p.Action,
		Hostname:    p.Hostname,
		ChallengeTS: p.ChallengeTS,
	}
}
