package recaptcha

import (
	"net/http"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func normalizeVerifyURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultVerifyURL
	}
	return raw
}
