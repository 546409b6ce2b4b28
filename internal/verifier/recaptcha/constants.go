package recaptcha

import "time"

const (
	defaultVerifyURL   = "https://www.google.com/recaptcha/api/siteverify"
	defaultHTTPTimeout = 10 * time.Second
	// Upstream error bodies are only used for messages.
	maxErrorBody = 512
)
