package server

import "time"

// The write timeout must cover a draw: one verifier round trip (RECAPTCHA_TIMEOUT,
// 10s by default) plus a handful of store queries.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 20 * time.Second
	idleTimeout       = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
