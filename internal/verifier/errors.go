package verifier

import (
	"errors"
	"fmt"
)

var (
	// ErrSecretMissing means the server has no shared secret for the upstream API.
	ErrSecretMissing = errors.New("verification secret is not configured")
	// ErrVerifierUnavailable is returned when no verifier is wired.
	ErrVerifierUnavailable = errors.New("verifier unavailable")
)

// UpstreamError captures failed calls to the third-party verification API.
type UpstreamError struct {
	Verifier   string
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "verification upstream failed"
	}
	if e.Verifier != "" {
		msg = e.Verifier + ": " + msg
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
