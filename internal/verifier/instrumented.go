package verifier

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/preston-bernstein/badminton-draw-service/internal/logging"
	"github.com/preston-bernstein/badminton-draw-service/internal/metrics"
)

// instrumentedVerifier records metrics and logs for every call to the wrapped verifier.
// It never retries: a failed upstream call is reported to the caller as is.
type instrumentedVerifier struct {
	inner   Verifier
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
	now     func() time.Time
}

// NewInstrumentedVerifier wraps inner with metrics and logging under the given name.
func NewInstrumentedVerifier(inner Verifier, logger *slog.Logger, recorder *metrics.Recorder, name string) Verifier {
	if name == "" {
		name = "verifier"
	}
	return &instrumentedVerifier{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
		now:     time.Now,
	}
}

func (v *instrumentedVerifier) Verify(ctx context.Context, token, remoteIP string) (Result, error) {
	if v.inner == nil {
		return Result{}, ErrVerifierUnavailable
	}
	logger := logging.FromContext(ctx, v.logger)

	start := v.now()
	res, err := v.inner.Verify(ctx, token, remoteIP)
	duration := v.now().Sub(start)

	// A missing secret is a configuration problem, not an upstream attempt.
	if errors.Is(err, ErrSecretMissing) {
		logWithVerifier(ctx, logger, slog.LevelError, v.name, "verification secret is not configured")
		return res, err
	}

	v.metrics.RecordVerifierAttempt(v.name, duration, err == nil && !res.Success, err)
	switch {
	case err != nil:
		logWithVerifier(ctx, logger, slog.LevelError, v.name, "verification call failed",
			"error", err,
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	case !res.Success:
		logWithVerifier(ctx, logger, slog.LevelWarn, v.name, "token rejected by verifier",
			"error_codes", res.ErrorCodes,
		)
	default:
		logWithVerifier(ctx, logger, slog.LevelDebug, v.name, "token verified",
			"score", res.Score,
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	}
	return res, err
}
