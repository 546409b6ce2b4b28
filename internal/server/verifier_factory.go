package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/badminton-draw-service/internal/config"
	"github.com/preston-bernstein/badminton-draw-service/internal/metrics"
	"github.com/preston-bernstein/badminton-draw-service/internal/verifier"
	"github.com/preston-bernstein/badminton-draw-service/internal/verifier/fixture"
	"github.com/preston-bernstein/badminton-draw-service/internal/verifier/recaptcha"
)

const (
	verifierRecaptcha = "recaptcha"
	verifierFixture   = "fixture"
)

// normalizeVerifierName lower-cases the configured verifier so metrics and logs share one label.
func normalizeVerifierName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return verifierRecaptcha
	}
	return name
}

// buildVerifier selects the token verifier and wraps it with metrics and logging.
func buildVerifier(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) verifier.Verifier {
	name := normalizeVerifierName(cfg.Verifier)
	var base verifier.Verifier
	switch name {
	case verifierFixture:
		if logger != nil {
			logger.Warn("fixture verifier enabled; every token except the reject token passes")
		}
		base = fixture.New()
	case verifierRecaptcha:
		base = newRecaptcha(cfg)
	default:
		if logger != nil {
			logger.Warn("unknown verifier, falling back to recaptcha", slog.String("verifier", cfg.Verifier))
		}
		name = verifierRecaptcha
		base = newRecaptcha(cfg)
	}
	if name == verifierRecaptcha && strings.TrimSpace(cfg.Recaptcha.SecretKey) == "" && logger != nil {
		logger.Warn("RECAPTCHA_SECRET_KEY is not set; verification requests will fail with a configuration error")
	}
	return verifier.NewInstrumentedVerifier(base, logger, recorder, name)
}

func newRecaptcha(cfg config.Config) verifier.Verifier {
	return recaptcha.NewClient(recaptcha.Config{
		SecretKey: cfg.Recaptcha.SecretKey,
		VerifyURL: cfg.Recaptcha.VerifyURL,
		Timeout:   cfg.Recaptcha.Timeout,
	})
}
