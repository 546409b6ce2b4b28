package fixture

import (
	"context"
	"strings"

	"github.com/preston-bernstein/badminton-draw-service/internal/verifier"
)

const (
	// DefaultScore is high enough to clear the usual 0.5 threshold.
	DefaultScore = 0.9
	// RejectToken is a token the fixture always rejects, for exercising failure paths locally.
	RejectToken = "fixture-reject"
)

// Verifier accepts every token except RejectToken. It stands in for reCAPTCHA in local runs.
type Verifier struct {
	score float64
}

// New creates a fixture verifier that reports DefaultScore.
func New() *Verifier {
	return &Verifier{score: DefaultScore}
}

// Verify returns a deterministic verdict without calling any upstream service.
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) (verifier.Result, error) {
	_ = remoteIP
	if err := ctx.Err(); err != nil {
		return verifier.Result{}, err
	}
	if strings.TrimSpace(token) == RejectToken {
		return verifier.Result{Success: false, Score: 0, ErrorCodes: []string{"invalid-input-response"}}, nil
	}
	return verifier.Result{Success: true, Score: v.score, ErrorCodes: []string{}, Action: "fixture", Hostname: "localhost"}, nil
}
