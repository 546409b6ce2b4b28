package testutil

import (
	"context"

	"github.com/preston-bernstein/badminton-draw-service/internal/verifier"
)

// StubVerifier implements verifier.Verifier with a canned verdict and records calls.
type StubVerifier struct {
	Result    verifier.Result
	Err       error
	Calls     int
	LastToken string
	LastIP    string
}

func (s *StubVerifier) Verify(ctx context.Context, token, remoteIP string) (verifier.Result, error) {
	_ = ctx
	s.Calls++
	s.LastToken = token
	s.LastIP = remoteIP
	return s.Result, s.Err
}

// PassingVerifier returns a verifier that accepts every token with a high score.
func PassingVerifier() *StubVerifier {
	return &StubVerifier{Result: verifier.Result{Success: true, Score: 0.9, ErrorCodes: []string{}}}
}
