package verifier

import "context"

// Verifier checks a one-time proof token issued by an anti-bot challenge.
// remoteIP is optional and forwarded upstream when the implementation supports it.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (Result, error)
}

// Result is the upstream verdict for a token.
type Result struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	ErrorCodes  []string `json:"errorCodes"`
	Action      string   `json:"action,omitempty"`
	Hostname    string   `json:"hostname,omitempty"`
	ChallengeTS string   `json:"challengeTs,omitempty"`
}

// Passes reports whether the result succeeded with at least minScore.
func (r Result) Passes(minScore float64) bool {
	return r.Success && r.Score >= minScore
}
