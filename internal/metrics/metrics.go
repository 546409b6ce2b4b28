package metrics

import (
	"sync"
	"time"
)

type verifierStats struct {
	calls           int
	errors          int
	rejections      int
	lastCallLatency time.Duration
}

type drawStats struct {
	outcomes     map[string]int
	lastAttempts int
}

// Recorder captures lightweight, in-memory metrics about verifier calls and draws.
// When built by Setup it also forwards every observation to OpenTelemetry instruments.
type Recorder struct {
	mu        sync.Mutex
	verifiers map[string]*verifierStats
	draws     map[string]*drawStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		verifiers: make(map[string]*verifierStats),
		draws:     make(map[string]*drawStats),
		otel:      otel,
	}
}

// RecordVerifierAttempt increments counters for a verifier call and stores the last observed latency.
// A call that succeeded at the transport level but was judged a bot counts as a rejection.
func (r *Recorder) RecordVerifierAttempt(verifier string, duration time.Duration, rejected bool, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.verifiers[verifier]
	if !ok {
		stats = &verifierStats{}
		r.verifiers[verifier] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	} else if rejected {
		stats.rejections++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordVerifierAttempt(verifier, duration, rejected, err)
	}
}

// RecordDraw tracks the outcome of one assignment and how many samples it took.
func (r *Recorder) RecordDraw(category, outcome string, attempts int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.draws[category]
	if !ok {
		stats = &drawStats{outcomes: make(map[string]int)}
		r.draws[category] = stats
	}
	stats.outcomes[outcome]++
	stats.lastAttempts = attempts
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDraw(category, outcome, attempts)
	}
}

// VerifierCalls returns the total attempts recorded for a verifier.
func (r *Recorder) VerifierCalls(verifier string) int {
	return r.Snapshot(verifier).Calls
}

// VerifierErrors returns the total failed attempts recorded for a verifier.
func (r *Recorder) VerifierErrors(verifier string) int {
	return r.Snapshot(verifier).Errors
}

// VerifierRejections returns how many tokens the verifier judged unsuccessful.
func (r *Recorder) VerifierRejections(verifier string) int {
	return r.Snapshot(verifier).Rejections
}

// LastCallLatency returns the last recorded latency for a verifier call.
func (r *Recorder) LastCallLatency(verifier string) time.Duration {
	return r.Snapshot(verifier).LastCallLatency
}

// Snapshot returns a copy of the current stats for the verifier.
type Snapshot struct {
	Calls           int
	Errors          int
	Rejections      int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(verifier string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.verifiers[verifier]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Rejections:      stats.rejections,
		LastCallLatency: stats.lastCallLatency,
	}
}

// DrawOutcomes returns how many draws ended with outcome in the category.
func (r *Recorder) DrawOutcomes(category, outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.draws[category]; ok {
		return stats.outcomes[outcome]
	}
	return 0
}

// LastDrawAttempts returns the sample count of the most recent draw in the category.
func (r *Recorder) LastDrawAttempts(category string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.draws[category]; ok {
		return stats.lastAttempts
	}
	return 0
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
