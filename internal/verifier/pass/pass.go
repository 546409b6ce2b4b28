// Package pass issues short-lived single-use tickets for callers that already
// proved themselves to the verifier. Upstream tokens can only be checked once,
// so the relay hands out a pass that the draw endpoint redeems instead.
package pass

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL bounds how long an issued pass stays redeemable.
const DefaultTTL = 2 * time.Minute

// Store keeps outstanding passes in memory.
type Store struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	passes map[string]time.Time
}

// New returns a Store whose passes expire after ttl. Non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:    ttl,
		now:    time.Now,
		passes: make(map[string]time.Time),
	}
}

// Issue records a new pass and returns its id.
func (s *Store) Issue() string {
	id := uuid.NewString()
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(now)
	s.passes[id] = now.Add(s.ttl)
	return id
}

// Consume redeems a pass. It reports false for unknown, expired or already used ids.
func (s *Store) Consume(id string) bool {
	if id == "" {
		return false
	}
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	expires, ok := s.passes[id]
	if !ok {
		return false
	}
	delete(s.passes, id)
	return now.Before(expires)
}

// Len reports how many passes are outstanding, expired ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.passes)
}

func (s *Store) pruneLocked(now time.Time) {
	for id, expires := range s.passes {
		if !now.Before(expires) {
			delete(s.passes, id)
		}
	}
}
