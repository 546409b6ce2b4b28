package store

import (
	"context"
	"sort"
	"sync"

	"github.com/preston-bernstein/badminton-draw-service/internal/domain/draws"
	"github.com/preston-bernstein/badminton-draw-service/internal/domain/teams"
)

// MemoryStore keeps teams and assignments in memory. It backs local runs and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	teams       map[string]teams.Team
	assignments map[string]int // team id -> number
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		teams:       make(map[string]teams.Team),
		assignments: make(map[string]int),
	}
}

// ListTeams returns a copy of the current teams ordered by category and name.
func (s *MemoryStore) ListTeams(ctx context.Context) ([]teams.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.Team, 0, len(s.teams))
	for _, t := range s.teams {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// ListAssignments returns all assignments ordered by number.
func (s *MemoryStore) ListAssignments(ctx context.Context) ([]draws.Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]draws.Assignment, 0, len(s.assignments))
	for teamID, n := range s.assignments {
		result = append(result, draws.Assignment{TeamID: teamID, Number: n})
	}
	sortAssignments(result)
	return result, nil
}

// AssignmentsByNumber returns every assignment holding number, across all categories.
func (s *MemoryStore) AssignmentsByNumber(ctx context.Context, number int) ([]draws.Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []draws.Assignment
	for teamID, n := range s.assignments {
		if n == number {
			result = append(result, draws.Assignment{TeamID: teamID, Number: n})
		}
	}
	sortAssignments(result)
	return result, nil
}

// InsertAssignment stores a new assignment. A team can hold only one number.
func (s *MemoryStore) InsertAssignment(ctx context.Context, a draws.Assignment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assignments[a.TeamID]; ok {
		return ErrDuplicateAssignment
	}
	s.assignments[a.TeamID] = a.Number
	return nil
}

// UpsertTeams inserts or replaces teams by id.
func (s *MemoryStore) UpsertTeams(ctx context.Context, items []teams.Team) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range items {
		s.teams[t.ID] = t
	}
	return nil
}

// SetTeams replaces the existing teams with a new snapshot.
func (s *MemoryStore) SetTeams(items []teams.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = make(map[string]teams.Team, len(items))
	for _, t := range items {
		s.teams[t.ID] = t
	}
}

// Ping always succeeds for the in-memory store.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

func sortAssignments(items []draws.Assignment) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Number != items[j].Number {
			return items[i].Number < items[j].Number
		}
		return items[i].TeamID < items[j].TeamID
	})
}
