package testutil

import (
	"github.com/preston-bernstein/badminton-draw-service/internal/domain/teams"
	"github.com/preston-bernstein/badminton-draw-service/internal/store"
)

// SampleTeams returns a small roster spread over two categories.
func SampleTeams() []teams.Team {
	return []teams.Team{
		{ID: "t-1", Category: teams.CategoryPria, Name: "Garuda"},
		{ID: "t-2", Category: teams.CategoryPria, Name: "Elang"},
		{ID: "t-3", Category: teams.CategoryPria, Name: "Rajawali"},
		{ID: "t-4", Category: teams.CategoryWanita, Name: "Merpati"},
		{ID: "t-5", Category: teams.CategoryWanita, Name: "Cendrawasih"},
	}
}

// NewSeededStore builds an in-memory store preloaded with teams.
func NewSeededStore(items []teams.Team) *store.MemoryStore {
	ms := store.NewMemoryStore()
	if len(items) > 0 {
		ms.SetTeams(items)
	}
	return ms
}
