package store

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/badminton-draw-service/internal/domain/draws"
	"github.com/preston-bernstein/badminton-draw-service/internal/domain/teams"
)

func TestMemoryStoreSetAndList(t *testing.T) {
	s := NewMemoryStore()
	s.SetTeams([]teams.Team{
		{ID: "2", Category: teams.CategoryWanita, Name: "Drop"},
		{ID: "1", Category: teams.CategoryPria, Name: "Smash"},
	})

	got, err := s.ListTeams(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(got))
	}
	if got[0].ID != "1" {
		t.Fatalf("expected teams ordered by category, got %+v", got)
	}
}

func TestMemoryStoreSetReplacesSnapshot(t *testing.T) {
	s := NewMemoryStore()
	s.SetTeams([]teams.Team{{ID: "1"}, {ID: "2"}})
	s.SetTeams([]teams.Team{{ID: "3"}})

	got, _ := s.ListTeams(context.Background())
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected replaced snapshot, got %+v", got)
	}
}

func TestMemoryStoreUpsertTeams(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	_ = s.UpsertTeams(ctx, []teams.Team{{ID: "1", Name: "Old"}})
	_ = s.UpsertTeams(ctx, []teams.Team{{ID: "1", Name: "New"}, {ID: "2", Name: "Other"}})

	got, _ := s.ListTeams(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(got))
	}
	if idx := teams.ByID(got); idx["1"].Name != "New" {
		t.Fatalf("expected upsert to replace name, got %+v", idx["1"])
	}
}

func TestMemoryStoreAssignments(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.InsertAssignment(ctx, draws.Assignment{TeamID: "a", Number: 2}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := s.InsertAssignment(ctx, draws.Assignment{TeamID: "b", Number: 2}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := s.InsertAssignment(ctx, draws.Assignment{TeamID: "c", Number: 1}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	holders, err := s.AssignmentsByNumber(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(holders) != 2 || holders[0].TeamID != "a" || holders[1].TeamID != "b" {
		t.Fatalf("unexpected holders %+v", holders)
	}

	all, _ := s.ListAssignments(ctx)
	if len(all) != 3 || all[0].Number != 1 {
		t.Fatalf("expected assignments ordered by number, got %+v", all)
	}

	none, _ := s.AssignmentsByNumber(ctx, 9)
	if len(none) != 0 {
		t.Fatalf("expected no holders, got %+v", none)
	}
}

func TestMemoryStoreRejectsSecondAssignmentForTeam(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_ = s.InsertAssignment(ctx, draws.Assignment{TeamID: "a", Number: 1})
	err := s.InsertAssignment(ctx, draws.Assignment{TeamID: "a", Number: 2})
	if !errors.Is(err, ErrDuplicateAssignment) {
		t.Fatalf("expected ErrDuplicateAssignment, got %v", err)
	}
}

func TestMemoryStoreHonorsCanceledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.ListTeams(ctx); err == nil {
		t.Fatal("expected context error")
	}
	if err := s.Ping(ctx); err == nil {
		t.Fatal("expected ping to report canceled context")
	}
}
