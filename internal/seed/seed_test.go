package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/preston-bernstein/badminton-draw-service/internal/store"
)

func TestDecodeKeepsAndGeneratesIDs(t *testing.T) {
	roster := `[
		{"id": "fixed-1", "category": "pria", "name": "Garuda"},
		{"category": " wanita ", "name": " Merpati "}
	]`
	items, err := Decode(strings.NewReader(roster))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(items))
	}
	if items[0].ID != "fixed-1" {
		t.Fatalf("expected id kept, got %s", items[0].ID)
	}
	if _, err := uuid.Parse(items[1].ID); err != nil {
		t.Fatalf("expected generated uuid, got %q", items[1].ID)
	}
	if items[1].ID != TeamID("wanita", "Merpati") {
		t.Fatalf("expected id derived from trimmed category and name, got %q", items[1].ID)
	}
	if items[1].Category != "wanita" || items[1].Name != "Merpati" {
		t.Fatalf("expected trimmed fields, got %+v", items[1])
	}
}

func TestDecodeDerivesStableIDs(t *testing.T) {
	roster := `[{"category":"pria","name":"A"},{"category":"pria","name":"B"},{"category":"wanita","name":"A"}]`
	first, err := Decode(strings.NewReader(roster))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := Decode(strings.NewReader(roster))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	seen := map[string]bool{}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("entry %d: expected stable id, got %q then %q", i, first[i].ID, second[i].ID)
		}
		if seen[first[i].ID] {
			t.Fatalf("entry %d: id %q collides", i, first[i].ID)
		}
		seen[first[i].ID] = true
	}
}

func TestApplyTwiceKeepsTeamCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.json")
	if err := os.WriteFile(path, []byte(`[{"category":"pria","name":"A"},{"category":"pria","name":"B"}]`), 0o600); err != nil {
		t.Fatalf("write roster: %v", err)
	}

	ms := store.NewMemoryStore()
	for i := 0; i < 2; i++ {
		if _, err := Apply(context.Background(), ms, path); err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
	}
	got, _ := ms.ListTeams(context.Background())
	if len(got) != 2 {
		t.Fatalf("expected 2 teams after reseeding, got %d", len(got))
	}
}

func TestDecodeRejectsInvalidEntries(t *testing.T) {
	_, err := Decode(strings.NewReader(`[{"name": "No Category"}]`))
	if !errors.Is(err, ErrInvalidTeam) {
		t.Fatalf("expected ErrInvalidTeam, got %v", err)
	}
	if _, err := Decode(strings.NewReader("{")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestApplyWritesIntoStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.json")
	if err := os.WriteFile(path, []byte(`[{"id":"a","category":"Fun Match","name":"Alpha"}]`), 0o600); err != nil {
		t.Fatalf("write roster: %v", err)
	}

	ms := store.NewMemoryStore()
	n, err := Apply(context.Background(), ms, path)
	if err != nil || n != 1 {
		t.Fatalf("expected 1 team written, got %d err=%v", n, err)
	}
	got, _ := ms.ListTeams(context.Background())
	if len(got) != 1 || got[0].Name != "Alpha" {
		t.Fatalf("unexpected teams %+v", got)
	}
}

func TestApplyMissingFile(t *testing.T) {
	if _, err := Apply(context.Background(), store.NewMemoryStore(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing roster")
	}
}
