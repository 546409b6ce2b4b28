// Package seed loads team rosters from JSON files into a store.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/preston-bernstein/badminton-draw-service/internal/domain/teams"
)

// ErrInvalidTeam is returned for roster entries without a name or category.
var ErrInvalidTeam = errors.New("team requires a name and category")

// Writer persists teams; both stores implement it.
type Writer interface {
	UpsertTeams(ctx context.Context, items []teams.Team) error
}

// rosterNamespace scopes the name-based UUIDs derived for id-less roster entries.
var rosterNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:badminton-draw-service:teams"))

// TeamID derives the stable id used for a roster entry that has none.
func TeamID(category, name string) string {
	return uuid.NewSHA1(rosterNamespace, []byte(category+"\x00"+name)).String()
}

// Decode reads a JSON array of teams. Entries without an id get one derived from
// their category and name, so loading the same roster again upserts the same rows.
func Decode(r io.Reader) ([]teams.Team, error) {
	var items []teams.Team
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	for i := range items {
		items[i].Name = strings.TrimSpace(items[i].Name)
		items[i].Category = strings.TrimSpace(items[i].Category)
		if items[i].Name == "" || items[i].Category == "" {
			return nil, fmt.Errorf("roster entry %d: %w", i, ErrInvalidTeam)
		}
		if strings.TrimSpace(items[i].ID) == "" {
			items[i].ID = TeamID(items[i].Category, items[i].Name)
		}
	}
	return items, nil
}

// LoadFile decodes the roster at path.
func LoadFile(path string) ([]teams.Team, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Apply loads the roster at path into w and returns how many teams were written.
func Apply(ctx context.Context, w Writer, path string) (int, error) {
	items, err := LoadFile(path)
	if err != nil {
		return 0, err
	}
	if err := w.UpsertTeams(ctx, items); err != nil {
		return 0, fmt.Errorf("upsert teams: %w", err)
	}
	return len(items), nil
}
