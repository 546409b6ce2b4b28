package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/preston-bernstein/badminton-draw-service/internal/domain/draws"
	"github.com/preston-bernstein/badminton-draw-service/internal/domain/teams"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// SQLStore reads teams and records assignments in Postgres or SQLite.
type SQLStore struct {
	db     *sql.DB
	driver string
}

// OpenSQL opens and pings a database for the given driver.
func OpenSQL(ctx context.Context, driver, dsn string, maxOpenConns int) (*SQLStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("database url is required for %s", driver)
	}
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", driver, err)
	}
	if driver == DriverSQLite {
		// SQLite serializes writers; a single connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	} else if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s db: %w", driver, err)
	}
	return NewSQLStore(db, driver), nil
}

// NewSQLStore wraps an existing handle.
func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

// ListTeams returns every team ordered by category and name.
func (s *SQLStore) ListTeams(ctx context.Context) ([]teams.Team, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, category, name FROM teams ORDER BY category, name, id`)
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	defer rows.Close()

	var result []teams.Team
	for rows.Next() {
		var t teams.Team
		if err := rows.Scan(&t.ID, &t.Category, &t.Name); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}
	return result, nil
}

// ListAssignments returns all assignments ordered by number.
func (s *SQLStore) ListAssignments(ctx context.Context) ([]draws.Assignment, error) {
	return s.queryAssignments(ctx, `SELECT team_id, random_number FROM generated_numbers ORDER BY random_number, team_id`)
}

// AssignmentsByNumber returns every assignment holding number, across all categories.
func (s *SQLStore) AssignmentsByNumber(ctx context.Context, number int) ([]draws.Assignment, error) {
	return s.queryAssignments(ctx, `SELECT team_id, random_number FROM generated_numbers WHERE random_number = ? ORDER BY team_id`, number)
}

// InsertAssignment stores a new assignment. A second number for the same team fails
// with ErrDuplicateAssignment.
func (s *SQLStore) InsertAssignment(ctx context.Context, a draws.Assignment) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`INSERT INTO generated_numbers (team_id, random_number) VALUES (?, ?)`), a.TeamID, a.Number)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateAssignment
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// UpsertTeams inserts teams, replacing category and name for existing ids.
func (s *SQLStore) UpsertTeams(ctx context.Context, items []teams.Team) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := s.rebind(`INSERT INTO teams (id, category, name) VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET category = excluded.category, name = excluded.name`)
	for _, t := range items {
		if _, err := tx.ExecContext(ctx, query, t.ID, t.Category, t.Name); err != nil {
			return fmt.Errorf("upsert team %s: %w", t.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit teams: %w", err)
	}
	return nil
}

// Ping checks the database connection.
func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database handle.
func (s *SQLStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLStore) queryAssignments(ctx context.Context, query string, args ...any) ([]draws.Assignment, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query assignments: %w", err)
	}
	defer rows.Close()

	var result []draws.Assignment
	for rows.Next() {
		var a draws.Assignment
		if err := rows.Scan(&a.TeamID, &a.Number); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignments: %w", err)
	}
	return result, nil
}

// rebind rewrites ? placeholders to $n for Postgres. Queries never contain literal '?'.
func (s *SQLStore) rebind(query string) string {
	if s.driver != DriverPostgres || !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var liteErr *msqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		return code == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
