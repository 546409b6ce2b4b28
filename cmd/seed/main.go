// Command seed loads a JSON team roster into the configured store.
//
//	seed -file teams.json
//
// The file holds an array of {"id", "category", "name"} objects; missing ids are generated.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/badminton-draw-service/internal/config"
	"github.com/preston-bernstein/badminton-draw-service/internal/logging"
	"github.com/preston-bernstein/badminton-draw-service/internal/seed"
	"github.com/preston-bernstein/badminton-draw-service/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	file := flag.String("file", cfg.Database.SeedFile, "path to the JSON roster")
	flag.Parse()

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "badminton-draw-seed",
	})

	n, err := run(context.Background(), cfg.Database, *file)
	if err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
	logger.Info("teams seeded", logging.FieldCount, n)
}

func run(ctx context.Context, db config.DatabaseConfig, file string) (int, error) {
	if strings.TrimSpace(file) == "" {
		return 0, fmt.Errorf("a roster file is required (-file or SEED_TEAMS_FILE)")
	}
	driver := strings.ToLower(strings.TrimSpace(db.Driver))
	if driver != store.DriverPostgres && driver != store.DriverSQLite {
		return 0, fmt.Errorf("%w: seeding needs a SQL database, got %q", store.ErrUnsupportedDriver, db.Driver)
	}
	if db.AutoMigrate {
		if _, err := store.Migrate(driver, db.URL); err != nil {
			return 0, err
		}
	}

	s, err := store.OpenSQL(ctx, driver, db.URL, db.MaxOpenConns)
	if err != nil {
		return 0, err
	}
	defer s.Close()

	return seed.Apply(ctx, s, file)
}
