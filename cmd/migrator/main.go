// Command migrator applies the embedded schema migrations to a SQL database.
package main

import (
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/badminton-draw-service/internal/config"
	"github.com/preston-bernstein/badminton-draw-service/internal/logging"
	"github.com/preston-bernstein/badminton-draw-service/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	driver := flag.String("driver", cfg.Database.Driver, "database driver (postgres or sqlite)")
	dsn := flag.String("dsn", cfg.Database.URL, "database connection string")
	flag.Parse()

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "badminton-draw-migrator",
	})

	if err := run(strings.ToLower(*driver), *dsn); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
	logger.Info("migrations up to date", "driver", *driver)
}

func run(driver, dsn string) error {
	if strings.TrimSpace(dsn) == "" {
		return errors.New("a database connection string is required (-dsn or DATABASE_URL)")
	}
	_, err := store.Migrate(driver, dsn)
	return err
}
