package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	appdraws "github.com/preston-bernstein/badminton-draw-service/internal/app/draws"
	"github.com/preston-bernstein/badminton-draw-service/internal/config"
	"github.com/preston-bernstein/badminton-draw-service/internal/seed"
	"github.com/preston-bernstein/badminton-draw-service/internal/store"
)

// dataStore is what the server needs from persistence: the draw reads and
// inserts, roster seeding, readiness and cleanup.
type dataStore interface {
	appdraws.Store
	seed.Writer
	Ping(ctx context.Context) error
	Close() error
}

// openStore picks the store driver, runs migrations for SQL drivers and loads the
// optional seed roster.
func openStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (dataStore, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	var ds dataStore
	switch driver {
	case "", store.DriverMemory:
		driver = store.DriverMemory
		ds = store.NewMemoryStore()
	case store.DriverPostgres, store.DriverSQLite:
		if strings.TrimSpace(cfg.URL) == "" {
			return nil, errors.New("DATABASE_URL is required for driver " + driver)
		}
		if cfg.AutoMigrate {
			applied, err := store.Migrate(driver, cfg.URL)
			if err != nil {
				return nil, fmt.Errorf("migrate %s: %w", driver, err)
			}
			if logger != nil {
				logger.Info("database migrations checked", slog.String("driver", driver), slog.Bool("applied", applied))
			}
		}
		sqlStore, err := store.OpenSQL(ctx, driver, cfg.URL, cfg.MaxOpenConns)
		if err != nil {
			return nil, err
		}
		ds = sqlStore
	default:
		return nil, fmt.Errorf("%w: %s", store.ErrUnsupportedDriver, cfg.Driver)
	}

	if cfg.SeedFile != "" {
		n, err := seed.Apply(ctx, ds, cfg.SeedFile)
		if err != nil {
			_ = ds.Close()
			return nil, err
		}
		if logger != nil {
			logger.Info("seeded teams", slog.String("file", cfg.SeedFile), slog.Int("count", n))
		}
	}

	if logger != nil {
		logger.Info("store ready", slog.String("driver", driver))
	}
	return ds, nil
}
