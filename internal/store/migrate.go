package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/preston-bernstein/badminton-draw-service/internal/store/migrations"
)

// Migrate applies the embedded schema to the database at dsn. It uses its own
// connection, which golang-migrate closes when done.
// It reports whether any migration was applied.
func Migrate(driver, dsn string) (bool, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return false, fmt.Errorf("%w: %s", ErrUnsupportedDriver, driver)
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return false, fmt.Errorf("load migrations: %w", err)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return false, fmt.Errorf("open %s db: %w", driver, err)
	}

	var target database.Driver
	switch driver {
	case DriverPostgres:
		target, err = migratepg.WithInstance(db, &migratepg.Config{})
	case DriverSQLite:
		target, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	}
	if err != nil {
		_ = db.Close()
		return false, fmt.Errorf("prepare %s migrator: %w", driver, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		_ = db.Close()
		return false, fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		_, _ = m.Close()
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return false, nil
		}
		return false, fmt.Errorf("apply migrations: %w", err)
	}
	return true, nil
}
