package sqlstore

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/aanand-mishra/student-records-api/internal/config"
)

// One directory per driver; both must define the same version numbers.
//
//go:embed migrations/sqlite3/*.sql migrations/pgx/*.sql
var migrationsFS embed.FS

// RunMigrations applies all pending migrations for driver. It is safe to
// call on every startup; already-applied migrations are skipped.
func RunMigrations(db *sql.DB, driver string) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("RunMigrations: source: %w", err)
	}

	var (
		dbDriver database.Driver
		dbName   string
	)
	switch driver {
	case config.DriverSQLite:
		dbDriver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
		dbName = "sqlite3"
	case config.DriverPostgres:
		dbDriver, err = migratepgx.WithInstance(db, &migratepgx.Config{})
		dbName = "pgx5"
	default:
		return fmt.Errorf("RunMigrations: unsupported driver %q", driver)
	}
	if err != nil {
		return fmt.Errorf("RunMigrations: db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, dbName, dbDriver)
	if err != nil {
		return fmt.Errorf("RunMigrations: migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("RunMigrations: up: %w", err)
	}

	return nil
}
