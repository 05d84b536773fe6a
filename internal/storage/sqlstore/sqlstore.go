// Package sqlstore implements the storage interfaces on top of
// database/sql through sqlx.
//
// Two drivers are supported:
//
//   - sqlite3 (github.com/mattn/go-sqlite3) is a single file on disk, no
//     server process. The default for local development.
//   - pgx (github.com/jackc/pgx/v5/stdlib) for PostgreSQL.
//
// Queries are written once with ? placeholders and rebound to the
// driver's placeholder style by sqlx. SQLite's built-in lower() only folds
// ASCII, so SQLite connections are opened through a driver that registers
// a Unicode-aware ulower() used for every case-insensitive comparison. The schema lives in embedded
// golang-migrate migrations, one directory per driver.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3" // also registers the "sqlite3" driver

	"github.com/aanand-mishra/student-records-api/internal/config"
	"github.com/aanand-mishra/student-records-api/internal/storage"
)

// Compile-time interface satisfaction check.
var _ storage.Storage = (*Store)(nil)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// sqliteDriverName is go-sqlite3 with ulower() registered on every
// connection.
const sqliteDriverName = "sqlite3_ulower"

func init() {
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("ulower", strings.ToLower, true)
		},
	})
	sqlx.BindDriver(sqliteDriverName, sqlx.QUESTION)
}

// Store is the SQL implementation of storage.Storage.
// The embedded *sqlx.DB is a connection pool and is safe for concurrent
// use by multiple goroutines.
type Store struct {
	db  *sqlx.DB
	now func() time.Time

	// lower is the SQL function used for case-insensitive matches.
	lower string
}

// New opens the database described by cfg, verifies the connection and
// applies pending migrations.
func New(cfg *config.Config) (*Store, error) {
	driver := cfg.Storage.Driver
	dsn := cfg.Storage.DSN
	maxOpen := cfg.Storage.MaxOpenConns

	if driver == config.DriverSQLite {
		if dir := filepath.Dir(cfg.StoragePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("sqlstore.New: create storage dir: %w", err)
			}
		}
		dsn = SQLiteDSN(cfg.StoragePath)
		// SQLite allows one writer at a time; a single connection turns
		// "database is locked" errors into queueing inside database/sql.
		maxOpen = 1
	}

	return Open(driver, dsn, maxOpen)
}

// Open connects with an explicit driver and DSN and runs migrations.
func Open(driver, dsn string, maxOpenConns int) (*Store, error) {
	sqlDriver := driver
	if driver == config.DriverSQLite {
		sqlDriver = sqliteDriverName
	}

	db, err := sqlx.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore.Open: open db: %w", err)
	}
	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlstore.Open: ping: %w", err)
	}

	if err := RunMigrations(db.DB, driver); err != nil {
		_ = db.Close()
		return nil, err
	}

	return newStore(db, driver), nil
}

// SQLiteDSN turns a file path into a go-sqlite3 DSN with foreign keys on
// and a busy timeout.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
}

func newStore(db *sqlx.DB, driver string) *Store {
	lower := "LOWER"
	if driver == config.DriverSQLite {
		lower = "ulower"
	}
	return &Store{
		db:    db,
		now:   func() time.Time { return time.Now().UTC() },
		lower: lower,
	}
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the pool for health checks and tests.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Ping checks the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// q rebinds a ?-placeholder query for the active driver.
func (s *Store) q(query string) string {
	return s.db.Rebind(query)
}

// foldEq renders "column equals ? ignoring case" for the active driver.
func (s *Store) foldEq(column string) string {
	return s.lower + "(" + column + ") = " + s.lower + "(?)"
}

// isUniqueViolation reports whether err came from a UNIQUE or PRIMARY KEY
// constraint in either supported driver.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}
