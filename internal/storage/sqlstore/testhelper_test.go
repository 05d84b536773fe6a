package sqlstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-records-api/internal/config"
	"github.com/aanand-mishra/student-records-api/internal/types"
)

// setupTestStore opens a migrated SQLite database in a per-test temp dir.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(config.DriverSQLite, SQLiteDSN(path), 1)
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	return store
}

// setupMockStore wires a Store to go-sqlmock for failure-path tests.
func setupMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return newStore(sqlx.NewDb(db, config.DriverSQLite), config.DriverSQLite), mock
}

var baseTime = time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)

func newStudent(first, last, email, course string, age int) types.Student {
	return types.Student{
		FirstName:        first,
		LastName:         last,
		Email:            email,
		Course:           course,
		Age:              age,
		RegistrationDate: baseTime,
		LastModifiedDate: baseTime,
	}
}

func sessionFixture() types.Session {
	return types.Session{
		ID:        "sess-fixture",
		Email:     "admin@test.com",
		CreatedAt: baseTime,
		ExpiresAt: baseTime.Add(time.Hour),
	}
}
