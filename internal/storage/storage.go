// Package storage defines the contracts that any database backend must
// satisfy to work with this application.
//
// Services depend only on these interfaces. The sqlstore package provides
// the SQL implementation (SQLite or PostgreSQL) and redisstore provides an
// alternative home for sessions.
package storage

import (
	"context"
	"errors"

	"github.com/aanand-mishra/student-records-api/internal/types"
)

// Sentinel errors returned by every implementation. Callers match them
// with errors.Is; implementations may wrap them with extra context.
var (
	// ErrNotFound means the addressed row does not exist.
	ErrNotFound = errors.New("storage: record not found")

	// ErrEmailTaken means a write hit the store's email uniqueness
	// constraint. It is the authoritative answer when two writers race
	// on the same address.
	ErrEmailTaken = errors.New("storage: email already taken")
)

// StudentStore is the Record Store contract.
type StudentStore interface {
	// CreateStudent inserts a new row and returns the id assigned by the
	// store. The ID field of s is ignored.
	CreateStudent(ctx context.Context, s types.Student) (int64, error)

	// GetStudentByID returns ErrNotFound when no row has this id.
	GetStudentByID(ctx context.Context, id int64) (types.Student, error)

	// GetStudentByEmail returns ErrNotFound when no row holds this email.
	GetStudentByEmail(ctx context.Context, email string) (types.Student, error)

	// GetStudents returns every row. Returns an empty slice, never nil.
	GetStudents(ctx context.Context) ([]types.Student, error)

	// UpdateStudent replaces every mutable column of the row with s.ID.
	// RegistrationDate is never written. Returns ErrNotFound when the row
	// is gone and ErrEmailTaken on a uniqueness violation.
	UpdateStudent(ctx context.Context, s types.Student) error

	// DeleteStudentByID returns ErrNotFound when nothing was deleted.
	DeleteStudentByID(ctx context.Context, id int64) error

	StudentExists(ctx context.Context, id int64) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	// GetStudentsByCourse matches course case-insensitively.
	GetStudentsByCourse(ctx context.Context, course string) ([]types.Student, error)

	// GetStudentsByAgeRange matches minAge <= age <= maxAge.
	GetStudentsByAgeRange(ctx context.Context, minAge, maxAge int) ([]types.Student, error)

	// GetStudentsByName matches both names case-insensitively.
	GetStudentsByName(ctx context.Context, firstName, lastName string) ([]types.Student, error)

	// GetStudentsByCourseAndMinAge matches course exactly and age >= minAge.
	GetStudentsByCourseAndMinAge(ctx context.Context, course string, minAge int) ([]types.Student, error)

	// GetDistinctCourses returns each course value once (case-sensitive).
	GetDistinctCourses(ctx context.Context) ([]string, error)

	// CountStudentsByCourse matches course exactly (case-sensitive).
	CountStudentsByCourse(ctx context.Context, course string) (int64, error)
}

// AdminStore is the Admin Store contract.
type AdminStore interface {
	// CreateAdmin returns ErrEmailTaken when the email is registered.
	CreateAdmin(ctx context.Context, a types.Admin) error

	// GetAdminByEmail returns ErrNotFound when the email is unknown.
	GetAdminByEmail(ctx context.Context, email string) (types.Admin, error)

	AdminExists(ctx context.Context, email string) (bool, error)
}

// SessionStore holds server-side login sessions.
type SessionStore interface {
	SaveSession(ctx context.Context, s types.Session) error

	// GetSession returns ErrNotFound for unknown or expired sessions.
	GetSession(ctx context.Context, id string) (types.Session, error)

	// DeleteSession is idempotent: deleting an unknown id is not an error.
	DeleteSession(ctx context.Context, id string) error
}

// Storage is everything the SQL backend provides.
type Storage interface {
	StudentStore
	AdminStore
	SessionStore
	Close() error
}
