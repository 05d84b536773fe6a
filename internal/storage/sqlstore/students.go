package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/student-records-api/internal/storage"
	"github.com/aanand-mishra/student-records-api/internal/types"
)

// Explicitly list columns (never SELECT *) so adding a column later
// cannot break struct scanning.
const studentColumns = `student_id, first_name, last_name, email, course, age,
	registration_date, last_modified_date`

// CreateStudent inserts a new row and returns the generated student_id.
//
// RETURNING works on both SQLite (3.35+) and PostgreSQL, which keeps a
// single code path; pgx does not implement LastInsertId.
func (s *Store) CreateStudent(ctx context.Context, st types.Student) (int64, error) {
	const query = `
		INSERT INTO students (first_name, last_name, email, course, age,
			registration_date, last_modified_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING student_id`

	var id int64
	err := s.db.QueryRowxContext(ctx, s.q(query),
		st.FirstName, st.LastName, st.Email, st.Course, st.Age,
		st.RegistrationDate, st.LastModifiedDate,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("CreateStudent: %w", storage.ErrEmailTaken)
		}
		return 0, fmt.Errorf("CreateStudent: insert: %w", err)
	}

	return id, nil
}

// GetStudentByID fetches exactly one row matched by primary key.
func (s *Store) GetStudentByID(ctx context.Context, id int64) (types.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = ? LIMIT 1`

	var st types.Student
	if err := s.db.GetContext(ctx, &st, s.q(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, fmt.Errorf("GetStudentByID %d: %w", id, storage.ErrNotFound)
		}
		return types.Student{}, fmt.Errorf("GetStudentByID: select: %w", err)
	}

	return st, nil
}

// GetStudentByEmail fetches the single row holding email.
func (s *Store) GetStudentByEmail(ctx context.Context, email string) (types.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = ? LIMIT 1`

	var st types.Student
	if err := s.db.GetContext(ctx, &st, s.q(query), email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, fmt.Errorf("GetStudentByEmail: %w", storage.ErrNotFound)
		}
		return types.Student{}, fmt.Errorf("GetStudentByEmail: select: %w", err)
	}

	return st, nil
}

// GetStudents returns all rows ordered by id.
func (s *Store) GetStudents(ctx context.Context) ([]types.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY student_id`
	return s.selectStudents(ctx, "GetStudents", query)
}

// UpdateStudent rewrites the mutable columns of the row with st.ID.
// registration_date is deliberately absent from the SET list.
func (s *Store) UpdateStudent(ctx context.Context, st types.Student) error {
	const query = `
		UPDATE students
		SET first_name = ?, last_name = ?, email = ?, course = ?, age = ?,
			last_modified_date = ?
		WHERE student_id = ?`

	res, err := s.db.ExecContext(ctx, s.q(query),
		st.FirstName, st.LastName, st.Email, st.Course, st.Age,
		st.LastModifiedDate, st.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("UpdateStudent: %w", storage.ErrEmailTaken)
		}
		return fmt.Errorf("UpdateStudent: exec: %w", err)
	}

	return requireAffected(res, "UpdateStudent", st.ID)
}

// DeleteStudentByID removes a row by primary key.
func (s *Store) DeleteStudentByID(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM students WHERE student_id = ?`), id)
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: exec: %w", err)
	}

	return requireAffected(res, "DeleteStudentByID", id)
}

// StudentExists reports whether a row with id exists.
func (s *Store) StudentExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, "StudentExists",
		`SELECT EXISTS (SELECT 1 FROM students WHERE student_id = ?)`, id)
}

// EmailExists reports whether any row holds email (exact match).
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, "EmailExists",
		`SELECT EXISTS (SELECT 1 FROM students WHERE email = ?)`, email)
}

// GetStudentsByCourse matches course ignoring case.
func (s *Store) GetStudentsByCourse(ctx context.Context, course string) ([]types.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students
		WHERE ` + s.foldEq("course") + ` ORDER BY student_id`
	return s.selectStudents(ctx, "GetStudentsByCourse", query, course)
}

// GetStudentsByAgeRange matches minAge <= age <= maxAge.
func (s *Store) GetStudentsByAgeRange(ctx context.Context, minAge, maxAge int) ([]types.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students
		WHERE age BETWEEN ? AND ? ORDER BY student_id`
	return s.selectStudents(ctx, "GetStudentsByAgeRange", query, minAge, maxAge)
}

// GetStudentsByName matches first and last name ignoring case.
func (s *Store) GetStudentsByName(ctx context.Context, firstName, lastName string) ([]types.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students
		WHERE ` + s.foldEq("first_name") + ` AND ` + s.foldEq("last_name") + `
		ORDER BY student_id`
	return s.selectStudents(ctx, "GetStudentsByName", query, firstName, lastName)
}

// GetStudentsByCourseAndMinAge matches course exactly and age >= minAge.
func (s *Store) GetStudentsByCourseAndMinAge(ctx context.Context, course string, minAge int) ([]types.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students
		WHERE course = ? AND age >= ? ORDER BY student_id`
	return s.selectStudents(ctx, "GetStudentsByCourseAndMinAge", query, course, minAge)
}

// GetDistinctCourses returns every course value once. Distinctness is
// case-sensitive: "CS" and "cs" are two courses.
func (s *Store) GetDistinctCourses(ctx context.Context) ([]string, error) {
	courses := make([]string, 0)
	if err := s.db.SelectContext(ctx, &courses,
		`SELECT DISTINCT course FROM students ORDER BY course`); err != nil {
		return nil, fmt.Errorf("GetDistinctCourses: select: %w", err)
	}
	return courses, nil
}

// CountStudentsByCourse counts rows whose course equals course exactly.
func (s *Store) CountStudentsByCourse(ctx context.Context, course string) (int64, error) {
	var n int64
	if err := s.db.GetContext(ctx, &n,
		s.q(`SELECT COUNT(*) FROM students WHERE course = ?`), course); err != nil {
		return 0, fmt.Errorf("CountStudentsByCourse: select: %w", err)
	}
	return n, nil
}

// selectStudents runs a multi-row query. Returns [] instead of nil so the
// JSON encoding is [] rather than null.
func (s *Store) selectStudents(ctx context.Context, op, query string, args ...any) ([]types.Student, error) {
	students := make([]types.Student, 0)
	if err := s.db.SelectContext(ctx, &students, s.q(query), args...); err != nil {
		return nil, fmt.Errorf("%s: select: %w", op, err)
	}
	return students, nil
}

func (s *Store) exists(ctx context.Context, op, query string, arg any) (bool, error) {
	var ok bool
	if err := s.db.GetContext(ctx, &ok, s.q(query), arg); err != nil {
		return false, fmt.Errorf("%s: select: %w", op, err)
	}
	return ok, nil
}

// requireAffected turns "zero rows touched" into storage.ErrNotFound.
func requireAffected(res sql.Result, op string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", op, id, storage.ErrNotFound)
	}
	return nil
}
