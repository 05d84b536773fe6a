// Package student implements the student record rules: field validation,
// email uniqueness, not-found semantics and the registration/modification
// timestamps.
//
// Every operation takes the email of the admin performing it. The HTTP
// layer gets that from the resolved session; the service only logs it.
package student

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aanand-mishra/student-records-api/internal/logger"
	"github.com/aanand-mishra/student-records-api/internal/metrics"
	"github.com/aanand-mishra/student-records-api/internal/storage"
	"github.com/aanand-mishra/student-records-api/internal/types"
	"github.com/aanand-mishra/student-records-api/internal/validate"
)

// Service is safe for concurrent use; it holds no mutable state of its own.
type Service struct {
	store storage.StudentStore
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService returns a Service backed by store.
func NewService(store storage.StudentStore, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp is the clock reading stored on a row. Microsecond precision is
// what both SQL backends keep.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// Validate checks in against the field rules. It returns nil or a
// *validate.Error listing every failing field.
func Validate(in types.StudentInput) error {
	return validate.Struct(in)
}

// ─────────────────────────────────────────────────────────────────────────────
// Create validates in, rejects an email that is already registered and
// persists a new student with both timestamps set to the same instant.
//
// The EmailExists pre-check gives a clean error in the common case; the
// store's unique index still decides when two creates race.
// ─────────────────────────────────────────────────────────────────────────────
func (s *Service) Create(ctx context.Context, actor string, in types.StudentInput) (types.StudentDTO, error) {
	if err := Validate(in); err != nil {
		return types.StudentDTO{}, err
	}

	taken, err := s.store.EmailExists(ctx, in.Email)
	if err != nil {
		return types.StudentDTO{}, fmt.Errorf("Create: check email: %w", err)
	}
	if taken {
		return types.StudentDTO{}, &DuplicateEmailError{Email: in.Email}
	}

	now := s.timestamp()
	st := types.Student{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Course:           in.Course,
		Age:              *in.Age,
		RegistrationDate: now,
		LastModifiedDate: now,
	}

	id, err := s.store.CreateStudent(ctx, st)
	if err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			return types.StudentDTO{}, &DuplicateEmailError{Email: in.Email}
		}
		return types.StudentDTO{}, fmt.Errorf("Create: insert: %w", err)
	}
	st.ID = id

	metrics.RecordStudentMutation(metrics.OpCreate)
	logger.FromContext(ctx).Infow("student created", "actor", actor, "studentId", id)

	return st.DTO(), nil
}

// Get returns the student with id.
func (s *Service) Get(ctx context.Context, actor string, id int64) (types.StudentDTO, error) {
	st, err := s.store.GetStudentByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.StudentDTO{}, &NotFoundError{ID: id}
		}
		return types.StudentDTO{}, fmt.Errorf("Get: %w", err)
	}

	logger.FromContext(ctx).Debugw("student fetched", "actor", actor, "studentId", id)
	return st.DTO(), nil
}

// List returns every student in store order.
func (s *Service) List(ctx context.Context, actor string) ([]types.StudentDTO, error) {
	students, err := s.store.GetStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}

	logger.FromContext(ctx).Debugw("students listed", "actor", actor, "count", len(students))
	return types.StudentDTOs(students), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Update replaces every mutable field of student id.
//
// The uniqueness check only runs when the email actually changes, so
// re-submitting a student's own email is never a conflict. RegistrationDate
// and ID are carried over from the stored row.
// ─────────────────────────────────────────────────────────────────────────────
func (s *Service) Update(ctx context.Context, actor string, id int64, in types.StudentInput) (types.StudentDTO, error) {
	if err := Validate(in); err != nil {
		return types.StudentDTO{}, err
	}

	st, err := s.store.GetStudentByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.StudentDTO{}, &NotFoundError{ID: id}
		}
		return types.StudentDTO{}, fmt.Errorf("Update: load: %w", err)
	}

	if in.Email != st.Email {
		taken, err := s.store.EmailExists(ctx, in.Email)
		if err != nil {
			return types.StudentDTO{}, fmt.Errorf("Update: check email: %w", err)
		}
		if taken {
			return types.StudentDTO{}, &DuplicateEmailError{Email: in.Email}
		}
	}

	st.FirstName = in.FirstName
	st.LastName = in.LastName
	st.Email = in.Email
	st.Course = in.Course
	st.Age = *in.Age
	st.LastModifiedDate = s.timestamp()

	if err := s.store.UpdateStudent(ctx, st); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return types.StudentDTO{}, &NotFoundError{ID: id}
		case errors.Is(err, storage.ErrEmailTaken):
			return types.StudentDTO{}, &DuplicateEmailError{Email: in.Email}
		}
		return types.StudentDTO{}, fmt.Errorf("Update: write: %w", err)
	}

	metrics.RecordStudentMutation(metrics.OpUpdate)
	logger.FromContext(ctx).Infow("student updated", "actor", actor, "studentId", id)

	return st.DTO(), nil
}

// Delete removes student id permanently.
func (s *Service) Delete(ctx context.Context, actor string, id int64) error {
	ok, err := s.store.StudentExists(ctx, id)
	if err != nil {
		return fmt.Errorf("Delete: check: %w", err)
	}
	if !ok {
		return &NotFoundError{ID: id}
	}

	if err := s.store.DeleteStudentByID(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &NotFoundError{ID: id}
		}
		return fmt.Errorf("Delete: %w", err)
	}

	metrics.RecordStudentMutation(metrics.OpDelete)
	logger.FromContext(ctx).Infow("student deleted", "actor", actor, "studentId", id)

	return nil
}

// ListByCourse matches course ignoring case.
func (s *Service) ListByCourse(ctx context.Context, actor, course string) ([]types.StudentDTO, error) {
	students, err := s.store.GetStudentsByCourse(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("ListByCourse: %w", err)
	}
	return types.StudentDTOs(students), nil
}

// ListByAgeRange returns students with minAge <= age <= maxAge. A reversed
// range matches nothing.
func (s *Service) ListByAgeRange(ctx context.Context, actor string, minAge, maxAge int) ([]types.StudentDTO, error) {
	students, err := s.store.GetStudentsByAgeRange(ctx, minAge, maxAge)
	if err != nil {
		return nil, fmt.Errorf("ListByAgeRange: %w", err)
	}
	return types.StudentDTOs(students), nil
}

// ListCourses returns each distinct course once, sorted by byte order.
// Distinctness is case-sensitive: "CS" and "cs" are two courses.
func (s *Service) ListCourses(ctx context.Context, actor string) ([]string, error) {
	courses, err := s.store.GetDistinctCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListCourses: %w", err)
	}

	// collation differs between sqlite and postgres
	sort.Strings(courses)

	if courses == nil {
		courses = []string{}
	}
	return courses, nil
}

// CountByCourse counts exact, case-sensitive matches. Note that
// ListByCourse ignores case; the two deliberately disagree.
func (s *Service) CountByCourse(ctx context.Context, actor, course string) (int64, error) {
	n, err := s.store.CountStudentsByCourse(ctx, course)
	if err != nil {
		return 0, fmt.Errorf("CountByCourse: %w", err)
	}
	return n, nil
}

// EmailExists reports whether any student holds email.
func (s *Service) EmailExists(ctx context.Context, actor, email string) (bool, error) {
	ok, err := s.store.EmailExists(ctx, email)
	if err != nil {
		return false, fmt.Errorf("EmailExists: %w", err)
	}
	return ok, nil
}

// GetByEmail returns the student holding email.
func (s *Service) GetByEmail(ctx context.Context, actor, email string) (types.StudentDTO, error) {
	st, err := s.store.GetStudentByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.StudentDTO{}, &NotFoundError{Email: email}
		}
		return types.StudentDTO{}, fmt.Errorf("GetByEmail: %w", err)
	}
	return st.DTO(), nil
}

// SearchByName matches first and last name ignoring case.
func (s *Service) SearchByName(ctx context.Context, actor, firstName, lastName string) ([]types.StudentDTO, error) {
	students, err := s.store.GetStudentsByName(ctx, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("SearchByName: %w", err)
	}
	return types.StudentDTOs(students), nil
}

// ListByCourseAndMinAge matches course exactly and age >= minAge.
func (s *Service) ListByCourseAndMinAge(ctx context.Context, actor, course string, minAge int) ([]types.StudentDTO, error) {
	students, err := s.store.GetStudentsByCourseAndMinAge(ctx, course, minAge)
	if err != nil {
		return nil, fmt.Errorf("ListByCourseAndMinAge: %w", err)
	}
	return types.StudentDTOs(students), nil
}
