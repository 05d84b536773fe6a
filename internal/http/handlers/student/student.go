// Package student contains all HTTP handlers related to the Student resource.
//
// HANDLER PATTERN USED HERE: THE CLOSURE / FACTORY PATTERN
// ────────────────────────────────────────────────────────────
// A router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// That signature has no room for extra parameters like a service.
// To inject dependencies we use a factory function that:
//  1. Accepts dependencies (the student Service)
//  2. Returns a function with the exact signature the router needs
//
//	r.Post("/", student.New(svc))
//	//          ^^^^^^^^^^^^^^^^
//	//   New(svc) is called ONCE at startup. The returned handler runs
//	//   on EVERY incoming request.
//
// Every route here sits behind middleware.RequireAdmin, so the admin
// identity is always present in the request context.
package student

//go:generate mockgen -source=student.go -destination=mock_service_test.go -package=student

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aanand-mishra/student-records-api/internal/logger"
	studentsvc "github.com/aanand-mishra/student-records-api/internal/service/student"
	"github.com/aanand-mishra/student-records-api/internal/session"
	"github.com/aanand-mishra/student-records-api/internal/types"
	"github.com/aanand-mishra/student-records-api/internal/utils/request"
	"github.com/aanand-mishra/student-records-api/internal/utils/response"
	"github.com/aanand-mishra/student-records-api/internal/validate"
)

// Service is the part of the student service the handlers use.
type Service interface {
	Create(ctx context.Context, actor string, in types.StudentInput) (types.StudentDTO, error)
	Get(ctx context.Context, actor string, id int64) (types.StudentDTO, error)
	List(ctx context.Context, actor string) ([]types.StudentDTO, error)
	Update(ctx context.Context, actor string, id int64, in types.StudentInput) (types.StudentDTO, error)
	Delete(ctx context.Context, actor string, id int64) error
	ListByCourse(ctx context.Context, actor, course string) ([]types.StudentDTO, error)
	ListByAgeRange(ctx context.Context, actor string, minAge, maxAge int) ([]types.StudentDTO, error)
	ListCourses(ctx context.Context, actor string) ([]string, error)
	CountByCourse(ctx context.Context, actor, course string) (int64, error)
	EmailExists(ctx context.Context, actor, email string) (bool, error)
	GetByEmail(ctx context.Context, actor, email string) (types.StudentDTO, error)
	SearchByName(ctx context.Context, actor, firstName, lastName string) ([]types.StudentDTO, error)
	ListByCourseAndMinAge(ctx context.Context, actor, course string, minAge int) ([]types.StudentDTO, error)
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/students
// Creates a new student from the JSON request body.
//
// Request body (JSON):
//
//	{ "firstName": "Rakesh", "lastName": "Kumar", "email": "rakesh@test.com",
//	  "course": "Physics", "age": 21 }
//
// Success response (201 Created): the new student.
//
// Error responses:
//
//	400 Bad Request  : empty body, malformed JSON, failed validation,
//	                   or email already registered
//	500 Internal     : database error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := actorFrom(r)
		logger.FromContext(r.Context()).Infow("creating a student", "actor", actor)

		var in types.StudentInput
		if err := request.DecodeJSON(w, r, &in); err != nil {
			_ = response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		created, err := svc.Create(r.Context(), actor, in)
		if err != nil {
			writeError(w, r, err)
			return
		}

		_ = response.WriteJSON(w, http.StatusCreated, created)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /api/students/{id}
//
// Error responses:
//
//	400 Bad Request  : id is not a valid integer
//	404 Not Found    : no student with this id
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		st, err := svc.Get(r.Context(), actorFrom(r), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		_ = response.WriteJSON(w, http.StatusOK, st)
	}
}

// GetList handles GET /api/students. Returns [] (not null) when empty.
func GetList(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		students, err := svc.List(r.Context(), actorFrom(r))
		if err != nil {
			writeError(w, r, err)
			return
		}

		_ = response.WriteJSON(w, http.StatusOK, students)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PUT /api/students/{id}
// Replaces ALL mutable fields of an existing student. The body has the
// same shape and rules as New.
//
// Error responses:
//
//	400 Bad Request  : invalid id, bad body, validation failure or
//	                   email held by another student
//	404 Not Found    : no student with this id
//
// ─────────────────────────────────────────────────────────────────────────────
func Update(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		actor := actorFrom(r)
		logger.FromContext(r.Context()).Infow("updating a student", "actor", actor, "studentId", id)

		var in types.StudentInput
		if err := request.DecodeJSON(w, r, &in); err != nil {
			_ = response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		updated, err := svc.Update(r.Context(), actor, id, in)
		if err != nil {
			writeError(w, r, err)
			return
		}

		_ = response.WriteJSON(w, http.StatusOK, updated)
	}
}

// Delete handles DELETE /api/students/{id}: 204 with no body, or 404.
func Delete(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		actor := actorFrom(r)
		logger.FromContext(r.Context()).Infow("deleting a student", "actor", actor, "studentId", id)

		if err := svc.Delete(r.Context(), actor, id); err != nil {
			writeError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListByCourse handles GET /api/students/course/{course}. Case-insensitive.
func ListByCourse(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		course, ok := pathCourse(w, r)
		if !ok {
			return
		}

		students, err := svc.ListByCourse(r.Context(), actorFrom(r), course)
		if err != nil {
			writeError(w, r, err)
			return
		}
		_ = response.WriteJSON(w, http.StatusOK, students)
	}
}

// ListByAgeRange handles GET /api/students/age?minAge=18&maxAge=25.
func ListByAgeRange(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		minAge, ok := queryInt(w, r, "minAge")
		if !ok {
			return
		}
		maxAge, ok := queryInt(w, r, "maxAge")
		if !ok {
			return
		}

		students, err := svc.ListByAgeRange(r.Context(), actorFrom(r), minAge, maxAge)
		if err != nil {
			writeError(w, r, err)
			return
		}
		_ = response.WriteJSON(w, http.StatusOK, students)
	}
}

// ListCourses handles GET /api/students/courses.
func ListCourses(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courses, err := svc.ListCourses(r.Context(), actorFrom(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		_ = response.WriteJSON(w, http.StatusOK, courses)
	}
}

// CountByCourse handles GET /api/students/course/{course}/count. The body
// is a bare JSON integer. Case-sensitive, unlike ListByCourse.
func CountByCourse(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		course, ok := pathCourse(w, r)
		if !ok {
			return
		}

		n, err := svc.CountByCourse(r.Context(), actorFrom(r), course)
		if err != nil {
			writeError(w, r, err)
			return
		}
		_ = response.WriteJSON(w, http.StatusOK, n)
	}
}

// EmailExists handles GET /api/students/email/exists?email=... with a
// bare JSON boolean.
func EmailExists(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := queryString(w, r, "email")
		if !ok {
			return
		}

		exists, err := svc.EmailExists(r.Context(), actorFrom(r), email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		_ = response.WriteJSON(w, http.StatusOK, exists)
	}
}

// GetByEmail handles GET /api/students/email?email=...
func GetByEmail(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, ok := queryString(w, r, "email")
		if !ok {
			return
		}

		st, err := svc.GetByEmail(r.Context(), actorFrom(r), email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		_ = response.WriteJSON(w, http.StatusOK, st)
	}
}

// Search handles GET /api/students/search?firstName=...&lastName=...
func Search(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		first, ok := queryString(w, r, "firstName")
		if !ok {
			return
		}
		last, ok := queryString(w, r, "lastName")
		if !ok {
			return
		}

		students, err := svc.SearchByName(r.Context(), actorFrom(r), first, last)
		if err != nil {
			writeError(w, r, err)
			return
		}
		_ = response.WriteJSON(w, http.StatusOK, students)
	}
}

// ListByCourseAndMinAge handles GET /api/students/course/{course}/min-age/{minAge}.
func ListByCourseAndMinAge(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		course, ok := pathCourse(w, r)
		if !ok {
			return
		}
		minAge, err := strconv.Atoi(chi.URLParam(r, "minAge"))
		if err != nil {
			_ = response.WriteJSON(w, http.StatusBadRequest,
				response.ErrorMessage("invalid minAge: must be an integer"))
			return
		}

		students, err := svc.ListByCourseAndMinAge(r.Context(), actorFrom(r), course, minAge)
		if err != nil {
			writeError(w, r, err)
			return
		}
		_ = response.WriteJSON(w, http.StatusOK, students)
	}
}

// ── helpers ─────────────────────────────────────────────────────────────────

// writeError maps service errors onto status codes. Anything unrecognised
// is a 500 whose detail only goes to the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		_ = response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(verr))
	case errors.Is(err, studentsvc.ErrDuplicateEmail):
		_ = response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
	case errors.Is(err, studentsvc.ErrNotFound):
		_ = response.WriteJSON(w, http.StatusNotFound, response.GeneralError(err))
	default:
		response.InternalError(w, r, err)
	}
}

func actorFrom(r *http.Request) string {
	id, _ := session.IdentityFromContext(r.Context())
	return id.Email
}

// pathID parses the {id} URL segment, writing a 400 when it is not an integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		_ = response.WriteJSON(w, http.StatusBadRequest,
			response.ErrorMessage("invalid id: must be an integer"))
		return 0, false
	}
	return id, true
}

// pathCourse returns the decoded {course} segment. chi hands back the
// escaped form whenever the request path needed escaping (AI%2FML).
func pathCourse(w http.ResponseWriter, r *http.Request) (string, bool) {
	course, err := url.PathUnescape(chi.URLParam(r, "course"))
	if err != nil {
		_ = response.WriteJSON(w, http.StatusBadRequest,
			response.ErrorMessage("invalid course: malformed escape"))
		return "", false
	}
	return course, true
}

func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw, ok := queryString(w, r, name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		_ = response.WriteJSON(w, http.StatusBadRequest,
			response.ErrorMessage(fmt.Sprintf("invalid %s: must be an integer", name)))
		return 0, false
	}
	return n, true
}

func queryString(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		_ = response.WriteJSON(w, http.StatusBadRequest,
			response.ErrorMessage(fmt.Sprintf("query parameter %s is required", name)))
		return "", false
	}
	return v, true
}
