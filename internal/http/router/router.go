// Package router builds the application's route table.
package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/aanand-mishra/student-records-api/internal/http/handlers/admin"
	"github.com/aanand-mishra/student-records-api/internal/http/handlers/student"
	"github.com/aanand-mishra/student-records-api/internal/http/middleware"
	"github.com/aanand-mishra/student-records-api/internal/metrics"
	"github.com/aanand-mishra/student-records-api/internal/utils/response"
)

// SessionManager is what both the admin endpoints and the session gate
// need from session.Manager.
type SessionManager interface {
	admin.Sessions
	middleware.Resolver
}

// Deps are the collaborators the routes are built from.
type Deps struct {
	Students       student.Service
	Admins         admin.Authenticator
	Sessions       SessionManager
	Cookie         admin.Cookie
	AllowedOrigins []string

	// Ping checks the database for /healthz. Optional.
	Ping func(ctx context.Context) error

	Log *zap.SugaredLogger
}

// ─────────────────────────────────────────────────────────────────────────────
// New returns the HTTP handler for the whole API.
//
// Route table:
//
//	POST   /api/admin/login                               public
//	POST   /api/admin/logout                              public
//	GET    /api/admin/check                               public
//	POST   /api/admin/create                              public
//	POST   /api/students                                  admin
//	GET    /api/students                                  admin
//	GET    /api/students/{id}                             admin
//	PUT    /api/students/{id}                             admin
//	DELETE /api/students/{id}                             admin
//	GET    /api/students/course/{course}                  admin
//	GET    /api/students/course/{course}/count            admin
//	GET    /api/students/course/{course}/min-age/{minAge} admin
//	GET    /api/students/age?minAge=&maxAge=              admin
//	GET    /api/students/courses                          admin
//	GET    /api/students/email/exists?email=              admin
//	GET    /api/students/email?email=                     admin
//	GET    /api/students/search?firstName=&lastName=      admin
//	GET    /healthz                                       public
//	GET    /metrics                                       public
//
// ─────────────────────────────────────────────────────────────────────────────
func New(d Deps) http.Handler {
	log := d.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.InstrumentHandler)
	r.Use(middleware.CORS(d.AllowedOrigins))

	r.Get("/healthz", health(d.Ping))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", admin.Login(d.Admins, d.Sessions, d.Cookie))
		r.Post("/logout", admin.Logout(d.Sessions, d.Cookie))
		r.Get("/check", admin.Check(d.Sessions, d.Cookie))
		r.Post("/create", admin.Create(d.Admins))
	})

	r.Route("/api/students", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(d.Sessions, d.Cookie.Name))

		r.Post("/", student.New(d.Students))
		r.Get("/", student.GetList(d.Students))

		r.Get("/courses", student.ListCourses(d.Students))
		r.Get("/age", student.ListByAgeRange(d.Students))
		r.Get("/email", student.GetByEmail(d.Students))
		r.Get("/email/exists", student.EmailExists(d.Students))
		r.Get("/search", student.Search(d.Students))

		r.Get("/course/{course}", student.ListByCourse(d.Students))
		r.Get("/course/{course}/count", student.CountByCourse(d.Students))
		r.Get("/course/{course}/min-age/{minAge}", student.ListByCourseAndMinAge(d.Students))

		r.Get("/{id}", student.GetByID(d.Students))
		r.Put("/{id}", student.Update(d.Students))
		r.Delete("/{id}", student.Delete(d.Students))
	})

	return r
}

func health(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			if err := ping(r.Context()); err != nil {
				response.InternalError(w, r, err)
				return
			}
		}
		_ = response.WriteJSON(w, http.StatusOK, map[string]string{"status": response.StatusOK})
	}
}
