// Package admin holds the login, logout, session check and admin creation
// endpoints. None of them require an existing session.
package admin

//go:generate mockgen -source=admin.go -destination=mock_admin_test.go -package=admin

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aanand-mishra/student-records-api/internal/logger"
	adminsvc "github.com/aanand-mishra/student-records-api/internal/service/admin"
	"github.com/aanand-mishra/student-records-api/internal/session"
	"github.com/aanand-mishra/student-records-api/internal/types"
	"github.com/aanand-mishra/student-records-api/internal/utils/request"
	"github.com/aanand-mishra/student-records-api/internal/utils/response"
	"github.com/aanand-mishra/student-records-api/internal/validate"
)

// Response messages.
const (
	MsgLoginSuccessful  = "Login successful"
	MsgLogoutSuccessful = "Logout successful"
	MsgLoggedIn         = "Admin is logged in"
	MsgCreated          = "Admin created successfully"
	MsgInvalidLogin     = "Invalid email or password"
	MsgNotLoggedIn      = "Not logged in"
)

// Authenticator checks and creates admin credentials.
type Authenticator interface {
	Validate(ctx context.Context, email, password string) (bool, error)
	Create(ctx context.Context, email, password string) (types.Admin, error)
}

// Sessions opens, resolves and ends admin sessions.
type Sessions interface {
	Start(ctx context.Context, email string) (string, time.Time, error)
	Resolve(ctx context.Context, token string) (session.Identity, error)
	End(ctx context.Context, token string) error
}

// Cookie describes the session cookie.
type Cookie struct {
	Name   string
	Secure bool
}

func (c Cookie) set(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c Cookie) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Login handles POST /api/admin/login
//
// Request body (JSON):
//
//	{ "email": "admin@test.com", "password": "secret" }
//
// On success the session token is set as an HttpOnly cookie and the body is
//
//	{ "message": "Login successful", "email": "admin@test.com" }
//
// Wrong or missing credentials give 400 "Invalid email or password".
// ─────────────────────────────────────────────────────────────────────────────
func Login(auth Authenticator, sessions Sessions, cookie Cookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds types.AdminCredentials
		if err := request.DecodeJSON(w, r, &creds); err != nil {
			_ = response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		ok, err := auth.Validate(r.Context(), creds.Email, creds.Password)
		if err != nil {
			response.InternalError(w, r, err)
			return
		}
		if !ok {
			logger.FromContext(r.Context()).Infow("admin login rejected", "email", creds.Email)
			_ = response.WriteJSON(w, http.StatusBadRequest, response.ErrorMessage(MsgInvalidLogin))
			return
		}

		token, expires, err := sessions.Start(r.Context(), creds.Email)
		if err != nil {
			response.InternalError(w, r, err)
			return
		}

		cookie.set(w, token, expires)
		logger.FromContext(r.Context()).Infow("admin logged in", "email", creds.Email)

		_ = response.WriteJSON(w, http.StatusOK, response.Message{Message: MsgLoginSuccessful, Email: creds.Email})
	}
}

// Logout handles POST /api/admin/logout. It always succeeds for the
// client: without a session there is nothing to end.
func Logout(sessions Sessions, cookie Cookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.End(r.Context(), session.TokenFromRequest(r, cookie.Name)); err != nil {
			response.InternalError(w, r, err)
			return
		}

		cookie.clear(w)
		_ = response.WriteJSON(w, http.StatusOK, response.Message{Message: MsgLogoutSuccessful})
	}
}

// Check handles GET /api/admin/check: 200 with the admin email, or 401.
func Check(sessions Sessions, cookie Cookie) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessions.Resolve(r.Context(), session.TokenFromRequest(r, cookie.Name))
		if err != nil {
			if errors.Is(err, session.ErrInvalidSession) {
				_ = response.WriteJSON(w, http.StatusUnauthorized, response.ErrorMessage(MsgNotLoggedIn))
				return
			}
			response.InternalError(w, r, err)
			return
		}

		_ = response.WriteJSON(w, http.StatusOK, response.Message{Message: MsgLoggedIn, Email: id.Email})
	}
}

// Create handles POST /api/admin/create with the same body as Login.
func Create(auth Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds types.AdminCredentials
		if err := request.DecodeJSON(w, r, &creds); err != nil {
			_ = response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		a, err := auth.Create(r.Context(), creds.Email, creds.Password)
		if err != nil {
			var verr *validate.Error
			switch {
			case errors.As(err, &verr):
				_ = response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(verr))
			case errors.Is(err, adminsvc.ErrDuplicateEmail):
				_ = response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			default:
				response.InternalError(w, r, err)
			}
			return
		}

		_ = response.WriteJSON(w, http.StatusOK, response.Message{Message: MsgCreated, Email: a.Email})
	}
}
