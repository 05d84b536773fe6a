// Package middleware holds the HTTP middleware shared by all routes.
package middleware

//go:generate mockgen -source=auth.go -destination=mock_resolver_test.go -package=middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/aanand-mishra/student-records-api/internal/logger"
	"github.com/aanand-mishra/student-records-api/internal/session"
	"github.com/aanand-mishra/student-records-api/internal/utils/response"
)

// AuthRequiredMessage is the body of every 401 from RequireAdmin.
const AuthRequiredMessage = "Admin authentication required"

// Resolver turns a session token into the admin it belongs to.
type Resolver interface {
	Resolve(ctx context.Context, token string) (session.Identity, error)
}

// RequireAdmin rejects requests without a live admin session. On success
// the session.Identity is stored in the request context.
func RequireAdmin(resolver Resolver, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			id, err := resolver.Resolve(ctx, session.TokenFromRequest(r, cookieName))
			if err != nil {
				if errors.Is(err, session.ErrInvalidSession) {
					logger.FromContext(r.Context()).Debugw("authorization failed", "err", err, "uri", r.RequestURI)
					_ = response.WriteJSON(w, http.StatusUnauthorized, response.ErrorMessage(AuthRequiredMessage))
					return
				}
				response.InternalError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithIdentity(ctx, id)))
		})
	}
}
