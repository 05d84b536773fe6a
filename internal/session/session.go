// Package session issues and checks admin session tokens.
//
// A token is an HS256-signed JWT whose jti names a row in the session
// store and whose sub is the admin email. Both must hold for a token to
// resolve, so deleting the row (logout) revokes the token even though its
// signature stays valid until exp.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/aanand-mishra/student-records-api/internal/logger"
	"github.com/aanand-mishra/student-records-api/internal/storage"
	"github.com/aanand-mishra/student-records-api/internal/types"
)

// ErrInvalidSession covers every way a token can fail to resolve: bad
// signature, expired, revoked, or simply absent.
var ErrInvalidSession = errors.New("invalid session")

// Identity is the authenticated admin behind a request.
type Identity struct {
	Email     string
	SessionID string
	ExpiresAt time.Time
}

// expiredPurger is implemented by stores that cannot expire rows on their
// own (the SQL store). Redis expires keys itself.
type expiredPurger interface {
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type Manager struct {
	store  storage.SessionStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(store storage.SessionStore, secret string, ttl time.Duration, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}


// Start opens a session for email and returns its signed token.
func (m *Manager) Start(ctx context.Context, email string) (string, time.Time, error) {
	// JWT NumericDate has second precision.
	now := m.now().UTC().Truncate(time.Second)
	expiresAt := now.Add(m.ttl)

	if p, ok := m.store.(expiredPurger); ok {
		if n, err := p.DeleteExpiredSessions(ctx, now); err != nil {
			logger.FromContext(ctx).Warnw("failed to purge expired sessions", "error", err)
		} else if n > 0 {
			logger.FromContext(ctx).Debugw("purged expired sessions", "count", n)
		}
	}

	sess := types.Session{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := m.store.SaveSession(ctx, sess); err != nil {
		return "", time.Time{}, fmt.Errorf("Start: save: %w", err)
	}

	claims := jwt.RegisteredClaims{
		ID:        sess.ID,
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("Start: sign: %w", err)
	}

	return token, expiresAt, nil
}

// Resolve verifies token and returns the identity it stands for.
func (m *Manager) Resolve(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrInvalidSession
	}

	claims, err := m.parse(token,
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	sess, err := m.store.GetSession(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Identity{}, fmt.Errorf("%w: revoked", ErrInvalidSession)
		}
		return Identity{}, fmt.Errorf("Resolve: %w", err)
	}

	if sess.Email != claims.Subject {
		return Identity{}, fmt.Errorf("%w: subject mismatch", ErrInvalidSession)
	}

	return Identity{Email: sess.Email, SessionID: sess.ID, ExpiresAt: sess.ExpiresAt}, nil
}

// End deletes the session behind token. Unparseable or already ended
// tokens are ignored; an expired but authentic token still removes its row.
func (m *Manager) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := m.parse(token, jwt.WithoutClaimsValidation())
	if err != nil || claims.ID == "" {
		return nil
	}

	if err := m.store.DeleteSession(ctx, claims.ID); err != nil {
		return fmt.Errorf("End: %w", err)
	}
	return nil
}

func (m *Manager) parse(token string, opts ...jwt.ParserOption) (*jwt.RegisteredClaims, error) {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// TokenFromRequest reads the session cookie, falling back to an
// "Authorization: Bearer" header.
func TokenFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}

	auth := r.Header.Get("Authorization")
	if len(auth) > len("Bearer ") && strings.EqualFold(auth[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(auth[len("Bearer "):])
	}
	return ""
}

type ctxKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFromContext returns the identity stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
