// Package admin manages administrator credentials: creating them and
// checking login attempts.
package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aanand-mishra/student-records-api/internal/logger"
	"github.com/aanand-mishra/student-records-api/internal/storage"
	"github.com/aanand-mishra/student-records-api/internal/types"
	"github.com/aanand-mishra/student-records-api/internal/validate"
)

// ErrDuplicateEmail is returned by Create when the email is registered.
var ErrDuplicateEmail = errors.New("Admin with this email already exists")

type Service struct {
	store   storage.AdminStore
	encoder PasswordEncoder
	now     func() time.Time
}

// NewService returns a Service. A nil encoder means PlainEncoder.
func NewService(store storage.AdminStore, encoder PasswordEncoder) *Service {
	if encoder == nil {
		encoder = PlainEncoder{}
	}
	return &Service{
		store:   store,
		encoder: encoder,
		now:     time.Now,
	}
}

// Validate reports whether email is registered and password matches it.
// An unknown email is a plain false, not an error.
func (s *Service) Validate(ctx context.Context, email, password string) (bool, error) {
	a, err := s.store.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("Validate: %w", err)
	}

	return s.encoder.Matches(password, a.Password), nil
}

// Create registers a new admin.
func (s *Service) Create(ctx context.Context, email, password string) (types.Admin, error) {
	if err := validate.Struct(types.AdminCredentials{Email: email, Password: password}); err != nil {
		return types.Admin{}, err
	}

	exists, err := s.store.AdminExists(ctx, email)
	if err != nil {
		return types.Admin{}, fmt.Errorf("Create: check email: %w", err)
	}
	if exists {
		return types.Admin{}, ErrDuplicateEmail
	}

	encoded, err := s.encoder.Encode(password)
	if err != nil {
		return types.Admin{}, fmt.Errorf("Create: encode: %w", err)
	}

	a := types.Admin{
		Email:     email,
		Password:  encoded,
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}
	if err := s.store.CreateAdmin(ctx, a); err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			return types.Admin{}, ErrDuplicateEmail
		}
		return types.Admin{}, fmt.Errorf("Create: insert: %w", err)
	}

	logger.FromContext(ctx).Infow("admin created", "email", email)
	return a, nil
}

// EnsureAdmin creates the admin unless the email is already registered.
// It is used to seed the first account at startup.
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	_, err := s.Create(ctx, email, password)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrDuplicateEmail):
		return false, nil
	default:
		return false, err
	}
}
