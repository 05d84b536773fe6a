package admin

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aanand-mishra/student-records-api/internal/config"
	"github.com/aanand-mishra/student-records-api/internal/storage/sqlstore"
	"github.com/aanand-mishra/student-records-api/internal/validate"
)

func setupTestStore(t *testing.T) *sqlstore.Store {
	t.Helper()

	store, err := sqlstore.Open(config.DriverSQLite, sqlstore.SQLiteDSN(filepath.Join(t.TempDir(), "test.db")), 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestService_CreateAndValidate(t *testing.T) {
	encoders := map[string]PasswordEncoder{
		"plain":  PlainEncoder{},
		"bcrypt": BcryptEncoder{Cost: bcrypt.MinCost},
	}

	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			svc := NewService(setupTestStore(t), enc)
			ctx := context.Background()

			a, err := svc.Create(ctx, "admin@test.com", "secret")
			require.NoError(t, err)
			assert.Equal(t, "admin@test.com", a.Email)

			ok, err := svc.Validate(ctx, "admin@test.com", "secret")
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = svc.Validate(ctx, "admin@test.com", "Secret")
			require.NoError(t, err)
			assert.False(t, ok)

			ok, err = svc.Validate(ctx, "nobody@test.com", "secret")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestService_Create_PlainStoresVerbatim(t *testing.T) {
	store := setupTestStore(t)
	svc := NewService(store, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "admin@test.com", "secret")
	require.NoError(t, err)

	a, err := store.GetAdminByEmail(ctx, "admin@test.com")
	require.NoError(t, err)
	assert.Equal(t, "secret", a.Password)
}

func TestService_Create_BcryptHashes(t *testing.T) {
	store := setupTestStore(t)
	svc := NewService(store, BcryptEncoder{Cost: bcrypt.MinCost})
	ctx := context.Background()

	_, err := svc.Create(ctx, "admin@test.com", "secret")
	require.NoError(t, err)

	a, err := store.GetAdminByEmail(ctx, "admin@test.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", a.Password)
	assert.True(t, strings.HasPrefix(a.Password, "$2"))
}

func TestService_Create_Duplicate(t *testing.T) {
	svc := NewService(setupTestStore(t), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "admin@test.com", "secret")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "admin@test.com", "other")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.EqualError(t, err, "Admin with this email already exists")

	ok, err := svc.Validate(ctx, "admin@test.com", "secret")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_Create_InvalidCredentials(t *testing.T) {
	svc := NewService(setupTestStore(t), nil)

	_, err := svc.Create(context.Background(), "not-an-email", "")

	var verr *validate.Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []validate.FieldError{
		{Field: "email", Message: "Email address should be valid"},
		{Field: "password", Message: "Password is required"},
	}, verr.Fields)
}

func TestService_EnsureAdmin(t *testing.T) {
	svc := NewService(setupTestStore(t), nil)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "root@test.com", "pw")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, "root@test.com", "changed")
	require.NoError(t, err)
	assert.False(t, created)

	ok, err := svc.Validate(ctx, "root@test.com", "pw")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewEncoder(t *testing.T) {
	enc, err := NewEncoder(config.PasswordPlain)
	require.NoError(t, err)
	assert.IsType(t, PlainEncoder{}, enc)

	enc, err = NewEncoder(config.PasswordBcrypt)
	require.NoError(t, err)
	assert.IsType(t, BcryptEncoder{}, enc)

	_, err = NewEncoder("md5")
	assert.Error(t, err)
}
