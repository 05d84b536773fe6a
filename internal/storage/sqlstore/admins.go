package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/student-records-api/internal/storage"
	"github.com/aanand-mishra/student-records-api/internal/types"
)

// CreateAdmin inserts a credential row. The email is the primary key, so
// a duplicate surfaces as storage.ErrEmailTaken.
func (s *Store) CreateAdmin(ctx context.Context, a types.Admin) error {
	const query = `INSERT INTO admins (email, password, created_at) VALUES (?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, s.q(query), a.Email, a.Password, a.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("CreateAdmin: %w", storage.ErrEmailTaken)
		}
		return fmt.Errorf("CreateAdmin: exec: %w", err)
	}

	return nil
}

// GetAdminByEmail fetches the credential for email.
func (s *Store) GetAdminByEmail(ctx context.Context, email string) (types.Admin, error) {
	const query = `SELECT email, password, created_at FROM admins WHERE email = ?`

	var a types.Admin
	if err := s.db.GetContext(ctx, &a, s.q(query), email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Admin{}, fmt.Errorf("GetAdminByEmail: %w", storage.ErrNotFound)
		}
		return types.Admin{}, fmt.Errorf("GetAdminByEmail: select: %w", err)
	}

	return a, nil
}

// AdminExists reports whether email is registered.
func (s *Store) AdminExists(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, "AdminExists",
		`SELECT EXISTS (SELECT 1 FROM admins WHERE email = ?)`, email)
}
