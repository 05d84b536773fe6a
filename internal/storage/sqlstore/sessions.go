package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aanand-mishra/student-records-api/internal/storage"
	"github.com/aanand-mishra/student-records-api/internal/types"
)

// SaveSession inserts a session row.
func (s *Store) SaveSession(ctx context.Context, sess types.Session) error {
	const query = `
		INSERT INTO admin_sessions (session_id, email, created_at, expires_at)
		VALUES (?, ?, ?, ?)`

	if _, err := s.db.ExecContext(ctx, s.q(query),
		sess.ID, sess.Email, sess.CreatedAt, sess.ExpiresAt); err != nil {
		return fmt.Errorf("SaveSession: exec: %w", err)
	}

	return nil
}

// GetSession returns the live session with id. An expired row is removed
// on sight and reported as storage.ErrNotFound.
func (s *Store) GetSession(ctx context.Context, id string) (types.Session, error) {
	const query = `
		SELECT session_id, email, created_at, expires_at
		FROM admin_sessions WHERE session_id = ?`

	var sess types.Session
	if err := s.db.GetContext(ctx, &sess, s.q(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Session{}, fmt.Errorf("GetSession: %w", storage.ErrNotFound)
		}
		return types.Session{}, fmt.Errorf("GetSession: select: %w", err)
	}

	if sess.Expired(s.now()) {
		if err := s.DeleteSession(ctx, id); err != nil {
			return types.Session{}, err
		}
		return types.Session{}, fmt.Errorf("GetSession: expired: %w", storage.ErrNotFound)
	}

	return sess, nil
}

// DeleteSession removes the session with id, if any.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx,
		s.q(`DELETE FROM admin_sessions WHERE session_id = ?`), id); err != nil {
		return fmt.Errorf("DeleteSession: exec: %w", err)
	}
	return nil
}

// DeleteExpiredSessions purges every session that expired before now and
// returns how many were removed.
func (s *Store) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		s.q(`DELETE FROM admin_sessions WHERE expires_at <= ?`), now.UTC())
	if err != nil {
		return 0, fmt.Errorf("DeleteExpiredSessions: exec: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteExpiredSessions: rows affected: %w", err)
	}
	return n, nil
}
