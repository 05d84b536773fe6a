// Package redisstore keeps admin sessions in Redis instead of the SQL
// database. Each session is one JSON value whose key expires together
// with the session, so Redis does the purging.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aanand-mishra/student-records-api/internal/config"
	"github.com/aanand-mishra/student-records-api/internal/storage"
	"github.com/aanand-mishra/student-records-api/internal/types"
)

var _ storage.SessionStore = (*SessionStore)(nil)

const keyPrefix = "studentms:session:"

// SessionStore implements storage.SessionStore on a go-redis client.
type SessionStore struct {
	rdb *redis.Client
	now func() time.Time
}

// New connects to the configured Redis server and pings it.
func New(ctx context.Context, cfg config.Redis) (*SessionStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redisstore.New: ping: %w", err)
	}

	return NewWithClient(rdb), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(rdb *redis.Client) *SessionStore {
	return &SessionStore{
		rdb: rdb,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// SaveSession stores sess with a TTL matching its expiry.
func (s *SessionStore) SaveSession(ctx context.Context, sess types.Session) error {
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("SaveSession: session %s already expired", sess.ID)
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("SaveSession: marshal: %w", err)
	}

	if err := s.rdb.Set(ctx, keyPrefix+sess.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("SaveSession: set: %w", err)
	}
	return nil
}

// GetSession returns storage.ErrNotFound once the key has expired.
func (s *SessionStore) GetSession(ctx context.Context, id string) (types.Session, error) {
	payload, err := s.rdb.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return types.Session{}, fmt.Errorf("GetSession: %w", storage.ErrNotFound)
		}
		return types.Session{}, fmt.Errorf("GetSession: get: %w", err)
	}

	var sess types.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return types.Session{}, fmt.Errorf("GetSession: unmarshal: %w", err)
	}

	// Redis expiry has millisecond resolution; re-check.
	if sess.Expired(s.now()) {
		return types.Session{}, fmt.Errorf("GetSession: expired: %w", storage.ErrNotFound)
	}

	return sess, nil
}

// DeleteSession removes the key; unknown ids are not an error.
func (s *SessionStore) DeleteSession(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("DeleteSession: del: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (s *SessionStore) Close() error {
	return s.rdb.Close()
}
