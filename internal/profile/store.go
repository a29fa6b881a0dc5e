package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodreadme/goodreadme/internal/readme"
)

// Store persists resolved profiles in the profile_cache table.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore wraps a database that has the profile_cache migration applied.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func cacheKey(handle string) string {
	return strings.ToLower(strings.TrimSpace(handle))
}

// Get returns the cached profile for handle if it has not expired.
func (s *Store) Get(ctx context.Context, handle string) (*readme.ProfileRecord, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM profile_cache WHERE handle = ? AND expires_at > ?",
		cacheKey(handle), s.now().Unix()).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached profile: %w", err)
	}

	var rec readme.ProfileRecord
	if err := json.Unmarshal(value, &rec); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached profile: %w", err)
	}
	return &rec, true, nil
}

// Put stores rec for ttl, replacing any previous entry.
func (s *Store) Put(ctx context.Context, handle string, rec readme.ProfileRecord, ttl time.Duration) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO profile_cache (handle, value, expires_at) VALUES (?, ?, ?)",
		cacheKey(handle), value, s.now().Add(ttl).Unix())
	if err != nil {
		return fmt.Errorf("failed to store profile: %w", err)
	}
	return nil
}

// Prune deletes expired entries and reports how many were removed.
func (s *Store) Prune(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM profile_cache WHERE expires_at <= ?", s.now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to prune profile cache: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned profiles: %w", err)
	}
	return n, nil
}
