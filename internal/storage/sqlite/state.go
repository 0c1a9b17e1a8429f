package sqlite

import (
	"context"
	"database/sql"
	"time"
)

// SaveState stores value under key, replacing any previous value.
func (s *SQLiteStore) SaveState(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	if err != nil {
		return unavailable("save state", err)
	}
	return nil
}

// LoadState returns the value stored under key.
func (s *SQLiteStore) LoadState(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM app_state WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, unavailable("load state", err)
	}
	return value, true, nil
}

// DeleteState removes key. Deleting a missing key is not an error.
func (s *SQLiteStore) DeleteState(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM app_state WHERE key = ?", key); err != nil {
		return unavailable("delete state", err)
	}
	return nil
}
