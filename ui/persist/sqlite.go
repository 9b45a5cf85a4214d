// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package persist provides backing stores for the widget kit's persistent
// state scope: a SQLite file store for desktop hosts and an in-memory
// store for tests and hosts without a filesystem.
package persist

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrClosed      = errors.New("persist: store closed")
	ErrInvalidPath = errors.New("persist: invalid path")
)

// =============================================================================
// SQLITE STORE
// =============================================================================

const schema = `
CREATE TABLE IF NOT EXISTS widget_state (
	key        INTEGER PRIMARY KEY,
	blob       BLOB    NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// SQLiteStore persists widget state blobs in a single SQLite file. Keys are
// the kit's 64-bit widget ids; blobs are opaque and carry no cross-version
// compatibility promise.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.Mutex
	closed bool
}

// OpenSQLite opens (creating if needed) the state database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("persist: create state dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("persist: open state db: %w", err)
	}
	// Single writer; the kit is single-threaded by contract.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("persist: create schema: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("persist: enable WAL: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load fetches the blob stored under key.
func (s *SQLiteStore) Load(key uint64) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, false, ErrClosed
	}

	var blob []byte
	err := s.db.QueryRow(
		"SELECT blob FROM widget_state WHERE key = ?", int64(key),
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("persist: load key %d: %w", key, err)
	}
	return blob, true, nil
}

// Store upserts the blob under key.
func (s *SQLiteStore) Store(key uint64, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	_, err := s.db.Exec(
		`INSERT INTO widget_state (key, blob, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at`,
		int64(key), blob, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("persist: store key %d: %w", key, err)
	}
	return nil
}

// Prune deletes entries not updated within maxAge, bounding file growth for
// long-lived installs whose widget ids churn.
func (s *SQLiteStore) Prune(maxAge time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}

	cutoff := time.Now().Add(-maxAge).Unix()
	res, err := s.db.Exec("DELETE FROM widget_state WHERE updated_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("persist: prune: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
