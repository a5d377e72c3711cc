// Package sqlite implements the SQLite storage backend for favorite entries.
// The database file is opened and closed inside every operation; no handle
// outlives the call that acquired it.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/favorites/pkg/types"
)

// driverName is the database/sql driver registered by modernc.org/sqlite.
const driverName = "sqlite"

// busyTimeoutPragma makes a locked file wait briefly instead of failing.
const busyTimeoutPragma = "_pragma=busy_timeout(5000)"

// Backend implements types.Store on a single SQLite file.
type Backend struct {
	mu     sync.Mutex
	config types.Config
	path   string
}

var _ types.Store = (*Backend)(nil)

// NewBackend validates config and returns a backend for the database file
// inside config.DataDir. Nothing is touched on disk until Initialize.
func NewBackend(config types.Config) (*Backend, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}

	return &Backend{
		config: config,
		path:   filepath.Join(dataDir, types.DBFileName),
	}, nil
}

// Path returns the database file path.
func (b *Backend) Path() string {
	return b.path
}

// Initialize creates DataDir if needed and ensures the favorites table exists.
// Idempotent: existing data is left untouched.
func (b *Backend) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return storageError("create data directory", err)
	}

	return b.withDB(func(db *sql.DB) error {
		if _, err := db.Exec(createFavorites); err != nil {
			return storageError("create schema", err)
		}
		return nil
	})
}

// withDB opens the database, runs fn, and closes the handle on every exit
// path. A close failure is reported only when fn succeeded.
// The caller must hold b.mu.
func (b *Backend) withDB(fn func(db *sql.DB) error) (err error) {
	db, err := sql.Open(driverName, b.path+"?"+busyTimeoutPragma)
	if err != nil {
		return storageError("open database", err)
	}
	// One connection keeps transactions and pragmas on the same handle.
	db.SetMaxOpenConns(1)

	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = storageError("close database", cerr)
		}
	}()

	return fn(db)
}

// storageError wraps a driver or filesystem failure so that callers can match
// types.ErrStorage while keeping the cause.
func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, types.ErrStorage, err)
}
