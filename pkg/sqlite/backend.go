// Package sqlite provides the public constructor for the SQLite favorites
// store while keeping the implementation internal.
package sqlite

import (
	"github.com/mesh-intelligence/favorites/internal/sqlite"
	"github.com/mesh-intelligence/favorites/pkg/types"
)

// NewStore creates a SQLite store for config and ensures its schema exists.
//
// Example:
//
//	store, err := sqlite.NewStore(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".",
//	})
//	id, err := store.Create(fields)
func NewStore(config types.Config) (types.Store, error) {
	b, err := sqlite.NewBackend(config)
	if err != nil {
		return nil, err
	}
	if err := b.Initialize(); err != nil {
		return nil, err
	}
	return b, nil
}
