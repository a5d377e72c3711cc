package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/favorites/pkg/types"
)

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Create validates f and inserts it, returning the assigned id.
// Returns ErrValidation without touching the database when the song count
// does not parse.
func (b *Backend) Create(f types.Fields) (int64, error) {
	e, err := f.Entry()
	if err != nil {
		return 0, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var id int64
	err = b.withDB(func(db *sql.DB) error {
		id, err = insertEntry(db, e)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// List returns all entries ordered by id. An empty table yields an empty,
// non-nil slice.
func (b *Backend) List() ([]types.Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := []types.Entry{}
	err := b.withDB(func(db *sql.DB) error {
		rows, err := db.Query(selectFavorites)
		if err != nil {
			return storageError("query favorites", err)
		}
		defer rows.Close()

		for rows.Next() {
			e, err := scanEntry(rows)
			if err != nil {
				return err
			}
			entries = append(entries, e)
		}
		if err := rows.Err(); err != nil {
			return storageError("iterate favorites", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Get returns the entry with the given id, or ErrNotFound.
func (b *Backend) Get(id int64) (types.Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var e types.Entry
	err := b.withDB(func(db *sql.DB) error {
		var err error
		e, err = scanEntry(db.QueryRow(selectFavorite, id))
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("get entry %d: %w", id, types.ErrNotFound)
		}
		return err
	})
	return e, err
}

// Update overwrites every field of the entry with the given id.
// Returns ErrValidation before opening the database, or ErrNotFound when no
// row matched.
func (b *Backend) Update(id int64, f types.Fields) error {
	e, err := f.Entry()
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.withDB(func(db *sql.DB) error {
		res, err := db.Exec(updateFavorite,
			e.Name, e.Group, e.Bias, e.BiasWrecker, e.SongCount, e.FavSong, e.FavAlbum, id)
		if err != nil {
			return storageError("update entry", err)
		}
		return requireAffected(res, "update", id)
	})
}

// Delete removes the entry with the given id, or returns ErrNotFound.
func (b *Backend) Delete(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.withDB(func(db *sql.DB) error {
		res, err := db.Exec(deleteFavorite, id)
		if err != nil {
			return storageError("delete entry", err)
		}
		return requireAffected(res, "delete", id)
	})
}

func insertEntry(x execer, e types.Entry) (int64, error) {
	res, err := x.Exec(insertFavorite,
		e.Name, e.Group, e.Bias, e.BiasWrecker, e.SongCount, e.FavSong, e.FavAlbum)
	if err != nil {
		return 0, storageError("insert entry", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageError("read inserted id", err)
	}
	return id, nil
}

func scanEntry(row scanner) (types.Entry, error) {
	var e types.Entry
	err := row.Scan(&e.ID, &e.Name, &e.Group, &e.Bias, &e.BiasWrecker, &e.SongCount, &e.FavSong, &e.FavAlbum)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Entry{}, err
	}
	if err != nil {
		return types.Entry{}, storageError("scan entry", err)
	}
	return e, nil
}

// requireAffected turns a zero-row result into ErrNotFound.
func requireAffected(res sql.Result, op string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storageError(op+" entry", err)
	}
	if n == 0 {
		return fmt.Errorf("%s entry %d: %w", op, id, types.ErrNotFound)
	}
	return nil
}
