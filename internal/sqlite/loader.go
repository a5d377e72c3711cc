package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// Import reads a JSONL export and inserts every record with a newly assigned
// id. Blank lines, invalid JSON, and records whose fields have the wrong
// types are skipped. Loading is transactional: either every accepted record
// is inserted or none is. Returns the number of records inserted.
func (b *Backend) Import(path string) (int, error) {
	records, err := readJSONL(path)
	if err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var n int
	err = b.withDB(func(db *sql.DB) error {
		tx, err := db.Begin()
		if err != nil {
			return storageError("begin import", err)
		}
		defer tx.Rollback()

		for _, rec := range records {
			var j entryJSON
			if err := json.Unmarshal(rec, &j); err != nil {
				continue
			}
			if _, err := insertEntry(tx, j.entry()); err != nil {
				return err
			}
			n++
		}

		if err := tx.Commit(); err != nil {
			return storageError("commit import", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
