package types

import "errors"

// Store provides durable storage for favorite entries. It is the only
// component allowed to mutate the favorites table.
type Store interface {
	// Initialize ensures the schema exists. Safe to call on every startup.
	Initialize() error

	// Create validates f, persists it under a newly assigned id, and returns
	// that id.
	Create(f Fields) (int64, error)

	// List returns every entry in ascending id order. The slice is freshly
	// built on each call.
	List() ([]Entry, error)

	// Get returns the entry with the given id.
	// Returns ErrNotFound if no entry exists with that id.
	Get(id int64) (Entry, error)

	// Update overwrites all fields of the entry with the given id.
	// Returns ErrValidation before touching storage when f is invalid and
	// ErrNotFound if no entry exists with that id.
	Update(id int64, f Fields) error

	// Delete removes the entry with the given id.
	// Returns ErrNotFound if no entry exists with that id.
	Delete(id int64) error
}

// Errors reported by stores and the form controller. Callers match them with
// errors.Is; the wrapped message carries the detail.
var (
	ErrValidation   = errors.New("invalid field value")
	ErrPrecondition = errors.New("selection required")
	ErrDeclined     = errors.New("declined by user")
	ErrNotFound     = errors.New("entry not found")
	ErrStorage      = errors.New("storage failure")
)
