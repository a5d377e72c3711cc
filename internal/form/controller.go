package form

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/favorites/pkg/types"
)

// Confirmation prompts shown before destructive actions.
const (
	ConfirmUpdateTitle   = "Confirm Update"
	ConfirmUpdateMessage = "Are you sure you want to update this entry?"
	ConfirmDeleteTitle   = "Confirm Delete"
	ConfirmDeleteMessage = "Are you sure you want to delete this entry?\n\nThis action cannot be undone."
)

// Confirmer asks the user a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(title, message string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(title, message string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(title, message string) bool {
	return f(title, message)
}

// Controller mediates between the form and the store. It is not safe for
// concurrent use; callers run one action at a time.
type Controller struct {
	store    types.Store
	confirm  Confirmer
	log      zerolog.Logger
	state    FormState
	entries  []types.Entry
	onChange func([]types.Entry)
}

// NewController returns a controller with an empty form and no entries
// loaded. Call Reload to fetch the initial list.
func NewController(store types.Store, confirm Confirmer, log zerolog.Logger) *Controller {
	return &Controller{
		store:   store,
		confirm: confirm,
		log:     log,
	}
}

// OnListChanged registers fn to receive the list after every reload.
func (c *Controller) OnListChanged(fn func([]types.Entry)) {
	c.onChange = fn
}

// Mode reports the selection state.
func (c *Controller) Mode() Mode {
	return c.state.Mode()
}

// Selected returns the selected id and whether there is one.
func (c *Controller) Selected() (int64, bool) {
	return c.state.Selected()
}

// Fields returns the current form values.
func (c *Controller) Fields() types.Fields {
	return c.state.Fields()
}

// Field returns one form value.
func (c *Controller) Field(f Field) string {
	return c.state.Get(f)
}

// SetField records an edit to one form value.
func (c *Controller) SetField(f Field, value string) {
	c.state.Set(f, value)
}

// Entries returns a copy of the most recently loaded list.
func (c *Controller) Entries() []types.Entry {
	return slices.Clone(c.entries)
}

// Select picks the listed entry with the given id, loading its values into
// the form. Returns ErrNotFound if the id is not in the current list.
func (c *Controller) Select(id int64) error {
	i := slices.IndexFunc(c.entries, func(e types.Entry) bool { return e.ID == id })
	if i < 0 {
		return fmt.Errorf("select entry %d: %w", id, types.ErrNotFound)
	}
	c.state.Select(c.entries[i])
	c.log.Debug().Int64("id", id).Msg("entry selected")
	return nil
}

// Clear empties the form and drops the selection, discarding unsaved edits.
func (c *Controller) Clear() {
	c.state.Clear()
}

// Reload fetches the full list from the store and publishes it. The form and
// selection are left alone.
func (c *Controller) Reload() error {
	entries, err := c.store.List()
	if err != nil {
		c.log.Error().Err(err).Msg("reload failed")
		return fmt.Errorf("reload: %w", err)
	}
	c.entries = entries
	if c.onChange != nil {
		c.onChange(slices.Clone(entries))
	}
	return nil
}

// Add stores the current form values as a new entry, then clears the form
// and reloads the list. Valid with or without a selection.
func (c *Controller) Add() error {
	log := c.actionLogger("add")

	id, err := c.store.Create(c.state.Fields())
	if err != nil {
		logFailure(log, err)
		return fmt.Errorf("add entry: %w", err)
	}
	log.Info().Int64("id", id).Msg("entry added")

	c.state.Clear()
	return c.Reload()
}

// Update overwrites the selected entry with the form values after the user
// confirms. Returns ErrPrecondition without a selection, ErrValidation for a
// bad song count (before prompting), and ErrDeclined if the user says no.
func (c *Controller) Update() error {
	log := c.actionLogger("update")

	id, ok := c.state.Selected()
	if !ok {
		log.Debug().Msg("no selection")
		return fmt.Errorf("update entry: %w", types.ErrPrecondition)
	}
	fields := c.state.Fields()
	if err := fields.Validate(); err != nil {
		logFailure(log, err)
		return fmt.Errorf("update entry %d: %w", id, err)
	}
	if !c.confirm.Confirm(ConfirmUpdateTitle, ConfirmUpdateMessage) {
		log.Debug().Int64("id", id).Msg("declined")
		return types.ErrDeclined
	}

	if err := c.store.Update(id, fields); err != nil {
		logFailure(log, err)
		return c.afterFailedMutation(id, fmt.Errorf("update entry %d: %w", id, err))
	}
	log.Info().Int64("id", id).Msg("entry updated")

	c.state.Clear()
	return c.Reload()
}

// Delete removes the selected entry after the user confirms. Returns
// ErrPrecondition without a selection and ErrDeclined if the user says no.
func (c *Controller) Delete() error {
	log := c.actionLogger("delete")

	id, ok := c.state.Selected()
	if !ok {
		log.Debug().Msg("no selection")
		return fmt.Errorf("delete entry: %w", types.ErrPrecondition)
	}
	if !c.confirm.Confirm(ConfirmDeleteTitle, ConfirmDeleteMessage) {
		log.Debug().Int64("id", id).Msg("declined")
		return types.ErrDeclined
	}

	if err := c.store.Delete(id); err != nil {
		logFailure(log, err)
		return c.afterFailedMutation(id, fmt.Errorf("delete entry %d: %w", id, err))
	}
	log.Info().Int64("id", id).Msg("entry deleted")

	c.state.Clear()
	return c.Reload()
}

// afterFailedMutation handles a failed update or delete. When the target
// vanished, the stale selection is dropped and the list reloaded so the
// display matches the store. The original error is returned either way.
func (c *Controller) afterFailedMutation(id int64, err error) error {
	if !errors.Is(err, types.ErrNotFound) {
		return err
	}
	c.state.Deselect()
	if rerr := c.Reload(); rerr != nil {
		return errors.Join(err, rerr)
	}
	c.log.Warn().Int64("id", id).Msg("selected entry no longer exists")
	return err
}

// actionLogger tags log lines of one user action with a fresh operation id.
func (c *Controller) actionLogger(action string) zerolog.Logger {
	return c.log.With().
		Str("action", action).
		Str("op_id", uuid.Must(uuid.NewV7()).String()).
		Logger()
}

// logFailure logs user errors at warn level and storage failures at error.
func logFailure(log zerolog.Logger, err error) {
	if errors.Is(err, types.ErrStorage) {
		log.Error().Err(err).Msg("action failed")
		return
	}
	log.Warn().Err(err).Msg("action rejected")
}
