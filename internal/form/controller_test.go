package form

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/mesh-intelligence/favorites/pkg/sqlite"
	"github.com/mesh-intelligence/favorites/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// scriptedConfirmer answers prompts with a fixed reply and records them.
type scriptedConfirmer struct {
	answer  bool
	prompts []string
}

func (s *scriptedConfirmer) Confirm(title, message string) bool {
	s.prompts = append(s.prompts, title)
	return s.answer
}

// failingStore wraps a real store and fails selected operations.
type failingStore struct {
	types.Store
	failList   bool
	failUpdate error
}

func (f *failingStore) List() ([]types.Entry, error) {
	if f.failList {
		return nil, fmt.Errorf("query favorites: %w: disk I/O error", types.ErrStorage)
	}
	return f.Store.List()
}

func (f *failingStore) Update(id int64, fields types.Fields) error {
	if f.failUpdate != nil {
		return f.failUpdate
	}
	return f.Store.Update(id, fields)
}

func newStore(t *testing.T) types.Store {
	t.Helper()
	store, err := sqlite.NewStore(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	return store
}

func newController(t *testing.T, store types.Store, answer bool) (*Controller, *scriptedConfirmer) {
	t.Helper()
	confirm := &scriptedConfirmer{answer: answer}
	c := NewController(store, confirm, zerolog.Nop())
	require.NoError(t, c.Reload())
	return c, confirm
}

func fill(c *Controller, f types.Fields) {
	c.SetField(FieldName, f.Name)
	c.SetField(FieldGroup, f.Group)
	c.SetField(FieldBias, f.Bias)
	c.SetField(FieldBiasWrecker, f.BiasWrecker)
	c.SetField(FieldSongCount, f.SongCount)
	c.SetField(FieldFavSong, f.FavSong)
	c.SetField(FieldFavAlbum, f.FavAlbum)
}

var ann = types.Fields{
	Name: "Ann", Group: "XYZ", Bias: "A", BiasWrecker: "B",
	SongCount: "12", FavSong: "S1", FavAlbum: "Alb1",
}

var bo = types.Fields{
	Name: "Bo", Group: "QWE", Bias: "C", BiasWrecker: "D",
	SongCount: "3", FavSong: "S2", FavAlbum: "Alb2",
}

func TestAdd(t *testing.T) {
	t.Run("stores, clears, and publishes the new list", func(t *testing.T) {
		store := newStore(t)
		c, _ := newController(t, store, true)

		var published [][]types.Entry
		c.OnListChanged(func(entries []types.Entry) {
			published = append(published, entries)
		})

		fill(c, ann)
		require.NoError(t, c.Add())

		assert.Equal(t, types.Fields{}, c.Fields())
		assert.Equal(t, NoSelection, c.Mode())
		require.Len(t, published, 1)
		require.Len(t, published[0], 1)
		assert.Equal(t, types.Entry{
			ID: 1, Name: "Ann", Group: "XYZ", Bias: "A", BiasWrecker: "B",
			SongCount: 12, FavSong: "S1", FavAlbum: "Alb1",
		}, published[0][0])
		assert.Equal(t, published[0], c.Entries())
	})

	t.Run("works while a selection is active", func(t *testing.T) {
		store := newStore(t)
		c, _ := newController(t, store, true)
		fill(c, ann)
		require.NoError(t, c.Add())
		require.NoError(t, c.Select(1))

		c.SetField(FieldName, "Copy")
		require.NoError(t, c.Add())

		entries, err := store.List()
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Ann", entries[0].Name, "original left untouched")
		assert.Equal(t, "Copy", entries[1].Name)
		assert.Equal(t, NoSelection, c.Mode())
	})

	t.Run("non-numeric song count surfaces ErrValidation and keeps the form", func(t *testing.T) {
		store := newStore(t)
		c, _ := newController(t, store, true)
		bad := ann
		bad.SongCount = "twelve"
		fill(c, bad)

		err := c.Add()
		require.ErrorIs(t, err, types.ErrValidation)
		assert.Equal(t, bad, c.Fields())

		entries, err := store.List()
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("without selection returns ErrPrecondition and never prompts", func(t *testing.T) {
		store := newStore(t)
		c, confirm := newController(t, store, true)
		fill(c, ann)
		require.NoError(t, c.Add())
		fill(c, bo)

		err := c.Update()
		require.ErrorIs(t, err, types.ErrPrecondition)
		assert.Empty(t, confirm.prompts)

		got, err := store.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "Ann", got.Name)
	})

	t.Run("confirmed update overwrites, clears, and reloads", func(t *testing.T) {
		store := newStore(t)
		c, confirm := newController(t, store, true)
		fill(c, ann)
		require.NoError(t, c.Add())

		require.NoError(t, c.Select(1))
		assert.Equal(t, ann, c.Fields())
		fill(c, bo)
		require.NoError(t, c.Update())

		assert.Equal(t, []string{ConfirmUpdateTitle}, confirm.prompts)
		assert.Equal(t, NoSelection, c.Mode())
		assert.Equal(t, types.Fields{}, c.Fields())
		require.Len(t, c.Entries(), 1)
		assert.Equal(t, types.Entry{
			ID: 1, Name: "Bo", Group: "QWE", Bias: "C", BiasWrecker: "D",
			SongCount: 3, FavSong: "S2", FavAlbum: "Alb2",
		}, c.Entries()[0])
	})

	t.Run("declined update changes nothing", func(t *testing.T) {
		store := newStore(t)
		c, confirm := newController(t, store, false)
		fill(c, ann)
		require.NoError(t, c.Add())
		require.NoError(t, c.Select(1))
		c.SetField(FieldName, "Edited")

		err := c.Update()
		require.ErrorIs(t, err, types.ErrDeclined)
		assert.Len(t, confirm.prompts, 1)

		id, ok := c.Selected()
		assert.True(t, ok)
		assert.Equal(t, int64(1), id)
		assert.Equal(t, "Edited", c.Field(FieldName))

		got, err := store.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "Ann", got.Name)
	})

	t.Run("non-numeric song count is rejected before prompting", func(t *testing.T) {
		store := newStore(t)
		c, confirm := newController(t, store, true)
		fill(c, ann)
		require.NoError(t, c.Add())
		require.NoError(t, c.Select(1))
		c.SetField(FieldSongCount, "abc")

		err := c.Update()
		require.ErrorIs(t, err, types.ErrValidation)
		assert.Empty(t, confirm.prompts)
		assert.Equal(t, SelectionActive, c.Mode())

		got, err := store.Get(1)
		require.NoError(t, err)
		assert.Equal(t, 12, got.SongCount)
	})

	t.Run("vanished target drops the selection and reloads", func(t *testing.T) {
		store := newStore(t)
		c, _ := newController(t, store, true)
		fill(c, ann)
		require.NoError(t, c.Add())
		fill(c, bo)
		require.NoError(t, c.Add())
		require.NoError(t, c.Select(1))
		c.SetField(FieldName, "Retyped")

		// Removed behind the controller's back.
		require.NoError(t, store.Delete(1))

		err := c.Update()
		require.ErrorIs(t, err, types.ErrNotFound)
		assert.Equal(t, NoSelection, c.Mode())
		assert.Equal(t, "Retyped", c.Field(FieldName), "typed values survive for re-adding")
		require.Len(t, c.Entries(), 1)
		assert.Equal(t, "Bo", c.Entries()[0].Name)
	})

	t.Run("storage failure keeps selection and form", func(t *testing.T) {
		base := newStore(t)
		store := &failingStore{Store: base}
		c, _ := newController(t, store, true)
		fill(c, ann)
		require.NoError(t, c.Add())
		require.NoError(t, c.Select(1))

		store.failUpdate = fmt.Errorf("update entry: %w: disk full", types.ErrStorage)
		err := c.Update()
		require.ErrorIs(t, err, types.ErrStorage)
		assert.Equal(t, SelectionActive, c.Mode())
		assert.Equal(t, ann, c.Fields())

		store.failUpdate = nil
		assert.NoError(t, c.Update(), "controller remains usable after a failure")
	})
}

func TestDelete(t *testing.T) {
	t.Run("without selection returns ErrPrecondition", func(t *testing.T) {
		store := newStore(t)
		c, confirm := newController(t, store, true)

		err := c.Delete()
		require.ErrorIs(t, err, types.ErrPrecondition)
		assert.Empty(t, confirm.prompts)
	})

	t.Run("confirmed delete removes the first of two", func(t *testing.T) {
		store := newStore(t)
		c, confirm := newController(t, store, true)
		fill(c, ann)
		require.NoError(t, c.Add())
		fill(c, bo)
		require.NoError(t, c.Add())

		require.NoError(t, c.Select(1))
		require.NoError(t, c.Delete())

		assert.Equal(t, []string{ConfirmDeleteTitle}, confirm.prompts)
		assert.Equal(t, NoSelection, c.Mode())
		require.Len(t, c.Entries(), 1)
		assert.Equal(t, int64(2), c.Entries()[0].ID)
		assert.Equal(t, "Bo", c.Entries()[0].Name)
	})

	t.Run("declined delete keeps the row", func(t *testing.T) {
		store := newStore(t)
		c, _ := newController(t, store, false)
		fill(c, ann)
		require.NoError(t, c.Add())
		require.NoError(t, c.Select(1))

		require.ErrorIs(t, c.Delete(), types.ErrDeclined)
		assert.Equal(t, SelectionActive, c.Mode())

		entries, err := store.List()
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("vanished target drops the selection and reloads", func(t *testing.T) {
		store := newStore(t)
		c, _ := newController(t, store, true)
		fill(c, ann)
		require.NoError(t, c.Add())
		require.NoError(t, c.Select(1))
		require.NoError(t, store.Delete(1))

		err := c.Delete()
		require.ErrorIs(t, err, types.ErrNotFound)
		assert.Equal(t, NoSelection, c.Mode())
		assert.Empty(t, c.Entries())
	})
}

func TestSelect(t *testing.T) {
	store := newStore(t)
	c, _ := newController(t, store, true)
	fill(c, ann)
	require.NoError(t, c.Add())
	fill(c, bo)
	require.NoError(t, c.Add())

	require.NoError(t, c.Select(2))
	assert.Equal(t, bo, c.Fields())

	require.NoError(t, c.Select(1))
	id, _ := c.Selected()
	assert.Equal(t, int64(1), id)
	assert.Equal(t, ann, c.Fields())

	err := c.Select(77)
	require.ErrorIs(t, err, types.ErrNotFound)
	id, _ = c.Selected()
	assert.Equal(t, int64(1), id, "failed select keeps the previous selection")
}

func TestClear(t *testing.T) {
	store := newStore(t)
	c, _ := newController(t, store, true)
	fill(c, ann)
	require.NoError(t, c.Add())
	require.NoError(t, c.Select(1))
	c.SetField(FieldFavSong, "unsaved")

	c.Clear()

	assert.Equal(t, NoSelection, c.Mode())
	assert.Equal(t, types.Fields{}, c.Fields())
	got, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "S1", got.FavSong, "clear discards edits without saving")
}

func TestReload(t *testing.T) {
	t.Run("keeps form and selection", func(t *testing.T) {
		store := newStore(t)
		c, _ := newController(t, store, true)
		fill(c, ann)
		require.NoError(t, c.Add())
		require.NoError(t, c.Select(1))
		c.SetField(FieldBias, "typing")

		_, err := store.Create(bo)
		require.NoError(t, err)
		require.NoError(t, c.Reload())

		assert.Len(t, c.Entries(), 2)
		assert.Equal(t, SelectionActive, c.Mode())
		assert.Equal(t, "typing", c.Field(FieldBias))
	})

	t.Run("storage failure keeps the previous list", func(t *testing.T) {
		base := newStore(t)
		store := &failingStore{Store: base}
		c, _ := newController(t, store, true)
		fill(c, ann)
		require.NoError(t, c.Add())

		store.failList = true
		err := c.Reload()
		require.ErrorIs(t, err, types.ErrStorage)
		assert.Len(t, c.Entries(), 1)
	})

	t.Run("Entries returns a copy", func(t *testing.T) {
		store := newStore(t)
		c, _ := newController(t, store, true)
		fill(c, ann)
		require.NoError(t, c.Add())

		c.Entries()[0].Name = "mutated"
		assert.Equal(t, "Ann", c.Entries()[0].Name)
	})
}

func TestConfirmFunc(t *testing.T) {
	var gotTitle string
	f := ConfirmFunc(func(title, message string) bool {
		gotTitle = title
		return true
	})
	assert.True(t, f.Confirm("t", "m"))
	assert.Equal(t, "t", gotTitle)
}

func TestErrorsStayDistinct(t *testing.T) {
	kinds := []error{types.ErrValidation, types.ErrPrecondition, types.ErrDeclined, types.ErrNotFound, types.ErrStorage}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v must not match %v", a, b)
			}
		}
	}
}
