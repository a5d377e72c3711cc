// Package form holds the transient state behind the entry form and the
// controller that turns user actions into store calls.
package form

import "github.com/mesh-intelligence/favorites/pkg/types"

// Mode is the selection state of the form.
type Mode int

const (
	// NoSelection is the initial mode: Add is the only mutating action.
	NoSelection Mode = iota
	// SelectionActive means a listed entry was picked and Update or Delete
	// will target its id.
	SelectionActive
)

func (m Mode) String() string {
	switch m {
	case NoSelection:
		return "no selection"
	case SelectionActive:
		return "selection active"
	default:
		return "unknown"
	}
}

// Field names one of the seven editable inputs.
type Field int

const (
	FieldName Field = iota
	FieldGroup
	FieldBias
	FieldBiasWrecker
	FieldSongCount
	FieldFavSong
	FieldFavAlbum
)

// AllFields lists the inputs in form order.
var AllFields = []Field{
	FieldName,
	FieldGroup,
	FieldBias,
	FieldBiasWrecker,
	FieldSongCount,
	FieldFavSong,
	FieldFavAlbum,
}

// Label returns the caption shown next to the input.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Your Name:"
	case FieldGroup:
		return "Favorite Group/Artist:"
	case FieldBias:
		return "Your Bias:"
	case FieldBiasWrecker:
		return "Bias Wrecker:"
	case FieldSongCount:
		return "Song Count:"
	case FieldFavSong:
		return "Favorite Song:"
	case FieldFavAlbum:
		return "Favorite Album:"
	default:
		return ""
	}
}

// FormState is the field values being edited plus the id of the selected
// entry, if any. The zero value is an empty form with no selection.
type FormState struct {
	fields   types.Fields
	selected int64
	active   bool
}

// Mode reports whether an entry is selected.
func (s *FormState) Mode() Mode {
	if s.active {
		return SelectionActive
	}
	return NoSelection
}

// Selected returns the selected id and whether there is one.
func (s *FormState) Selected() (int64, bool) {
	return s.selected, s.active
}

// Fields returns a copy of the current values.
func (s *FormState) Fields() types.Fields {
	return s.fields
}

// Get returns the value of one field.
func (s *FormState) Get(f Field) string {
	if p := s.ref(f); p != nil {
		return *p
	}
	return ""
}

// Set changes one field. The selection is kept.
func (s *FormState) Set(f Field, value string) {
	if p := s.ref(f); p != nil {
		*p = value
	}
}

// Select loads e into the form and makes it the update/delete target.
func (s *FormState) Select(e types.Entry) {
	s.fields = e.Fields()
	s.selected = e.ID
	s.active = true
}

// Deselect forgets the selected id but keeps the typed values.
func (s *FormState) Deselect() {
	s.selected = 0
	s.active = false
}

// Clear empties every field and forgets the selection.
func (s *FormState) Clear() {
	*s = FormState{}
}

func (s *FormState) ref(f Field) *string {
	switch f {
	case FieldName:
		return &s.fields.Name
	case FieldGroup:
		return &s.fields.Group
	case FieldBias:
		return &s.fields.Bias
	case FieldBiasWrecker:
		return &s.fields.BiasWrecker
	case FieldSongCount:
		return &s.fields.SongCount
	case FieldFavSong:
		return &s.fields.FavSong
	case FieldFavAlbum:
		return &s.fields.FavAlbum
	default:
		return nil
	}
}
