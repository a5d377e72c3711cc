package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry is a stored favorite record.
type Entry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Bias        string `json:"bias"`
	BiasWrecker string `json:"bias_wrecker"`
	SongCount   int    `json:"song_count"`
	FavSong     string `json:"fav_song"`
	FavAlbum    string `json:"fav_album"`
}

// Fields holds the seven user-editable values of an entry as typed into the
// form. SongCount stays text until it is submitted.
type Fields struct {
	Name        string
	Group       string
	Bias        string
	BiasWrecker string
	SongCount   string
	FavSong     string
	FavAlbum    string
}

// Fields returns the editable values of e, formatted for the form.
func (e Entry) Fields() Fields {
	return Fields{
		Name:        e.Name,
		Group:       e.Group,
		Bias:        e.Bias,
		BiasWrecker: e.BiasWrecker,
		SongCount:   strconv.Itoa(e.SongCount),
		FavSong:     e.FavSong,
		FavAlbum:    e.FavAlbum,
	}
}

// Entry coerces f into an Entry with a zero ID.
// Returns ErrValidation if SongCount is not a whole number.
func (f Fields) Entry() (Entry, error) {
	count, err := ParseSongCount(f.SongCount)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Name:        f.Name,
		Group:       f.Group,
		Bias:        f.Bias,
		BiasWrecker: f.BiasWrecker,
		SongCount:   count,
		FavSong:     f.FavSong,
		FavAlbum:    f.FavAlbum,
	}, nil
}

// Validate reports whether f can be stored.
func (f Fields) Validate() error {
	_, err := f.Entry()
	return err
}

// ParseSongCount parses a song count typed by the user. Surrounding
// whitespace and a leading sign are accepted.
func ParseSongCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: song count %q is not a whole number", ErrValidation, s)
	}
	return n, nil
}
