package sqlite

import "github.com/mesh-intelligence/favorites/pkg/types"

// entryJSON is one line of an export file. The id is written for reference
// and ignored on import, where the store assigns a fresh one.
type entryJSON struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Bias        string `json:"bias"`
	BiasWrecker string `json:"bias_wrecker"`
	SongCount   int    `json:"song_count"`
	FavSong     string `json:"fav_song"`
	FavAlbum    string `json:"fav_album"`
}

func toEntryJSON(e types.Entry) entryJSON {
	return entryJSON{
		ID:          e.ID,
		Name:        e.Name,
		Group:       e.Group,
		Bias:        e.Bias,
		BiasWrecker: e.BiasWrecker,
		SongCount:   e.SongCount,
		FavSong:     e.FavSong,
		FavAlbum:    e.FavAlbum,
	}
}

func (j entryJSON) entry() types.Entry {
	return types.Entry{
		Name:        j.Name,
		Group:       j.Group,
		Bias:        j.Bias,
		BiasWrecker: j.BiasWrecker,
		SongCount:   j.SongCount,
		FavSong:     j.FavSong,
		FavAlbum:    j.FavAlbum,
	}
}
