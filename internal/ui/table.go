package ui

import (
	"strconv"

	"github.com/mesh-intelligence/favorites/pkg/types"
)

// columnTitles are the table headers, one per Entry field.
var columnTitles = []string{"ID", "Name", "Group", "Bias", "Wrecker", "Songs", "Song", "Album"}

const columnWidth = 130

// cellText returns the text of one table cell.
func cellText(e types.Entry, col int) string {
	switch col {
	case 0:
		return strconv.FormatInt(e.ID, 10)
	case 1:
		return e.Name
	case 2:
		return e.Group
	case 3:
		return e.Bias
	case 4:
		return e.BiasWrecker
	case 5:
		return strconv.Itoa(e.SongCount)
	case 6:
		return e.FavSong
	case 7:
		return e.FavAlbum
	default:
		return ""
	}
}
