package sqlite

// createFavorites is the favorites table DDL. AUTOINCREMENT keeps ids from
// being reused after the highest row is deleted. The group column is named
// fav_group because GROUP is a keyword.
const createFavorites = `CREATE TABLE IF NOT EXISTS favorites (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    fav_group TEXT NOT NULL,
    bias TEXT NOT NULL,
    bias_wrecker TEXT NOT NULL,
    song_count INTEGER NOT NULL,
    fav_song TEXT NOT NULL,
    fav_album TEXT NOT NULL
);`

// Statements over the favorites table.
const (
	insertFavorite = `INSERT INTO favorites
    (name, fav_group, bias, bias_wrecker, song_count, fav_song, fav_album)
    VALUES (?, ?, ?, ?, ?, ?, ?)`

	selectFavorites = `SELECT id, name, fav_group, bias, bias_wrecker, song_count, fav_song, fav_album
    FROM favorites ORDER BY id ASC`

	selectFavorite = `SELECT id, name, fav_group, bias, bias_wrecker, song_count, fav_song, fav_album
    FROM favorites WHERE id = ?`

	updateFavorite = `UPDATE favorites SET
    name = ?, fav_group = ?, bias = ?, bias_wrecker = ?,
    song_count = ?, fav_song = ?, fav_album = ?
    WHERE id = ?`

	deleteFavorite = `DELETE FROM favorites WHERE id = ?`
)
