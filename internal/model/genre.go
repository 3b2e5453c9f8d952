package model

// Genre represents a row in the `genres` table. Genre IDs are not
// auto-generated: they come from the external TMDB taxonomy and are
// written as-is by the seed step (28 = Action ... 37 = Western).
type Genre struct {
	ID   int    // genres.id (seed/caller assigned)
	Name string // genres.name
}

// MovieGenre links a movie to a genre in the `movie_genres` join
// table. The pair is the composite primary key; rows cascade away
// with either parent.
type MovieGenre struct {
	MovieID uint64 // movie_genres.movie_id
	GenreID int    // movie_genres.genre_id
}
