package model

import "time"

// Movie represents a catalog entry as stored in the `movies` table.
// The surrogate ID is assigned by the database; TmdbID is the
// caller-supplied external identifier and carries a unique index.
// Optional metadata columns are pointers so that absent values
// round-trip as NULL instead of zero values.
//
// Fields:
//  ID               – primary key identifier.
//  TmdbID           – external TMDB identifier (unique, > 0).
//  Title            – movie title (required).
//  Overview         – plot summary.
//  ReleaseYear      – year of first release.
//  Runtime          – runtime in minutes.
//  PosterPath       – relative poster image path.
//  VoteAverage      – community score, one fractional digit.
//  VoteCount        – number of votes behind VoteAverage.
//  OriginalLanguage – ISO 639-1 language code.
//  Budget           – production budget in dollars.
//  Revenue          – box office revenue in dollars.
//  Status           – release status (e.g. "Released").
//  LastUpdated      – refreshed on every mutation.
//  CreatedAt        – set once at creation.
type Movie struct {
	ID               uint64     // movies.id
	TmdbID           int64      // movies.tmdb_id
	Title            string     // movies.title
	Overview         *string    // movies.overview (nullable)
	ReleaseYear      *int       // movies.release_year (nullable)
	Runtime          *int       // movies.runtime (nullable)
	PosterPath       *string    // movies.poster_path (nullable)
	VoteAverage      *float64   // movies.vote_average (nullable, DECIMAL(3,1))
	VoteCount        *int       // movies.vote_count (nullable)
	OriginalLanguage *string    // movies.original_language (nullable)
	Budget           *int64     // movies.budget (nullable)
	Revenue          *int64     // movies.revenue (nullable)
	Status           *string    // movies.status (nullable)
	LastUpdated      time.Time  // movies.last_updated
	CreatedAt        time.Time  // movies.created_at
	Genres           []string   // materialized genre names (joined, not a column)
}
