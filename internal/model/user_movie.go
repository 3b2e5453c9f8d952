package model

import "time"

// Interaction status values accepted in `user_movies.status`.
const (
	StatusWatched   = "watched"
	StatusWatchlist = "watchlist"
	StatusFavorite  = "favorite"
)

// ValidStatus reports whether s is one of the accepted interaction
// statuses.
func ValidStatus(s string) bool {
	return s == StatusWatched || s == StatusWatchlist || s == StatusFavorite
}

// UserMovie is a user's personal interaction record with a movie:
// list membership, rating, review and watch date. The (UserID,
// MovieID) pair carries a unique index, so a user has at most one
// record per movie; rows cascade away with either parent.
//
// Fields:
//  ID         – primary key identifier.
//  UserID     – owning user.
//  MovieID    – referenced movie.
//  Status     – "watched", "watchlist" or "favorite".
//  UserRating – personal score, one fractional digit (nullable).
//  Review     – free-text review (nullable).
//  WatchedAt  – when the user watched the movie (nullable).
//  CreatedAt  – timestamp of creation.
//  UpdatedAt  – timestamp of last update.
type UserMovie struct {
	ID         uint64     // user_movies.id
	UserID     uint64     // user_movies.user_id
	MovieID    uint64     // user_movies.movie_id
	Status     string     // user_movies.status
	UserRating *float64   // user_movies.user_rating (nullable, DECIMAL(3,1), 0.0-10.0)
	Review     *string    // user_movies.review (nullable)
	WatchedAt  *time.Time // user_movies.watched_at (nullable)
	CreatedAt  time.Time  // user_movies.created_at
	UpdatedAt  time.Time  // user_movies.updated_at
}
