package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/mykytaKRAS/MovieRecommendationApp/internal/model"
)

type UserMovieRepo struct{ db *sql.DB }

func NewUserMovieRepo(db *sql.DB) *UserMovieRepo { return &UserMovieRepo{db: db} }

// UserMovieRow is an interaction joined with the movie columns a list
// response needs, so handlers never chase movie ids.
type UserMovieRow struct {
	ID          uint64
	MovieID     uint64
	TmdbID      int64
	MovieTitle  string
	PosterPath  *string
	ReleaseYear *int
	Status      string
	UserRating  *float64
	Review      *string
	WatchedAt   *time.Time
	CreatedAt   time.Time
}

// ListByUser returns one page of a user's interactions, newest first,
// optionally filtered by status. Callers verify the user exists.
func (r *UserMovieRepo) ListByUser(ctx context.Context, userID uint64, status string, p Page) ([]UserMovieRow, int64, error) {
	cond := "um.user_id = ?"
	args := []any{userID}
	if status != "" {
		cond += " AND um.status = ?"
		args = append(args, status)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM user_movies um WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := `SELECT um.id, um.movie_id, m.tmdb_id, m.title, m.poster_path,
			m.release_year, um.status, um.user_rating, um.review, um.watched_at,
			um.created_at
		FROM user_movies um
		JOIN movies m ON m.id = um.movie_id
		WHERE ` + cond + `
		ORDER BY um.created_at DESC
		LIMIT ? OFFSET ?`
	argsData := append(append([]any{}, args...), p.Limit(), p.Offset())

	rows, err := r.db.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]UserMovieRow, 0, p.Limit())
	for rows.Next() {
		var d UserMovieRow
		if err := rows.Scan(&d.ID, &d.MovieID, &d.TmdbID, &d.MovieTitle, &d.PosterPath,
			&d.ReleaseYear, &d.Status, &d.UserRating, &d.Review, &d.WatchedAt,
			&d.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// GetByUserAndMovie fetches the single interaction for the pair.
func (r *UserMovieRepo) GetByUserAndMovie(ctx context.Context, userID, movieID uint64) (model.UserMovie, error) {
	var um model.UserMovie
	err := r.db.QueryRowContext(ctx, `SELECT id, user_id, movie_id, status, user_rating,
			review, watched_at, created_at, updated_at
		FROM user_movies WHERE user_id=? AND movie_id=? LIMIT 1`,
		userID, movieID).
		Scan(&um.ID, &um.UserID, &um.MovieID, &um.Status, &um.UserRating,
			&um.Review, &um.WatchedAt, &um.CreatedAt, &um.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.UserMovie{}, ErrInteractionNotFound
	}
	return um, err
}

// Create inserts the interaction and fills in its id. The unique
// (user_id, movie_id) key rejects a second record for the same pair;
// the conflict is never merged into the existing row.
func (r *UserMovieRepo) Create(ctx context.Context, um *model.UserMovie) error {
	res, err := r.db.ExecContext(ctx, `INSERT INTO user_movies
			(user_id, movie_id, status, user_rating, review, watched_at)
		VALUES (?,?,?,?,?,?)`,
		um.UserID, um.MovieID, um.Status, um.UserRating, um.Review, um.WatchedAt)
	if err != nil {
		if isDuplicate(err, "") {
			return ErrInteractionExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	um.ID = uint64(id)
	return nil
}

// Update rewrites the mutable interaction fields and refreshes
// updated_at. Absence surfaces as ErrInteractionNotFound from the
// caller's preceding GetByUserAndMovie.
func (r *UserMovieRepo) Update(ctx context.Context, um *model.UserMovie) error {
	_, err := r.db.ExecContext(ctx, `UPDATE user_movies SET
			status=?, user_rating=?, review=?, watched_at=?, updated_at=CURRENT_TIMESTAMP
		WHERE user_id=? AND movie_id=?`,
		um.Status, um.UserRating, um.Review, um.WatchedAt, um.UserID, um.MovieID)
	return err
}

// Delete removes the interaction for the pair.
func (r *UserMovieRepo) Delete(ctx context.Context, userID, movieID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM user_movies WHERE user_id=? AND movie_id=?", userID, movieID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInteractionNotFound
	}
	return nil
}
