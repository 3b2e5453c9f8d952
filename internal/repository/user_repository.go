package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/mykytaKRAS/MovieRecommendationApp/internal/model"
)

type UserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// UserStats aggregates a user's interaction rows: per-status counts
// and the average of the non-null ratings.
type UserStats struct {
	MoviesWatched     int64
	MoviesInWatchlist int64
	FavoriteMovies    int64
	AverageRating     *float64
}

// List returns all users without password columns.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, username, email, role, created_at, updated_at FROM users ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx,
		"SELECT id, username, email, role, created_at, updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Username, &u.Email, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, ErrUserNotFound
	}
	return u, err
}

// Stats computes the watched/watchlist/favorite counts and average
// rating for a user. AVG skips NULL ratings; a user with no rated
// movies gets a nil average.
func (r *UserRepo) Stats(ctx context.Context, id uint64) (UserStats, error) {
	var s UserStats
	err := r.db.QueryRowContext(ctx, `SELECT
			COALESCE(SUM(status = 'watched'), 0),
			COALESCE(SUM(status = 'watchlist'), 0),
			COALESCE(SUM(status = 'favorite'), 0),
			AVG(user_rating)
		FROM user_movies WHERE user_id = ?`, id).
		Scan(&s.MoviesWatched, &s.MoviesInWatchlist, &s.FavoriteMovies, &s.AverageRating)
	return s, err
}

// UsernameTaken reports whether another user already holds the
// username. excludeID lets updates keep the caller's own name.
func (r *UserRepo) UsernameTaken(ctx context.Context, username string, excludeID uint64) (bool, error) {
	return r.taken(ctx, "username", username, excludeID)
}

// EmailTaken reports whether another user already holds the email.
func (r *UserRepo) EmailTaken(ctx context.Context, email string, excludeID uint64) (bool, error) {
	return r.taken(ctx, "email", email, excludeID)
}

func (r *UserRepo) taken(ctx context.Context, column, value string, excludeID uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM users WHERE "+column+"=? AND id<>? LIMIT 1",
		strings.TrimSpace(value), excludeID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts the user and fills in its id. The unique keys on
// username and email are the source of truth; the pre-flight Taken
// checks only shape friendlier messages.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash, role) VALUES (?,?,?,?)",
		u.Username, u.Email, u.PasswordHash, u.Role)
	if err != nil {
		if isDuplicate(err, "uq_users_email") {
			return ErrEmailExists
		}
		if isDuplicate(err, "") {
			return ErrUsernameExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// Update replaces username, email and role and refreshes updated_at.
// The password column is not part of the update surface.
func (r *UserRepo) Update(ctx context.Context, u *model.User) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE users SET username=?, email=?, role=?, updated_at=CURRENT_TIMESTAMP WHERE id=?",
		u.Username, u.Email, u.Role, u.ID)
	if err != nil {
		if isDuplicate(err, "uq_users_email") {
			return ErrEmailExists
		}
		if isDuplicate(err, "") {
			return ErrUsernameExists
		}
	}
	return err
}

// Delete removes the user; interaction rows cascade away with it.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}
