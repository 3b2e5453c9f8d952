package repository

import (
	"context"
	"database/sql"

	"github.com/mykytaKRAS/MovieRecommendationApp/internal/model"
)

type GenreRepo struct{ db *sql.DB }

func NewGenreRepo(db *sql.DB) *GenreRepo { return &GenreRepo{db: db} }

// ListAll returns every genre sorted by name.
func (r *GenreRepo) ListAll(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name FROM genres ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Genre, 0, 19)
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// GetByID returns the genre together with the number of movies linked
// to it.
func (r *GenreRepo) GetByID(ctx context.Context, id int) (model.Genre, int64, error) {
	var g model.Genre
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT g.id, g.name, COUNT(mg.movie_id)
		FROM genres g
		LEFT JOIN movie_genres mg ON mg.genre_id = g.id
		WHERE g.id = ?
		GROUP BY g.id`, id).Scan(&g.ID, &g.Name, &count)
	if err == sql.ErrNoRows {
		return model.Genre{}, 0, ErrGenreNotFound
	}
	if err != nil {
		return model.Genre{}, 0, err
	}
	return g, count, nil
}
