package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/mykytaKRAS/MovieRecommendationApp/internal/model"
)

// movieColumns is the column list shared by every movie query. Genre
// names are materialized in the same statement with GROUP_CONCAT so
// list responses carry names, never bare genre ids.
const movieColumns = `m.id, m.tmdb_id, m.title, m.overview, m.release_year, m.runtime,
	m.poster_path, m.vote_average, m.vote_count, m.original_language,
	m.budget, m.revenue, m.status, m.last_updated, m.created_at`

type MovieRepo struct{ db *sql.DB }

func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{db: db} }

// List returns one page of the catalog, newest first.
func (r *MovieRepo) List(ctx context.Context, p Page) ([]model.Movie, int64, error) {
	return r.list(ctx, "1=1", "m.created_at DESC", nil, p)
}

// Search returns movies whose title contains the query, case
// insensitively, best rated first. Blank-query validation happens in
// the handler before this is reached.
func (r *MovieRepo) Search(ctx context.Context, query string, p Page) ([]model.Movie, int64, error) {
	cond := "LOWER(m.title) LIKE ?"
	args := []any{"%" + strings.ToLower(query) + "%"}
	return r.list(ctx, cond, "m.vote_average DESC", args, p)
}

// ListByGenre returns movies linked to the genre, best rated first.
// Callers verify the genre exists so an unknown id is a 404, not an
// empty page.
func (r *MovieRepo) ListByGenre(ctx context.Context, genreID int, p Page) ([]model.Movie, int64, error) {
	cond := "EXISTS (SELECT 1 FROM movie_genres x WHERE x.movie_id = m.id AND x.genre_id = ?)"
	return r.list(ctx, cond, "m.vote_average DESC", []any{genreID}, p)
}

func (r *MovieRepo) list(ctx context.Context, cond, order string, args []any, p Page) ([]model.Movie, int64, error) {
	var total int64
	countSQL := "SELECT COUNT(*) FROM movies m WHERE " + cond
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := `SELECT ` + movieColumns + `,
			GROUP_CONCAT(g.name ORDER BY g.name) AS genre_names
		FROM movies m
		LEFT JOIN movie_genres mg ON mg.movie_id = m.id
		LEFT JOIN genres g ON g.id = mg.genre_id
		WHERE ` + cond + `
		GROUP BY m.id
		ORDER BY ` + order + `
		LIMIT ? OFFSET ?`

	argsData := append(append([]any{}, args...), p.Limit(), p.Offset())

	rows, err := r.db.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.Movie, 0, p.Limit())
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// GetByID fetches the full movie record by internal id.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (model.Movie, error) {
	return r.get(ctx, "m.id = ?", id)
}

// GetByTmdbID fetches the full movie record by external id.
func (r *MovieRepo) GetByTmdbID(ctx context.Context, tmdbID int64) (model.Movie, error) {
	return r.get(ctx, "m.tmdb_id = ?", tmdbID)
}

func (r *MovieRepo) get(ctx context.Context, cond string, arg any) (model.Movie, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+movieColumns+`,
			GROUP_CONCAT(g.name ORDER BY g.name) AS genre_names
		FROM movies m
		LEFT JOIN movie_genres mg ON mg.movie_id = m.id
		LEFT JOIN genres g ON g.id = mg.genre_id
		WHERE `+cond+`
		GROUP BY m.id
		LIMIT 1`, arg)
	m, err := scanMovie(row)
	if err == sql.ErrNoRows {
		return model.Movie{}, ErrMovieNotFound
	}
	return m, err
}

// Create inserts the movie and its genre links in one transaction.
// Genre ids that do not exist are skipped silently; a duplicate
// tmdb_id surfaces as ErrDuplicateTmdbID from the unique key.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie, genreIDs []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `INSERT INTO movies
			(tmdb_id, title, overview, release_year, runtime, poster_path, vote_average,
			 vote_count, original_language, budget, revenue, status)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		m.TmdbID, m.Title, m.Overview, m.ReleaseYear, m.Runtime, m.PosterPath,
		m.VoteAverage, m.VoteCount, m.OriginalLanguage, m.Budget, m.Revenue, m.Status)
	if err != nil {
		if isDuplicate(err, "") {
			return ErrDuplicateTmdbID
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)

	if err := linkGenres(ctx, tx, m.ID, genreIDs); err != nil {
		return err
	}
	return tx.Commit()
}

// Update replaces the mutable fields and the entire genre link set in
// one transaction, so concurrent readers never observe a partially
// replaced join set. last_updated is refreshed; created_at is not
// touched. Absence is the caller's concern (GetByID first).
func (r *MovieRepo) Update(ctx context.Context, m *model.Movie, genreIDs []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE movies SET
			title=?, overview=?, release_year=?, runtime=?, poster_path=?,
			vote_average=?, vote_count=?, original_language=?, budget=?,
			revenue=?, status=?, last_updated=CURRENT_TIMESTAMP
		WHERE id=?`,
		m.Title, m.Overview, m.ReleaseYear, m.Runtime, m.PosterPath,
		m.VoteAverage, m.VoteCount, m.OriginalLanguage, m.Budget, m.Revenue,
		m.Status, m.ID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM movie_genres WHERE movie_id=?", m.ID); err != nil {
		return err
	}
	if err := linkGenres(ctx, tx, m.ID, genreIDs); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes the movie; its genre links and user interaction rows
// go with it via ON DELETE CASCADE.
func (r *MovieRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM movies WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMovieNotFound
	}
	return nil
}

// linkGenres inserts join rows for the genre ids that exist in the
// genres table. Unknown ids are ignored rather than rejected;
// INSERT IGNORE keeps duplicate ids in the input from violating the
// composite key.
func linkGenres(ctx context.Context, tx *sql.Tx, movieID uint64, genreIDs []int) error {
	for _, gid := range genreIDs {
		var one int
		err := tx.QueryRowContext(ctx, "SELECT 1 FROM genres WHERE id=?", gid).Scan(&one)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT IGNORE INTO movie_genres (movie_id, genre_id) VALUES (?,?)",
			movieID, gid); err != nil {
			return err
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(s rowScanner) (model.Movie, error) {
	var m model.Movie
	var names sql.NullString
	err := s.Scan(&m.ID, &m.TmdbID, &m.Title, &m.Overview, &m.ReleaseYear, &m.Runtime,
		&m.PosterPath, &m.VoteAverage, &m.VoteCount, &m.OriginalLanguage,
		&m.Budget, &m.Revenue, &m.Status, &m.LastUpdated, &m.CreatedAt, &names)
	if err != nil {
		return m, err
	}
	m.Genres = []string{}
	if names.Valid && names.String != "" {
		m.Genres = strings.Split(names.String, ",")
	}
	return m, nil
}
