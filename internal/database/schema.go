package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements creates the full relational schema. Every statement
// is IF NOT EXISTS so that Init can run on every start. Uniqueness
// (tmdb_id, username, email, (user_id, movie_id)) and cascade deletes
// live in the schema itself, not only in application checks, so
// concurrent writers cannot race past a pre-flight existence check.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS genres (
		id   INT          NOT NULL,
		name VARCHAR(100) NOT NULL,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS movies (
		id                BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		tmdb_id           BIGINT          NOT NULL,
		title             VARCHAR(500)    NOT NULL,
		overview          TEXT            NULL,
		release_year      INT             NULL,
		runtime           INT             NULL,
		poster_path       VARCHAR(255)    NULL,
		vote_average      DECIMAL(3,1)    NULL,
		vote_count        INT             NULL,
		original_language VARCHAR(10)     NULL,
		budget            BIGINT          NULL,
		revenue           BIGINT          NULL,
		status            VARCHAR(50)     NULL,
		last_updated      DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		created_at        DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_movies_tmdb_id (tmdb_id),
		KEY idx_movies_release_year (release_year),
		KEY idx_movies_vote_average (vote_average)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS movie_genres (
		movie_id BIGINT UNSIGNED NOT NULL,
		genre_id INT             NOT NULL,
		PRIMARY KEY (movie_id, genre_id),
		KEY idx_movie_genres_movie_id (movie_id),
		KEY idx_movie_genres_genre_id (genre_id),
		CONSTRAINT fk_movie_genres_movie FOREIGN KEY (movie_id)
			REFERENCES movies (id) ON DELETE CASCADE,
		CONSTRAINT fk_movie_genres_genre FOREIGN KEY (genre_id)
			REFERENCES genres (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		username      VARCHAR(50)     NOT NULL,
		email         VARCHAR(255)    NOT NULL,
		password_hash VARCHAR(255)    NOT NULL,
		role          VARCHAR(20)     NOT NULL DEFAULT 'user',
		created_at    DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_username (username),
		UNIQUE KEY uq_users_email (email),
		KEY idx_users_role (role)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS user_movies (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id     BIGINT UNSIGNED NOT NULL,
		movie_id    BIGINT UNSIGNED NOT NULL,
		status      VARCHAR(20)     NOT NULL DEFAULT 'watched',
		user_rating DECIMAL(3,1)    NULL,
		review      TEXT            NULL,
		watched_at  DATETIME        NULL,
		created_at  DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_user_movies_user_movie (user_id, movie_id),
		KEY idx_user_movies_user_id (user_id),
		KEY idx_user_movies_movie_id (movie_id),
		KEY idx_user_movies_status (status),
		KEY idx_user_movies_user_rating (user_rating),
		KEY idx_user_movies_watched_at (watched_at),
		CONSTRAINT fk_user_movies_user FOREIGN KEY (user_id)
			REFERENCES users (id) ON DELETE CASCADE,
		CONSTRAINT fk_user_movies_movie FOREIGN KEY (movie_id)
			REFERENCES movies (id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// seedGenres is the fixed TMDB genre taxonomy. IDs are external and
// must exist before any movie can be linked to a genre.
var seedGenres = []struct {
	ID   int
	Name string
}{
	{28, "Action"},
	{12, "Adventure"},
	{16, "Animation"},
	{35, "Comedy"},
	{80, "Crime"},
	{99, "Documentary"},
	{18, "Drama"},
	{10751, "Family"},
	{14, "Fantasy"},
	{36, "History"},
	{27, "Horror"},
	{10402, "Music"},
	{9648, "Mystery"},
	{10749, "Romance"},
	{878, "Science Fiction"},
	{10770, "TV Movie"},
	{53, "Thriller"},
	{10752, "War"},
	{37, "Western"},
}

// Init creates the schema and seeds the genre taxonomy. Both steps are
// idempotent: tables are created only if absent and seed rows use
// INSERT IGNORE, so re-running on every start is safe.
func Init(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	for _, g := range seedGenres {
		if _, err := db.ExecContext(ctx,
			"INSERT IGNORE INTO genres (id, name) VALUES (?,?)",
			g.ID, g.Name); err != nil {
			return fmt.Errorf("seed genre %d: %w", g.ID, err)
		}
	}
	return nil
}
