// Package repository implements data access for movies, genres, users
// and user-movie interactions over an injected *sql.DB. Sentinel
// errors defined here let handlers distinguish failure classes:
// not-found errors map to HTTP 404 and the *Exists conflict errors
// map to HTTP 409. Conflicts are detected from MySQL duplicate-key
// errors (1062) rather than only from pre-flight checks, so two
// concurrent inserts cannot both slip past an existence check.
package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Not-found sentinels. Handlers translate these into 404 responses,
// distinct from an empty collection.
var (
	ErrMovieNotFound       = errors.New("movie not found")
	ErrGenreNotFound       = errors.New("genre not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrInteractionNotFound = errors.New("interaction not found")
)

// Conflict sentinels, raised when a unique key rejects a write.
var (
	ErrDuplicateTmdbID   = errors.New("movie with this tmdb id already exists")
	ErrUsernameExists    = errors.New("username already exists")
	ErrEmailExists       = errors.New("email already exists")
	ErrInteractionExists = errors.New("interaction for this movie already exists")
)

// isDuplicate reports whether err is a MySQL duplicate-key error
// (1062), optionally on the named unique key.
func isDuplicate(err error, key string) bool {
	var me *mysql.MySQLError
	if !errors.As(err, &me) || me.Number != 1062 {
		return false
	}
	return key == "" || strings.Contains(me.Message, key)
}
