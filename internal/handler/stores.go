// Package handler exposes the HTTP surface of the movie catalog.
// Handlers bind and validate requests, delegate to the store
// interfaces below, and translate repository sentinel errors into
// status codes: validation failures are 400, missing resources 404,
// uniqueness conflicts 409.
package handler

import (
	"context"

	"github.com/mykytaKRAS/MovieRecommendationApp/internal/model"
	"github.com/mykytaKRAS/MovieRecommendationApp/internal/repository"
)

// MovieStore is the movie persistence surface consumed by handlers.
// *repository.MovieRepo implements it; tests substitute mocks.
type MovieStore interface {
	List(ctx context.Context, p repository.Page) ([]model.Movie, int64, error)
	Search(ctx context.Context, query string, p repository.Page) ([]model.Movie, int64, error)
	ListByGenre(ctx context.Context, genreID int, p repository.Page) ([]model.Movie, int64, error)
	GetByID(ctx context.Context, id uint64) (model.Movie, error)
	GetByTmdbID(ctx context.Context, tmdbID int64) (model.Movie, error)
	Create(ctx context.Context, m *model.Movie, genreIDs []int) error
	Update(ctx context.Context, m *model.Movie, genreIDs []int) error
	Delete(ctx context.Context, id uint64) error
}

// GenreStore is the genre persistence surface.
type GenreStore interface {
	ListAll(ctx context.Context) ([]model.Genre, error)
	GetByID(ctx context.Context, id int) (model.Genre, int64, error)
}

// UserStore is the user persistence surface.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
	Stats(ctx context.Context, id uint64) (repository.UserStats, error)
	UsernameTaken(ctx context.Context, username string, excludeID uint64) (bool, error)
	EmailTaken(ctx context.Context, email string, excludeID uint64) (bool, error)
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id uint64) error
}

// UserMovieStore is the interaction persistence surface.
type UserMovieStore interface {
	ListByUser(ctx context.Context, userID uint64, status string, p repository.Page) ([]repository.UserMovieRow, int64, error)
	GetByUserAndMovie(ctx context.Context, userID, movieID uint64) (model.UserMovie, error)
	Create(ctx context.Context, um *model.UserMovie) error
	Update(ctx context.Context, um *model.UserMovie) error
	Delete(ctx context.Context, userID, movieID uint64) error
}
