package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mykytaKRAS/MovieRecommendationApp/internal/model"
	"github.com/mykytaKRAS/MovieRecommendationApp/internal/repository"
)

// mockMovieStore is a testify mock of MovieStore.
type mockMovieStore struct {
	mock.Mock
}

func (m *mockMovieStore) List(ctx context.Context, p repository.Page) ([]model.Movie, int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).([]model.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *mockMovieStore) Search(ctx context.Context, query string, p repository.Page) ([]model.Movie, int64, error) {
	args := m.Called(ctx, query, p)
	return args.Get(0).([]model.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *mockMovieStore) ListByGenre(ctx context.Context, genreID int, p repository.Page) ([]model.Movie, int64, error) {
	args := m.Called(ctx, genreID, p)
	return args.Get(0).([]model.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *mockMovieStore) GetByID(ctx context.Context, id uint64) (model.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Movie), args.Error(1)
}

func (m *mockMovieStore) GetByTmdbID(ctx context.Context, tmdbID int64) (model.Movie, error) {
	args := m.Called(ctx, tmdbID)
	return args.Get(0).(model.Movie), args.Error(1)
}

func (m *mockMovieStore) Create(ctx context.Context, mv *model.Movie, genreIDs []int) error {
	args := m.Called(ctx, mv, genreIDs)
	return args.Error(0)
}

func (m *mockMovieStore) Update(ctx context.Context, mv *model.Movie, genreIDs []int) error {
	args := m.Called(ctx, mv, genreIDs)
	return args.Error(0)
}

func (m *mockMovieStore) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockGenreStore is a testify mock of GenreStore.
type mockGenreStore struct {
	mock.Mock
}

func (m *mockGenreStore) ListAll(ctx context.Context) ([]model.Genre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Genre), args.Error(1)
}

func (m *mockGenreStore) GetByID(ctx context.Context, id int) (model.Genre, int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Genre), args.Get(1).(int64), args.Error(2)
}

// mockUserStore is a testify mock of UserStore.
type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *mockUserStore) GetByID(ctx context.Context, id uint64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserStore) Stats(ctx context.Context, id uint64) (repository.UserStats, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.UserStats), args.Error(1)
}

func (m *mockUserStore) UsernameTaken(ctx context.Context, username string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, username, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) EmailTaken(ctx context.Context, email string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserStore) Update(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserStore) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockUserMovieStore is a testify mock of UserMovieStore.
type mockUserMovieStore struct {
	mock.Mock
}

func (m *mockUserMovieStore) ListByUser(ctx context.Context, userID uint64, status string, p repository.Page) ([]repository.UserMovieRow, int64, error) {
	args := m.Called(ctx, userID, status, p)
	return args.Get(0).([]repository.UserMovieRow), args.Get(1).(int64), args.Error(2)
}

func (m *mockUserMovieStore) GetByUserAndMovie(ctx context.Context, userID, movieID uint64) (model.UserMovie, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Get(0).(model.UserMovie), args.Error(1)
}

func (m *mockUserMovieStore) Create(ctx context.Context, um *model.UserMovie) error {
	args := m.Called(ctx, um)
	return args.Error(0)
}

func (m *mockUserMovieStore) Update(ctx context.Context, um *model.UserMovie) error {
	args := m.Called(ctx, um)
	return args.Error(0)
}

func (m *mockUserMovieStore) Delete(ctx context.Context, userID, movieID uint64) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}
