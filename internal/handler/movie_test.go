package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mykytaKRAS/MovieRecommendationApp/internal/model"
	"github.com/mykytaKRAS/MovieRecommendationApp/internal/repository"
)

func ptr[T any](v T) *T { return &v }

func movieRouter(store *mockMovieStore) *echo.Echo {
	h := &MovieHandler{Movies: store}
	e := echo.New()
	e.GET("/movies", h.List)
	e.GET("/movies/search", h.Search)
	e.GET("/movies/tmdb/:tmdbId", h.GetByTmdb)
	e.GET("/movies/:id", h.Get)
	e.POST("/movies", h.Create)
	e.PUT("/movies/:id", h.Update)
	e.DELETE("/movies/:id", h.Delete)
	return e
}

func TestMovieList(t *testing.T) {
	t.Run("pagination envelope", func(t *testing.T) {
		store := new(mockMovieStore)
		movies := []model.Movie{
			{ID: 1, TmdbID: 550, Title: "Fight Club", Genres: []string{"Drama"}},
			{ID: 2, TmdbID: 603, Title: "The Matrix", Genres: []string{"Action", "Science Fiction"}},
		}
		store.On("List", mock.Anything, repository.Page{Number: 2, Size: 20}).
			Return(movies, int64(45), nil)

		rec := perform(movieRouter(store), http.MethodGet, "/movies?page=2&pageSize=20", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, float64(2), body["page"])
		assert.Equal(t, float64(20), body["pageSize"])
		assert.Equal(t, float64(45), body["total"])
		assert.Equal(t, float64(3), body["totalPages"])
		data := body["data"].([]any)
		require.Len(t, data, 2)
		first := data[0].(map[string]any)
		assert.Equal(t, "Fight Club", first["title"])
		assert.Equal(t, float64(550), first["tmdbId"])
		store.AssertExpectations(t)
	})

	t.Run("defaults applied to malformed parameters", func(t *testing.T) {
		store := new(mockMovieStore)
		store.On("List", mock.Anything, repository.Page{Number: 1, Size: 20}).
			Return([]model.Movie{}, int64(0), nil)

		rec := perform(movieRouter(store), http.MethodGet, "/movies?page=abc&pageSize=-5", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, float64(1), body["page"])
		assert.Equal(t, float64(20), body["pageSize"])
		assert.Equal(t, float64(0), body["totalPages"])
		store.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		store := new(mockMovieStore)
		store.On("List", mock.Anything, mock.Anything).
			Return([]model.Movie{}, int64(0), errors.New("connection refused"))

		rec := perform(movieRouter(store), http.MethodGet, "/movies", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestMovieGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		store := new(mockMovieStore)
		movie := model.Movie{
			ID:          10,
			TmdbID:      550,
			Title:       "Fight Club",
			ReleaseYear: ptr(1999),
			VoteAverage: ptr(8.4),
			Status:      ptr("Released"),
			Genres:      []string{"Drama", "Thriller"},
		}
		store.On("GetByID", mock.Anything, uint64(10)).Return(movie, nil)

		rec := perform(movieRouter(store), http.MethodGet, "/movies/10", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "Fight Club", body["title"])
		assert.Equal(t, float64(1999), body["releaseYear"])
		assert.Equal(t, "Released", body["status"])
		assert.Equal(t, []any{"Drama", "Thriller"}, body["genres"])
		store.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		store := new(mockMovieStore)
		store.On("GetByID", mock.Anything, uint64(999)).
			Return(model.Movie{}, repository.ErrMovieNotFound)

		rec := perform(movieRouter(store), http.MethodGet, "/movies/999", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "movie not found", decode(t, rec)["error"])
	})

	t.Run("invalid id", func(t *testing.T) {
		store := new(mockMovieStore)

		rec := perform(movieRouter(store), http.MethodGet, "/movies/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		store.AssertNotCalled(t, "GetByID")
	})
}

func TestMovieGetByTmdb(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		store := new(mockMovieStore)
		store.On("GetByTmdbID", mock.Anything, int64(550)).
			Return(model.Movie{ID: 10, TmdbID: 550, Title: "Fight Club", Genres: []string{}}, nil)

		rec := perform(movieRouter(store), http.MethodGet, "/movies/tmdb/550", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Fight Club", decode(t, rec)["title"])
		store.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		store := new(mockMovieStore)
		store.On("GetByTmdbID", mock.Anything, int64(1)).
			Return(model.Movie{}, repository.ErrMovieNotFound)

		rec := perform(movieRouter(store), http.MethodGet, "/movies/tmdb/1", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMovieSearch(t *testing.T) {
	t.Run("blank query rejected", func(t *testing.T) {
		store := new(mockMovieStore)

		for _, target := range []string{"/movies/search", "/movies/search?query=", "/movies/search?query=%20%20"} {
			rec := perform(movieRouter(store), http.MethodGet, target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "search query is required", decode(t, rec)["error"])
		}
		store.AssertNotCalled(t, "Search")
	})

	t.Run("query echoed with results", func(t *testing.T) {
		store := new(mockMovieStore)
		movies := []model.Movie{{ID: 10, TmdbID: 550, Title: "Fight Club", Genres: []string{"Drama"}}}
		store.On("Search", mock.Anything, "fight", repository.Page{Number: 1, Size: 20}).
			Return(movies, int64(1), nil)

		rec := perform(movieRouter(store), http.MethodGet, "/movies/search?query=fight", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "fight", body["query"])
		assert.Equal(t, float64(1), body["total"])
		assert.Equal(t, float64(1), body["totalPages"])
		store.AssertExpectations(t)
	})

	t.Run("surrounding whitespace trimmed", func(t *testing.T) {
		store := new(mockMovieStore)
		store.On("Search", mock.Anything, "matrix", mock.Anything).
			Return([]model.Movie{}, int64(0), nil)

		rec := perform(movieRouter(store), http.MethodGet, "/movies/search?query=%20matrix%20", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		store.AssertExpectations(t)
	})
}

func TestMovieCreate(t *testing.T) {
	t.Run("created with location header", func(t *testing.T) {
		store := new(mockMovieStore)
		store.On("Create", mock.Anything, mock.AnythingOfType("*model.Movie"), []int{18, 53}).
			Run(func(args mock.Arguments) {
				args.Get(1).(*model.Movie).ID = 7
			}).
			Return(nil)

		body := `{"tmdbId":550,"title":"Fight Club","releaseYear":1999,"voteAverage":8.4,"genreIds":[18,53]}`
		rec := perform(movieRouter(store), http.MethodPost, "/movies", body)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/movies/7", rec.Header().Get(echo.HeaderLocation))
		resp := decode(t, rec)
		assert.Equal(t, float64(7), resp["id"])
		assert.Equal(t, float64(550), resp["tmdbId"])
		assert.Equal(t, "Fight Club", resp["title"])
		store.AssertExpectations(t)
	})

	t.Run("title required", func(t *testing.T) {
		store := new(mockMovieStore)

		rec := perform(movieRouter(store), http.MethodPost, "/movies", `{"tmdbId":550,"title":"   "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "title is required", decode(t, rec)["error"])
		store.AssertNotCalled(t, "Create")
	})

	t.Run("tmdb id required", func(t *testing.T) {
		store := new(mockMovieStore)

		rec := perform(movieRouter(store), http.MethodPost, "/movies", `{"title":"Fight Club"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "valid TMDb ID is required", decode(t, rec)["error"])
		store.AssertNotCalled(t, "Create")
	})

	t.Run("duplicate tmdb id", func(t *testing.T) {
		store := new(mockMovieStore)
		store.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(repository.ErrDuplicateTmdbID)

		rec := perform(movieRouter(store), http.MethodPost, "/movies", `{"tmdbId":550,"title":"Fight Club"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "movie with this TMDb ID already exists", decode(t, rec)["error"])
	})
}

func TestMovieUpdate(t *testing.T) {
	t.Run("tmdb id immutable", func(t *testing.T) {
		store := new(mockMovieStore)
		store.On("GetByID", mock.Anything, uint64(7)).
			Return(model.Movie{ID: 7, TmdbID: 550, Title: "Fight Club"}, nil)
		store.On("Update", mock.Anything, mock.MatchedBy(func(m *model.Movie) bool {
			return m.ID == 7 && m.TmdbID == 550 && m.Title == "Fight Club (Remastered)"
		}), []int{18}).Return(nil)

		body := `{"tmdbId":99999,"title":"Fight Club (Remastered)","genreIds":[18]}`
		rec := perform(movieRouter(store), http.MethodPut, "/movies/7", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, float64(550), resp["tmdbId"])
		assert.Equal(t, "Fight Club (Remastered)", resp["title"])
		store.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		store := new(mockMovieStore)
		store.On("GetByID", mock.Anything, uint64(999)).
			Return(model.Movie{}, repository.ErrMovieNotFound)

		rec := perform(movieRouter(store), http.MethodPut, "/movies/999", `{"title":"X"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		store.AssertNotCalled(t, "Update")
	})

	t.Run("title required", func(t *testing.T) {
		store := new(mockMovieStore)

		rec := perform(movieRouter(store), http.MethodPut, "/movies/7", `{"title":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		store.AssertNotCalled(t, "Update")
	})
}

func TestMovieDelete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		store := new(mockMovieStore)
		store.On("Delete", mock.Anything, uint64(7)).Return(nil)

		rec := perform(movieRouter(store), http.MethodDelete, "/movies/7", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
		store.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		store := new(mockMovieStore)
		store.On("Delete", mock.Anything, uint64(999)).Return(repository.ErrMovieNotFound)

		rec := perform(movieRouter(store), http.MethodDelete, "/movies/999", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
