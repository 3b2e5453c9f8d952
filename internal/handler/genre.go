package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mykytaKRAS/MovieRecommendationApp/internal/repository"
)

type GenreHandler struct {
	Genres GenreStore
	Movies MovieStore
}

type genreItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// genreMovieItem is the reduced movie shape used inside a genre
// listing.
type genreMovieItem struct {
	ID          uint64   `json:"id"`
	TmdbID      int64    `json:"tmdbId"`
	Title       string   `json:"title"`
	ReleaseYear *int     `json:"releaseYear"`
	VoteAverage *float64 `json:"voteAverage"`
	PosterPath  *string  `json:"posterPath"`
}

// List handles GET /genres, name-sorted.
func (h *GenreHandler) List(c echo.Context) error {
	genres, err := h.Genres.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]genreItem, 0, len(genres))
	for _, g := range genres {
		out = append(out, genreItem{ID: g.ID, Name: g.Name})
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /genres/:id with the linked movie count.
func (h *GenreHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	g, count, err := h.Genres.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrGenreNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "genre not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":          g.ID,
		"name":        g.Name,
		"moviesCount": count,
	})
}

// MoviesByGenre handles GET /genres/:id/movies: the genre's movies,
// best rated first. An unknown genre id is a 404, not an empty page.
func (h *GenreHandler) MoviesByGenre(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	g, _, err := h.Genres.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrGenreNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "genre not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	p := parsePage(c)
	movies, total, err := h.Movies.ListByGenre(ctx, id, p)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	items := make([]genreMovieItem, 0, len(movies))
	for _, m := range movies {
		items = append(items, genreMovieItem{
			ID:          m.ID,
			TmdbID:      m.TmdbID,
			Title:       m.Title,
			ReleaseYear: m.ReleaseYear,
			VoteAverage: m.VoteAverage,
			PosterPath:  m.PosterPath,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"genre":      genreItem{ID: g.ID, Name: g.Name},
		"data":       items,
		"page":       p.Number,
		"pageSize":   p.Size,
		"total":      total,
		"totalPages": repository.TotalPages(total, p.Size),
	})
}
