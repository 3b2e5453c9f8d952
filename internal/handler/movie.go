package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mykytaKRAS/MovieRecommendationApp/internal/model"
	"github.com/mykytaKRAS/MovieRecommendationApp/internal/repository"
)

type MovieHandler struct {
	Movies MovieStore
}

// movieRequest is the shared body for POST /movies and PUT /movies/:id.
// Optional columns are pointers so absent fields persist as NULL.
type movieRequest struct {
	TmdbID           int64    `json:"tmdbId"`
	Title            string   `json:"title"`
	Overview         *string  `json:"overview"`
	ReleaseYear      *int     `json:"releaseYear"`
	Runtime          *int     `json:"runtime"`
	PosterPath       *string  `json:"posterPath"`
	VoteAverage      *float64 `json:"voteAverage"`
	VoteCount        *int     `json:"voteCount"`
	OriginalLanguage *string  `json:"originalLanguage"`
	Budget           *int64   `json:"budget"`
	Revenue          *int64   `json:"revenue"`
	Status           *string  `json:"status"`
	GenreIDs         []int    `json:"genreIds"`
}

// movieItem is the list/search row shape.
type movieItem struct {
	ID          uint64   `json:"id"`
	TmdbID      int64    `json:"tmdbId"`
	Title       string   `json:"title"`
	Overview    *string  `json:"overview"`
	ReleaseYear *int     `json:"releaseYear"`
	Runtime     *int     `json:"runtime"`
	PosterPath  *string  `json:"posterPath"`
	VoteAverage *float64 `json:"voteAverage"`
	VoteCount   *int     `json:"voteCount"`
	Genres      []string `json:"genres"`
}

// movieDetail extends movieItem with the remaining catalog columns.
type movieDetail struct {
	movieItem
	OriginalLanguage *string `json:"originalLanguage"`
	Budget           *int64  `json:"budget"`
	Revenue          *int64  `json:"revenue"`
	Status           *string `json:"status"`
}

// movieSummary is the echo body for create/update responses.
type movieSummary struct {
	ID          uint64   `json:"id"`
	TmdbID      int64    `json:"tmdbId"`
	Title       string   `json:"title"`
	ReleaseYear *int     `json:"releaseYear"`
	VoteAverage *float64 `json:"voteAverage"`
}

func toMovieItem(m model.Movie) movieItem {
	return movieItem{
		ID:          m.ID,
		TmdbID:      m.TmdbID,
		Title:       m.Title,
		Overview:    m.Overview,
		ReleaseYear: m.ReleaseYear,
		Runtime:     m.Runtime,
		PosterPath:  m.PosterPath,
		VoteAverage: m.VoteAverage,
		VoteCount:   m.VoteCount,
		Genres:      m.Genres,
	}
}

func toMovieDetail(m model.Movie) movieDetail {
	return movieDetail{
		movieItem:        toMovieItem(m),
		OriginalLanguage: m.OriginalLanguage,
		Budget:           m.Budget,
		Revenue:          m.Revenue,
		Status:           m.Status,
	}
}

func toMovieSummary(m model.Movie) movieSummary {
	return movieSummary{
		ID:          m.ID,
		TmdbID:      m.TmdbID,
		Title:       m.Title,
		ReleaseYear: m.ReleaseYear,
		VoteAverage: m.VoteAverage,
	}
}

// List handles GET /movies: the catalog page by page, newest first.
func (h *MovieHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	p := parsePage(c)
	movies, total, err := h.Movies.List(ctx, p)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	items := make([]movieItem, 0, len(movies))
	for _, m := range movies {
		items = append(items, toMovieItem(m))
	}
	return c.JSON(http.StatusOK, paged(items, p, total))
}

// Get handles GET /movies/:id.
func (h *MovieHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	m, err := h.Movies.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toMovieDetail(m))
}

// GetByTmdb handles GET /movies/tmdb/:tmdbId.
func (h *MovieHandler) GetByTmdb(c echo.Context) error {
	tmdbID, err := strconv.ParseInt(c.Param("tmdbId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid tmdb id"})
	}
	m, err := h.Movies.GetByTmdbID(c.Request().Context(), tmdbID)
	if err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toMovieDetail(m))
}

// Search handles GET /movies/search. A blank or whitespace-only query
// is a validation failure, never a full-catalog listing.
func (h *MovieHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("query"))
	if query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "search query is required"})
	}
	p := parsePage(c)
	movies, total, err := h.Movies.Search(c.Request().Context(), query, p)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	items := make([]movieItem, 0, len(movies))
	for _, m := range movies {
		items = append(items, toMovieItem(m))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":       items,
		"query":      query,
		"page":       p.Number,
		"pageSize":   p.Size,
		"total":      total,
		"totalPages": repository.TotalPages(total, p.Size),
	})
}

// Create handles POST /movies. Unknown genre ids in the body are
// ignored rather than rejected; a duplicate tmdb id is a conflict.
func (h *MovieHandler) Create(c echo.Context) error {
	var body movieRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Title = strings.TrimSpace(body.Title)
	if body.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	if body.TmdbID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "valid TMDb ID is required"})
	}

	m := model.Movie{
		TmdbID:           body.TmdbID,
		Title:            body.Title,
		Overview:         body.Overview,
		ReleaseYear:      body.ReleaseYear,
		Runtime:          body.Runtime,
		PosterPath:       body.PosterPath,
		VoteAverage:      body.VoteAverage,
		VoteCount:        body.VoteCount,
		OriginalLanguage: body.OriginalLanguage,
		Budget:           body.Budget,
		Revenue:          body.Revenue,
		Status:           body.Status,
	}
	if err := h.Movies.Create(c.Request().Context(), &m, body.GenreIDs); err != nil {
		if err == repository.ErrDuplicateTmdbID {
			return c.JSON(http.StatusConflict, echo.Map{"error": "movie with this TMDb ID already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create movie"})
	}
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/movies/%d", m.ID))
	return c.JSON(http.StatusCreated, toMovieSummary(m))
}

// Update handles PUT /movies/:id as a full replace of the mutable
// fields; the genre link set is replaced wholesale with the supplied
// ids. tmdb_id and created_at are immutable.
func (h *MovieHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body movieRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Title = strings.TrimSpace(body.Title)
	if body.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}

	ctx := c.Request().Context()
	existing, err := h.Movies.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	m := model.Movie{
		ID:               existing.ID,
		TmdbID:           existing.TmdbID,
		Title:            body.Title,
		Overview:         body.Overview,
		ReleaseYear:      body.ReleaseYear,
		Runtime:          body.Runtime,
		PosterPath:       body.PosterPath,
		VoteAverage:      body.VoteAverage,
		VoteCount:        body.VoteCount,
		OriginalLanguage: body.OriginalLanguage,
		Budget:           body.Budget,
		Revenue:          body.Revenue,
		Status:           body.Status,
	}
	if err := h.Movies.Update(ctx, &m, body.GenreIDs); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update movie"})
	}
	return c.JSON(http.StatusOK, toMovieSummary(m))
}

// Delete handles DELETE /movies/:id. Genre links and interaction rows
// are removed by the cascade.
func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Movies.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete movie"})
	}
	return c.NoContent(http.StatusNoContent)
}
