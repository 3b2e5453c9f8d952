package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mykytaKRAS/MovieRecommendationApp/internal/model"
	"github.com/mykytaKRAS/MovieRecommendationApp/internal/repository"
)

// UserMovieHandler serves a user's personal movie list: membership
// status, rating, review and watch date per movie.
type UserMovieHandler struct {
	Users        UserStore
	Movies       MovieStore
	Interactions UserMovieStore
}

// addUserMovieRequest is the body for POST /users/:id/movies. The
// movie is referenced by its external tmdb id.
type addUserMovieRequest struct {
	TmdbID     int64      `json:"tmdbId"`
	Status     string     `json:"status"`
	UserRating *float64   `json:"userRating"`
	Review     *string    `json:"review"`
	WatchedAt  *time.Time `json:"watchedAt"`
}

// updateUserMovieRequest is the body for PUT /users/:id/movies/:movieId.
// Nil fields leave the stored value unchanged.
type updateUserMovieRequest struct {
	Status     *string    `json:"status"`
	UserRating *float64   `json:"userRating"`
	Review     *string    `json:"review"`
	WatchedAt  *time.Time `json:"watchedAt"`
}

type userMovieItem struct {
	ID          uint64     `json:"id"`
	MovieID     uint64     `json:"movieId"`
	TmdbID      int64      `json:"tmdbId"`
	MovieTitle  string     `json:"movieTitle"`
	PosterPath  *string    `json:"posterPath"`
	ReleaseYear *int       `json:"releaseYear"`
	Status      string     `json:"status"`
	UserRating  *float64   `json:"userRating"`
	Review      *string    `json:"review"`
	WatchedAt   *time.Time `json:"watchedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func validRating(r *float64) bool {
	return r == nil || (*r >= 0 && *r <= 10)
}

// List handles GET /users/:id/movies with an optional status filter.
func (h *UserMovieHandler) List(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	status := strings.TrimSpace(c.QueryParam("status"))
	if status != "" && !model.ValidStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be watched, watchlist or favorite"})
	}

	ctx := c.Request().Context()
	if _, err := h.Users.GetByID(ctx, userID); err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	p := parsePage(c)
	rows, total, err := h.Interactions.ListByUser(ctx, userID, status, p)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	items := make([]userMovieItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, userMovieItem(r))
	}
	return c.JSON(http.StatusOK, paged(items, p, total))
}

// Create handles POST /users/:id/movies. A second interaction for the
// same (user, movie) pair is a conflict, never a silent merge; the
// update route is the explicit path for changing an existing record.
func (h *UserMovieHandler) Create(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body addUserMovieRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	status := strings.TrimSpace(body.Status)
	if status == "" {
		status = model.StatusWatched
	}
	if !model.ValidStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be watched, watchlist or favorite"})
	}
	if !validRating(body.UserRating) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 0 and 10"})
	}

	ctx := c.Request().Context()
	if _, err := h.Users.GetByID(ctx, userID); err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	movie, err := h.Movies.GetByTmdbID(ctx, body.TmdbID)
	if err != nil {
		if err == repository.ErrMovieNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	um := model.UserMovie{
		UserID:     userID,
		MovieID:    movie.ID,
		Status:     status,
		UserRating: body.UserRating,
		Review:     body.Review,
		WatchedAt:  body.WatchedAt,
	}
	if err := h.Interactions.Create(ctx, &um); err != nil {
		if err == repository.ErrInteractionExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "interaction for this movie already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not add movie"})
	}
	c.Response().Header().Set(echo.HeaderLocation,
		fmt.Sprintf("/users/%d/movies/%d", userID, movie.ID))
	return c.JSON(http.StatusCreated, userMovieItem{
		ID:          um.ID,
		MovieID:     movie.ID,
		TmdbID:      movie.TmdbID,
		MovieTitle:  movie.Title,
		PosterPath:  movie.PosterPath,
		ReleaseYear: movie.ReleaseYear,
		Status:      um.Status,
		UserRating:  um.UserRating,
		Review:      um.Review,
		WatchedAt:   um.WatchedAt,
		CreatedAt:   um.CreatedAt,
	})
}

// Update handles PUT /users/:id/movies/:movieId. Only the supplied
// fields change.
func (h *UserMovieHandler) Update(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	movieID, err := parseID(c, "movieId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	var body updateUserMovieRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Status != nil && !model.ValidStatus(*body.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be watched, watchlist or favorite"})
	}
	if !validRating(body.UserRating) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 0 and 10"})
	}

	ctx := c.Request().Context()
	um, err := h.Interactions.GetByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		if err == repository.ErrInteractionNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "interaction not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	if body.Status != nil {
		um.Status = *body.Status
	}
	if body.UserRating != nil {
		um.UserRating = body.UserRating
	}
	if body.Review != nil {
		um.Review = body.Review
	}
	if body.WatchedAt != nil {
		um.WatchedAt = body.WatchedAt
	}
	if err := h.Interactions.Update(ctx, &um); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update interaction"})
	}

	updated, err := h.Interactions.GetByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":         updated.ID,
		"movieId":    updated.MovieID,
		"status":     updated.Status,
		"userRating": updated.UserRating,
		"review":     updated.Review,
		"watchedAt":  updated.WatchedAt,
		"updatedAt":  updated.UpdatedAt,
	})
}

// Delete handles DELETE /users/:id/movies/:movieId.
func (h *UserMovieHandler) Delete(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	movieID, err := parseID(c, "movieId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	if err := h.Interactions.Delete(c.Request().Context(), userID, movieID); err != nil {
		if err == repository.ErrInteractionNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "interaction not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not remove movie"})
	}
	return c.NoContent(http.StatusNoContent)
}
