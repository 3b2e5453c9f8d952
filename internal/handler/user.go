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

type UserHandler struct {
	Users UserStore
}

// userRequest is the shared body for POST /users and PUT /users/:id.
// On update the password field is ignored; the password column is not
// part of the update surface.
type userRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type userItem struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// userDetail extends userItem with interaction aggregates.
type userDetail struct {
	userItem
	MoviesWatched     int64    `json:"moviesWatched"`
	MoviesInWatchlist int64    `json:"moviesInWatchlist"`
	FavoriteMovies    int64    `json:"favoriteMovies"`
	AverageRating     *float64 `json:"averageRating"`
}

func toUserItem(u model.User) userItem {
	return userItem{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// List handles GET /users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.Users.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]userItem, 0, len(users))
	for _, u := range users {
		out = append(out, toUserItem(u))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /users/:id with watched/watchlist/favorite counts
// and the average of the user's non-null ratings.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	stats, err := h.Users.Stats(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, userDetail{
		userItem:          toUserItem(u),
		MoviesWatched:     stats.MoviesWatched,
		MoviesInWatchlist: stats.MoviesInWatchlist,
		FavoriteMovies:    stats.FavoriteMovies,
		AverageRating:     stats.AverageRating,
	})
}

// Create handles POST /users. Username and email are checked against
// the whole table; the unique keys back the checks up under
// concurrency.
func (h *UserHandler) Create(c echo.Context) error {
	var body userRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Username = strings.TrimSpace(body.Username)
	body.Email = strings.TrimSpace(body.Email)
	if body.Username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username is required"})
	}
	if body.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}
	if strings.TrimSpace(body.Password) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password is required"})
	}
	role := strings.TrimSpace(body.Role)
	if role == "" {
		role = "user"
	}

	ctx := c.Request().Context()
	if taken, err := h.Users.EmailTaken(ctx, body.Email, 0); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	} else if taken {
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
	}
	if taken, err := h.Users.UsernameTaken(ctx, body.Username, 0); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	} else if taken {
		return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
	}

	u := model.User{
		Username: body.Username,
		Email:    body.Email,
		// Stored verbatim: the upstream system never hashed passwords and
		// the observable behavior is preserved on purpose. See DESIGN.md.
		PasswordHash: body.Password,
		Role:         role,
	}
	if err := h.Users.Create(ctx, &u); err != nil {
		switch err {
		case repository.ErrEmailExists:
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		case repository.ErrUsernameExists:
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create user"})
	}

	created, err := h.Users.GetByID(ctx, u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/users/%d", created.ID))
	return c.JSON(http.StatusCreated, toUserItem(created))
}

// Update handles PUT /users/:id. The duplicate checks exclude the
// record itself, so a user may keep their own username and email.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body userRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Username = strings.TrimSpace(body.Username)
	body.Email = strings.TrimSpace(body.Email)
	if body.Username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username is required"})
	}
	if body.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}
	role := strings.TrimSpace(body.Role)
	if role == "" {
		role = "user"
	}

	ctx := c.Request().Context()
	if _, err := h.Users.GetByID(ctx, id); err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if taken, err := h.Users.EmailTaken(ctx, body.Email, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	} else if taken {
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
	}
	if taken, err := h.Users.UsernameTaken(ctx, body.Username, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	} else if taken {
		return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
	}

	u := model.User{ID: id, Username: body.Username, Email: body.Email, Role: role}
	if err := h.Users.Update(ctx, &u); err != nil {
		switch err {
		case repository.ErrEmailExists:
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		case repository.ErrUsernameExists:
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update user"})
	}

	updated, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":        updated.ID,
		"username":  updated.Username,
		"email":     updated.Email,
		"role":      updated.Role,
		"updatedAt": updated.UpdatedAt,
	})
}

// Delete handles DELETE /users/:id; interaction rows cascade away.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Users.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete user"})
	}
	return c.NoContent(http.StatusNoContent)
}
