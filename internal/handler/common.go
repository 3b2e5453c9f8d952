package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mykytaKRAS/MovieRecommendationApp/internal/repository"
)

// parsePage reads page/pageSize query parameters; anything missing or
// malformed falls back to the defaults (page 1, 20 items).
func parsePage(c echo.Context) repository.Page {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("pageSize"))
	return repository.NewPage(page, size)
}

// parseID parses a numeric path parameter.
func parseID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// pagedResponse is the uniform envelope for every paginated listing:
// totalPages is always ceil(total/pageSize).
type pagedResponse struct {
	Data       any   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func paged(data any, p repository.Page, total int64) pagedResponse {
	return pagedResponse{
		Data:       data,
		Page:       p.Number,
		PageSize:   p.Size,
		Total:      total,
		TotalPages: repository.TotalPages(total, p.Size),
	}
}

// Root answers the unauthenticated root path with static liveness text.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "Movie Recommendation API is running!")
}

// Health reports liveness for load balancers and monitoring.
func Health(env string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":      "healthy",
			"timestamp":   time.Now().UTC(),
			"environment": env,
		})
	}
}
