package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/mykytaKRAS/MovieRecommendationApp/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes wires every endpoint of the API onto the provided
// Echo instance. Routes are grouped by resource: genres, movies, users
// and the per-user movie lists nested under users.
func RegisterRoutes(e *echo.Echo, env string, mh *handler.MovieHandler, gh *handler.GenreHandler, uh *handler.UserHandler, umh *handler.UserMovieHandler) {
	// Liveness endpoints for load balancers and monitoring.
	e.GET("/", handler.Root)
	e.GET("/health", handler.Health(env))

	// Genre catalogue. The id routes include the movies belonging to a
	// genre, paginated.
	e.GET("/genres", gh.List)
	e.GET("/genres/:id", gh.Get)
	e.GET("/genres/:id/movies", gh.MoviesByGenre)

	// Movie catalogue. The search and tmdb lookups are registered
	// before /movies/:id so Echo does not treat "search" as an id.
	e.GET("/movies", mh.List)
	e.GET("/movies/search", mh.Search)
	e.GET("/movies/tmdb/:tmdbId", mh.GetByTmdb)
	e.GET("/movies/:id", mh.Get)
	e.POST("/movies", mh.Create)
	e.PUT("/movies/:id", mh.Update)
	e.DELETE("/movies/:id", mh.Delete)

	// User accounts.
	e.GET("/users", uh.List)
	e.GET("/users/:id", uh.Get)
	e.POST("/users", uh.Create)
	e.PUT("/users/:id", uh.Update)
	e.DELETE("/users/:id", uh.Delete)

	// A user's personal movie list: watched, watchlist and favorites.
	e.GET("/users/:id/movies", umh.List)
	e.POST("/users/:id/movies", umh.Create)
	e.PUT("/users/:id/movies/:movieId", umh.Update)
	e.DELETE("/users/:id/movies/:movieId", umh.Delete)
}
