package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"          // .env loader for local development
	"github.com/labstack/echo/v4"       // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/mykytaKRAS/MovieRecommendationApp/internal/config"
	"github.com/mykytaKRAS/MovieRecommendationApp/internal/database"
	"github.com/mykytaKRAS/MovieRecommendationApp/internal/handler"
	"github.com/mykytaKRAS/MovieRecommendationApp/internal/middleware"
	"github.com/mykytaKRAS/MovieRecommendationApp/internal/repository"
	"github.com/mykytaKRAS/MovieRecommendationApp/internal/router"
)

func main() {
	// A missing .env is fine: in containers the variables come from the
	// environment itself.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Init(ctx, db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	// Optional redis-backed rate limiting; without redis the limiter is
	// a pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis not configured, rate limiting disabled")
	} else {
		defer rdb.Close()
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	movies := repository.NewMovieRepo(db)
	genres := repository.NewGenreRepo(db)
	users := repository.NewUserRepo(db)
	interactions := repository.NewUserMovieRepo(db)

	router.RegisterRoutes(e, cfg.Env,
		&handler.MovieHandler{Movies: movies},
		&handler.GenreHandler{Genres: genres, Movies: movies},
		&handler.UserHandler{Users: users},
		&handler.UserMovieHandler{Users: users, Movies: movies, Interactions: interactions},
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
