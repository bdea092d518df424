package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/aidosk/ride-hail-api/internal/config"
	"github.com/aidosk/ride-hail-api/internal/database"
	"github.com/aidosk/ride-hail-api/internal/handler"
	"github.com/aidosk/ride-hail-api/internal/middleware"
	"github.com/aidosk/ride-hail-api/internal/queue"
	"github.com/aidosk/ride-hail-api/internal/repository"
	"github.com/aidosk/ride-hail-api/internal/router"
)

func main() {
	// .env is a local-dev convenience; absence is fine.
	_ = godotenv.Load()

	// Config is loaded exactly once; a missing JWT secret or database
	// setting kills the process here, before the listener exists.
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: nil disables the rate limiter and response cache.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting and caching disabled")
	}

	users := repository.NewUserRepo(db)
	drivers := repository.NewDriverRepo(db)
	rides := repository.NewRideRepo(db)

	authH := handler.NewAuthHandler(cfg, users)
	userH := handler.NewUserHandler(users)
	driverH := handler.NewDriverHandler(drivers)
	rideH := handler.NewRideHandler(rides)

	// Background consumer mirrors ride requests into logs/rides.log; it
	// reconnects on its own and never takes the API down with it.
	go func() {
		if err := queue.StartRideConsumer(); err != nil {
			log.Printf("ride consumer stopped: %v", err)
		}
	}()

	e := echo.New()

	// One limiter shared by every surface. The router places it after JWTAuth
	// on protected routes so buckets key on the authenticated user; public
	// routes get it directly and bucket by IP.
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	router.RegisterRoutes(e, driverH, rdb, limit)
	router.RegisterAuth(e, authH, limit)
	router.RegisterAPI(e, cfg, authH, userH, driverH, rideH, limit)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
