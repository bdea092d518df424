// Package router wires HTTP routes to handlers and decides which gates run
// in front of each one. Authentication and authorization live entirely here
// and in the middleware package; handlers assume the gates already ran.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/aidosk/ride-hail-api/internal/config"
	"github.com/aidosk/ride-hail-api/internal/handler"
	"github.com/aidosk/ride-hail-api/internal/middleware"
	"github.com/aidosk/ride-hail-api/internal/model"
)

// RegisterRoutes registers the unauthenticated surface: the health check and
// the public driver browse endpoint. Driver listing gets the Redis response
// cache since the fleet changes far less often than riders ask about it.
// The limiter keys these routes by IP; no identity exists here.
func RegisterRoutes(e *echo.Echo, d *handler.DriverHandler, rdb *redis.Client, limit echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)
	e.GET("/v1/drivers", d.List, limit, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
}

// RegisterAuth registers the two public credential endpoints. Neither gate
// runs in front of them: nobody has a token yet.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limit echo.MiddlewareFunc) {
	g := e.Group("/v1/auth", limit)
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
}

// RegisterAPI registers every protected route. The order of gates is fixed:
// JWTAuth authenticates (401), then the limiter buckets by the identity it
// attached, then RequireRole authorizes (403). Routes without a RequireRole
// accept any authenticated role.
func RegisterAPI(e *echo.Echo, cfg config.Config, a *handler.AuthHandler, u *handler.UserHandler, d *handler.DriverHandler, r *handler.RideHandler, limit echo.MiddlewareFunc) {
	api := e.Group("/v1", middleware.JWTAuth(cfg.JWTSecret), limit)

	api.GET("/me", a.Me)

	// Account administration is ADMIN-only: listing exposes emails and role
	// patches change privileges.
	api.GET("/users", u.List, middleware.RequireRole(model.RoleAdmin))
	api.PATCH("/users/:id", u.Update, middleware.RequireRole(model.RoleAdmin))
	api.DELETE("/admin/users/:id", u.Delete, middleware.RequireRole(model.RoleAdmin))

	api.POST("/drivers", d.Create, middleware.RequireRole(model.RoleAdmin))
	api.PATCH("/drivers/:id", d.Update, middleware.RequireRole(model.RoleDriver, model.RoleAdmin))

	api.POST("/rides", r.Create, middleware.RequireRole(model.RoleCustomer))
	api.GET("/rides", r.List)
	api.PATCH("/rides/:id", r.UpdateStatus, middleware.RequireRole(model.RoleDriver, model.RoleAdmin))
	api.DELETE("/rides/:id", r.Delete, middleware.RequireRole(model.RoleAdmin))
}
