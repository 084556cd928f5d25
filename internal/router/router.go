package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/activity-platform-api/internal/config"
	"github.com/noah-isme/activity-platform-api/internal/handler"
	"github.com/noah-isme/activity-platform-api/internal/middleware"
	"github.com/noah-isme/activity-platform-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ActivityHandler *handler.ActivityHandler
	JWTMiddleware   fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	api.Get("/metrics", observability.MetricsHandler())

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.ActivityHandler != nil {
		deps.ActivityHandler.Register(api.Group("/activities"))

		admin := app.Group("/api/v1/admin/activities",
			jwtMiddleware,
			middleware.RequireRole("admin"),
			middleware.RateLimit("admin-activities", 30, time.Minute),
		)
		deps.ActivityHandler.RegisterAdmin(admin)
	}
}
