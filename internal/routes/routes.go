package routes

import (
	"time"

	"github.com/AbhiraajV/credate/internal/config"
	"github.com/AbhiraajV/credate/internal/handlers"
	"github.com/AbhiraajV/credate/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	reportHandler *handlers.ReportHandler,
	accessHandler *handlers.AccessHandler,
	searchHandler *handlers.SearchHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Everything below requires an authenticated user; services receive the
	// user id explicitly, never ambient session state. The guard is applied
	// per route so it cannot leak onto the public endpoints above.
	jwt := middleware.JWTProtected(cfg)

	api.Post("/auth/logout", jwt, authHandler.Logout)
	api.Delete("/auth/account", jwt, authHandler.DeleteAccount)

	// Reports
	api.Post("/reports", jwt, reportHandler.Create)
	api.Get("/reports/mine", jwt, reportHandler.ListMine)
	api.Get("/reports/:id", jwt, reportHandler.GetByID)
	api.Put("/reports/:id", jwt, reportHandler.Update)
	api.Delete("/reports/:id", jwt, reportHandler.Delete)

	// Access requests
	api.Post("/access-requests", jwt, accessHandler.Request)
	api.Get("/access-requests/received", jwt, accessHandler.ListReceived)
	api.Get("/access-requests/sent", jwt, accessHandler.ListSent)
	api.Post("/access-requests/:id/approve", jwt, accessHandler.Approve)
	api.Post("/access-requests/:id/deny", jwt, accessHandler.Deny)

	// Searches
	api.Post("/searches", jwt, searchHandler.Create)
	api.Get("/searches/mine", jwt, searchHandler.ListMine)
	api.Get("/searches/:id", jwt, searchHandler.GetByID)
	api.Put("/searches/:id", jwt, searchHandler.Update)
	api.Delete("/searches/:id", jwt, searchHandler.Delete)
}
