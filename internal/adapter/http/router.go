package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

// NewApp builds the fiber application with all routes mounted.
func NewApp(h *Handler, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cv-amplify",
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(log))
	app.Use(Sessions(h.sessions))

	app.Get("/health", h.Health)
	app.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/resume", fiber.StatusFound) })

	api := app.Group("/api")
	api.Post("/improve", h.Improve)
	api.Get("/filters", h.Filters)

	app.Get("/resume", h.Studio)
	app.Post("/resume", h.Studio)
	app.Get("/auth/login", h.Login)
	app.Get("/auth/logout", h.Logout)
	return app
}
