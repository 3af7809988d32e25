package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/arena/internal/middleware"
	"github.com/lk16/flippy/arena/internal/session"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Game routes
	apiGroup.Post("/games", NewGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Post("/games/:id/moves", PlayMove)
	apiGroup.Post("/games/:id/pass", Pass)
	apiGroup.Delete("/games/:id", DeleteGame)

	// Stats routes
	apiGroup.Get("/stats", middleware.AuthOrToken(), GetStats)
}

func getManager(c *fiber.Ctx) *session.Manager {
	return c.Locals("manager").(*session.Manager) //nolint: errcheck
}
