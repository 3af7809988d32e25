package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/arena/internal/routes/api"
	"github.com/lk16/flippy/arena/internal/routes/ws"
)

func rootHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"name": "flippy-arena"})
}

func SetupRoutes(app *fiber.App) {
	// Serve API routes
	api.SetupRoutes(app)

	// Serve websocket
	ws.SetupRoutes(app)

	// Serve root page
	app.Get("/", rootHandler)
}
