package ws

import (
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/arena/internal/session"
	"github.com/lk16/flippy/arena/internal/ws"
)

func handleWs(c *websocket.Conn) {
	manager := c.Locals("manager").(*session.Manager) //nolint: errcheck

	h := ws.NewHandler(c, manager)
	err := h.Handle()
	if err != nil {
		slog.Debug("ws connection closed", "error", err)
	}
}

// SetupRoutes sets up the routes for the websocket.
func SetupRoutes(app *fiber.App) {
	app.Get("/ws", websocket.New(handleWs))
}
