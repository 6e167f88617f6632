package ws

import (
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/miyakp098/reversi/internal/match"
	"github.com/miyakp098/reversi/internal/services"
	"github.com/miyakp098/reversi/internal/ws"
)

func handleWs(c *websocket.Conn) {
	services := c.Locals("services").(*services.Services) //nolint: errcheck
	matches := c.Locals("matches").(*match.Manager)       //nolint: errcheck

	h := ws.NewHandler(c, services, matches)
	err := h.Handle()
	if err != nil {
		slog.Error("ws handle error", "error", err)
	}
}

// SetupRoutes sets up the routes for the websocket.
func SetupRoutes(app *fiber.App) {
	app.Get("/ws", websocket.New(handleWs))
}
