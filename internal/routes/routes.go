package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/miyakp098/reversi/internal/routes/api"
	"github.com/miyakp098/reversi/internal/routes/ws"
)

func rootHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "reversi",
	})
}

func SetupRoutes(app *fiber.App) {
	// Serve API routes
	api.SetupRoutes(app)

	// Serve websocket
	ws.SetupRoutes(app)

	// Serve root page
	app.Get("/", rootHandler)
}
