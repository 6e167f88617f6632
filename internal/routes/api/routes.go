package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/miyakp098/reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Match routes
	apiGroup.Post("/matches", CreateMatch)
	apiGroup.Get("/matches/:id", GetMatch)
	apiGroup.Post("/matches/:id/moves", SubmitMove)
	apiGroup.Delete("/matches/:id", AbandonMatch)
	apiGroup.Get("/matches/:id/hints", GetHints)

	// Stats routes
	apiGroup.Get("/stats", middleware.BasicAuth(), GetMatchStats)
}
