package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/miyakp098/reversi/internal/repository"
)

// GetMatchStats returns aggregate results per source pairing.
func GetMatchStats(c *fiber.Ctx) error {
	repo := repository.NewMatchRepository(c)
	stats, err := repo.GetMatchStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
