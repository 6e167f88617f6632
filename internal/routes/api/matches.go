package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/miyakp098/reversi/internal/match"
	"github.com/miyakp098/reversi/internal/models"
	"github.com/miyakp098/reversi/internal/othello"
	"github.com/miyakp098/reversi/internal/repository"
)

func matchManager(c *fiber.Ctx) *match.Manager {
	return c.Locals("matches").(*match.Manager) //nolint: errcheck
}

// CreateMatch creates a new match from the requested source presets. AI
// turns are played before responding, so an AI-vs-AI match comes back
// finished.
func CreateMatch(c *fiber.Ctx) error {
	var payload models.CreateMatchRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	m, err := matchManager(c).Create(c.Context(), payload.Black, payload.White)
	if err != nil {
		if errors.Is(err, match.ErrUnknownPreset) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	state := models.MatchStateFrom(m.Snapshot())
	storeMatchState(c, state)

	return c.Status(fiber.StatusCreated).JSON(state)
}

// GetMatch returns the full state of a match.
func GetMatch(c *fiber.Ctx) error {
	m, err := matchManager(c).Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.MatchStateFrom(m.Snapshot()))
}

// SubmitMove applies a human move to a match and plays AI replies.
func SubmitMove(c *fiber.Ctx) error {
	var payload models.MoveRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	cell := othello.Cell{Row: payload.Row, Col: payload.Col}
	if !cell.InBounds() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": othello.ErrInvalidCoordinate.Error(),
		})
	}

	m, err := matchManager(c).Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	snap, err := m.SubmitMove(c.Context(), cell)
	if err != nil {
		switch {
		case errors.Is(err, othello.ErrIllegalMove),
			errors.Is(err, othello.ErrGameOver),
			errors.Is(err, match.ErrNotHumanTurn):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	state := models.MatchStateFrom(snap)
	storeMatchState(c, state)

	return c.Status(fiber.StatusOK).JSON(state)
}

// AbandonMatch tears a match down without recording a result. This is the
// adapter's "no further input" signal.
func AbandonMatch(c *fiber.Ctx) error {
	id := c.Params("id")

	manager := matchManager(c)
	if _, err := manager.Get(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	manager.Remove(id)

	repo := repository.NewMatchRepository(c)
	if err := repo.DeleteSnapshot(c.Context(), id); err != nil {
		slog.Warn("Failed to delete match snapshot", "match", id, "error", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetHints returns the current legal moves with their flip counts.
func GetHints(c *fiber.Ctx) error {
	m, err := matchManager(c).Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	state := models.MatchStateFrom(m.Snapshot())

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"turn":        state.Turn,
		"legal_moves": state.LegalMoves,
	})
}

// storeMatchState caches the snapshot in redis and records the result once
// the match is finished. Snapshot failures are logged, not surfaced: redis
// is a read-side cache here, the live match is authoritative.
func storeMatchState(c *fiber.Ctx, state models.MatchState) {
	repo := repository.NewMatchRepository(c)

	if err := repo.SaveSnapshot(c.Context(), state); err != nil {
		slog.Warn("Failed to save match snapshot", "match", state.ID, "error", err)
	}

	if !state.Finished {
		return
	}

	m, err := matchManager(c).Get(state.ID)
	if err != nil {
		return
	}

	if err := repo.SaveResult(c.Context(), models.MatchRecordFrom(m.Snapshot())); err != nil {
		slog.Error("Failed to save match result", "match", state.ID, "error", err)
	}
}
