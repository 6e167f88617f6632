package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/miyakp098/reversi/internal/config"
	"github.com/miyakp098/reversi/internal/match"
	"github.com/miyakp098/reversi/internal/models"
	"github.com/miyakp098/reversi/internal/repository"
	"github.com/miyakp098/reversi/internal/services"
)

func main() {
	count := flag.Int("n", 100, "Number of matches to play")
	black := flag.String("black", match.PresetHard, "Move source preset for black (easy or hard)")
	white := flag.String("white", match.PresetEasy, "Move source preset for white (easy or hard)")
	flag.Parse()

	config.SetLogLevel()

	if *count <= 0 {
		slog.Error("Match count must be positive", "got", *count)
		os.Exit(1)
	}

	if !match.IsAIPreset(*black) || !match.IsAIPreset(*white) {
		slog.Error("Selfplay requires AI presets for both colors", "black", *black, "white", *white)
		os.Exit(1)
	}

	cfg := config.LoadSelfPlayConfig()

	postgres, err := services.InitPostgres(cfg.PostgresURL)
	if err != nil {
		slog.Error("Failed to connect to postgres", "error", err)
		os.Exit(1)
	}

	repo := repository.NewMatchRepositoryFromServices(&services.Services{Postgres: postgres})

	ctx := context.Background()

	if err := repo.EnsureSchema(ctx); err != nil {
		slog.Error("Failed to ensure database schema", "error", err)
		os.Exit(1)
	}

	tally := make(map[string]int)

	for i := 0; i < *count; i++ {
		// AI-vs-AI matches play out entirely inside New.
		m, err := match.New(ctx, uuid.New().String(), *black, *white)
		if err != nil {
			slog.Error("Match failed", "index", i, "error", err)
			os.Exit(1)
		}

		snap := m.Snapshot()
		record := models.MatchRecordFrom(snap)

		if err := repo.SaveResult(ctx, record); err != nil {
			slog.Error("Failed to save match result", "match", m.ID, "error", err)
			os.Exit(1)
		}

		tally[record.Outcome]++

		slog.Debug("Match finished",
			"index", i,
			"match", m.ID,
			"outcome", record.Outcome,
			"black_score", record.BlackScore,
			"white_score", record.WhiteScore,
			"moves", record.MovesPlayed,
		)
	}

	slog.Info("Selfplay finished",
		"matches", *count,
		"black", *black,
		"white", *white,
		"black_wins", tally["black"],
		"white_wins", tally["white"],
		"draws", tally["draw"],
	)
}
