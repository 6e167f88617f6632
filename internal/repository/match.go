package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/miyakp098/reversi/internal/models"
	"github.com/miyakp098/reversi/internal/services"
)

const (
	matchesKey = "matches"
	matchesTTL = 2 * time.Hour
)

// ErrSnapshotNotFound is returned when no snapshot exists for a match ID.
var ErrSnapshotNotFound = errors.New("match snapshot not found")

// schema is applied at startup; postgres only holds finished matches.
const schema = `
CREATE TABLE IF NOT EXISTS match_results (
	id UUID PRIMARY KEY,
	black_source TEXT NOT NULL,
	white_source TEXT NOT NULL,
	black_score INT NOT NULL,
	white_score INT NOT NULL,
	outcome TEXT NOT NULL,
	moves_played INT NOT NULL,
	finished_at TIMESTAMPTZ NOT NULL
);
`

// MatchRepository handles storage for match snapshots and results: live
// snapshots go to a redis hash with a TTL, finished matches to postgres.
type MatchRepository struct {
	services *services.Services
}

// NewMatchRepository creates a MatchRepository from a request context.
func NewMatchRepository(c *fiber.Ctx) *MatchRepository {
	return &MatchRepository{
		services: c.Locals("services").(*services.Services), //nolint: errcheck
	}
}

func NewMatchRepositoryFromServices(services *services.Services) *MatchRepository {
	return &MatchRepository{
		services: services,
	}
}

// EnsureSchema creates the match_results table if it does not exist.
func (repo *MatchRepository) EnsureSchema(ctx context.Context) error {
	if _, err := repo.services.Postgres.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("error ensuring schema: %w", err)
	}
	return nil
}

// SaveSnapshot stores the match state in the redis snapshot hash.
func (repo *MatchRepository) SaveSnapshot(ctx context.Context, state models.MatchState) error {
	jsonData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("error marshaling match state: %w", err)
	}

	redisConn := repo.services.Redis

	if err := redisConn.HSet(ctx, matchesKey, state.ID, jsonData).Err(); err != nil {
		return fmt.Errorf("error storing match snapshot: %w", err)
	}

	if err := redisConn.Expire(ctx, matchesKey, matchesTTL).Err(); err != nil {
		return fmt.Errorf("error setting snapshot TTL: %w", err)
	}

	return nil
}

// LoadSnapshot fetches a match snapshot from redis.
func (repo *MatchRepository) LoadSnapshot(ctx context.Context, id string) (models.MatchState, error) {
	jsonData, err := repo.services.Redis.HGet(ctx, matchesKey, id).Result()
	if errors.Is(err, redis.Nil) {
		return models.MatchState{}, ErrSnapshotNotFound
	}
	if err != nil {
		return models.MatchState{}, fmt.Errorf("error loading match snapshot: %w", err)
	}

	var state models.MatchState
	if err := json.Unmarshal([]byte(jsonData), &state); err != nil {
		return models.MatchState{}, fmt.Errorf("error unmarshaling match state: %w", err)
	}

	return state, nil
}

// DeleteSnapshot removes a match snapshot from redis.
func (repo *MatchRepository) DeleteSnapshot(ctx context.Context, id string) error {
	if err := repo.services.Redis.HDel(ctx, matchesKey, id).Err(); err != nil {
		return fmt.Errorf("error deleting match snapshot: %w", err)
	}
	return nil
}

// SaveResult inserts a finished match into postgres.
func (repo *MatchRepository) SaveResult(ctx context.Context, record models.MatchRecord) error {
	query := `
		INSERT INTO match_results
			(id, black_source, white_source, black_score, white_score, outcome, moves_played, finished_at)
		VALUES
			(:id, :black_source, :white_source, :black_score, :white_score, :outcome, :moves_played, :finished_at)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := repo.services.Postgres.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("error saving match result: %w", err)
	}

	return nil
}

// GetMatchStats returns result counts grouped by source pairing and outcome.
func (repo *MatchRepository) GetMatchStats(ctx context.Context) ([]models.MatchStats, error) {
	query := `
		SELECT black_source, white_source, outcome, COUNT(*) AS count
		FROM match_results
		GROUP BY black_source, white_source, outcome
		ORDER BY black_source, white_source, outcome
	`

	stats := make([]models.MatchStats, 0)
	if err := repo.services.Postgres.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("error getting match stats: %w", err)
	}

	return stats, nil
}
