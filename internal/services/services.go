package services

import (
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/miyakp098/reversi/internal/config"
)

// Services contains the connections to the external services.
type Services struct {
	Postgres *sqlx.DB
	Redis    *redis.Client
}

func InitServices(cfg *config.ServerConfig) (*Services, error) {
	postgres, err := InitPostgres(cfg.PostgresURL)
	if err != nil {
		return nil, err
	}

	redis, err := InitRedis(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	return &Services{
		Postgres: postgres,
		Redis:    redis,
	}, nil
}
