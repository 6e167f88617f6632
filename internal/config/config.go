package config

import (
	"log/slog"
	"os"
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	PostgresURL       string
	BasicAuthUsername string
	BasicAuthPassword string
	Prefork           bool
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:        getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort:        getEnvMust("REVERSI_SERVER_PORT"),
		RedisURL:          getEnvMust("REVERSI_REDIS_URL"),
		PostgresURL:       getEnvMust("REVERSI_POSTGRES_URL"),
		BasicAuthUsername: getEnvMust("REVERSI_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("REVERSI_BASIC_AUTH_PASS"),
		Prefork:           getEnvMustBool("REVERSI_SERVER_PREFORK"),
	}
}

// SelfPlayConfig holds the configuration for the selfplay tool, which talks
// to postgres directly and needs nothing else.
type SelfPlayConfig struct {
	PostgresURL string
}

func LoadSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{
		PostgresURL: getEnvMust("REVERSI_POSTGRES_URL"),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}
