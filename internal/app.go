package internal

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/miyakp098/reversi/internal/config"
	"github.com/miyakp098/reversi/internal/match"
	"github.com/miyakp098/reversi/internal/middleware"
	"github.com/miyakp098/reversi/internal/repository"
	"github.com/miyakp098/reversi/internal/routes"
	"github.com/miyakp098/reversi/internal/services"
)

const (
	defaultConcurrency  = 256 * 1024 // Maximum number of concurrent connections per worker
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 1024 * 1024 // 1MB
)

func SetupApp() (*fiber.App, *config.ServerConfig) {
	// Load configuration
	cfg := config.LoadServerConfig()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Prefork:      cfg.Prefork,
		Concurrency:  defaultConcurrency,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	// Initialize services
	services, err := services.InitServices(cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	// Make sure the results table exists before serving traffic
	repo := repository.NewMatchRepositoryFromServices(services)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		slog.Error("Failed to ensure database schema", "error", err)
		os.Exit(1)
	}

	// Live match registry
	matches := match.NewManager()

	// Setup connections to external services and config in Fiber app
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("services", services)
		c.Locals("config", cfg)
		c.Locals("matches", matches)
		return c.Next()
	})

	// Add logging middleware
	app.Use(middleware.Logging())

	// Setup all routes
	routes.SetupRoutes(app)

	return app, cfg
}
