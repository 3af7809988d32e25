package internal

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/arena/internal/config"
	"github.com/lk16/flippy/arena/internal/middleware"
	"github.com/lk16/flippy/arena/internal/repository"
	"github.com/lk16/flippy/arena/internal/routes"
	"github.com/lk16/flippy/arena/internal/services"
	"github.com/lk16/flippy/arena/internal/session"
)

const (
	defaultConcurrency  = 256 * 1024 // Maximum number of concurrent connections per worker
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 64 * 1024
	setupTimeout        = 10 * time.Second
)

// SetupApp loads the configuration, connects to the configured services and builds the app.
func SetupApp() (*fiber.App, *config.ServerConfig) {
	// Load configuration
	cfg := config.LoadServerConfig()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize services
	services, err := services.InitServices(cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	manager, err := newManager(cfg, services)
	if err != nil {
		slog.Error("Failed to initialize game manager", "error", err)
		os.Exit(1)
	}

	app := BuildApp(cfg, manager)

	app.Hooks().OnShutdown(func() error {
		return services.Close()
	})

	return app, cfg
}

// newManager picks Redis and Postgres when they are configured, in-memory storage otherwise.
func newManager(cfg *config.ServerConfig, services *services.Services) (*session.Manager, error) {
	var store session.Store = session.NewMemoryStore(cfg.SessionTTL)
	if services.Redis != nil {
		store = session.NewRedisStore(services.Redis, cfg.SessionTTL)
	}

	var results repository.Results = repository.NewMemoryResults()
	if services.Postgres != nil {
		ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
		defer cancel()

		resultRepo, err := repository.NewResultRepository(ctx, services.Postgres)
		if err != nil {
			return nil, err
		}
		results = resultRepo
	}

	slog.Info("Storage configured", "redis", services.Redis != nil, "postgres", services.Postgres != nil)

	return session.NewManager(store, results), nil
}

// BuildApp creates the Fiber app serving games from manager.
func BuildApp(cfg *config.ServerConfig, manager *session.Manager) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:      cfg.Prefork,
		Concurrency:  defaultConcurrency,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	// Make the game manager and config available to handlers
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("manager", manager)
		c.Locals("config", cfg)
		return c.Next()
	})

	// Add logging middleware
	app.Use(middleware.Logging())

	// Setup all routes
	routes.SetupRoutes(app)

	return app
}
