package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/chynybekuuludastan/adstudio/internal/api"
	"github.com/chynybekuuludastan/adstudio/internal/api/handlers"
	ws "github.com/chynybekuuludastan/adstudio/internal/api/websocket"
	"github.com/chynybekuuludastan/adstudio/internal/config"
	"github.com/chynybekuuludastan/adstudio/internal/database"
	"github.com/chynybekuuludastan/adstudio/internal/repository/cache"
	"github.com/chynybekuuludastan/adstudio/internal/service/backend"
	"github.com/chynybekuuludastan/adstudio/internal/session"
	"github.com/chynybekuuludastan/adstudio/internal/web/content"
	"github.com/chynybekuuludastan/adstudio/internal/web/views"
)

// @title AdStudio API
// @version 1.0
// @description JSON API of the AdStudio web front end: panel state, submissions and theme

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Initialize configuration
	cfg := config.NewConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Page copy
	pages, err := content.Load()
	if err != nil {
		log.Fatalf("Failed to load page content: %v", err)
	}

	// Processing backend
	client := backend.NewClient(cfg.BackendURL,
		backend.WithPublicURL(cfg.BackendPublicURL),
		backend.WithTimeout(cfg.BackendTimeout),
		backend.WithRateLimit(cfg.BackendRateLimit),
	)

	// Snapshot store: Redis when configured, memory otherwise
	var store cache.SnapshotStore
	if cfg.RedisURI != "" {
		redisClient, err := database.InitRedis(ctx, cfg.RedisURI)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		store = cache.NewRedisStore(redisClient, cfg.SnapshotTTL)
		log.Println("[INFO] Storing panel snapshots in Redis")
	} else {
		store = cache.NewMemoryStore(cfg.SnapshotTTL)
		log.Println("[INFO] REDIS_URI not set, storing panel snapshots in memory")
	}

	// Live updates and sessions
	hub := ws.NewHub()
	go hub.Run(ctx)

	registry := session.NewRegistry(ctx, session.Options{
		Backend:  client,
		Store:    store,
		Notifier: hub,
		TTL:      cfg.SessionTTL,
	})
	defer registry.Close()
	go registry.Run(ctx, time.Minute)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		Views:                 views.NewEngine(),
		ErrorHandler:          handlers.ErrorHandler,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		DisableStartupMessage: cfg.IsProduction(),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST",
	}))

	// Setup Swagger
	api.SetupSwagger(app)

	// Setup routes
	api.SetupRoutes(app, api.Deps{
		Config:   cfg,
		Registry: registry,
		Backend:  client,
		Store:    store,
		Hub:      hub,
		Content:  pages,
	})

	// Start server
	go func() {
		log.Printf("[INFO] Listening on :%s (backend %s)", cfg.Port, cfg.BackendURL)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}
