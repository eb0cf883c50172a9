package api

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/websocket/v2"

	"github.com/chynybekuuludastan/adstudio/internal/api/handlers"
	"github.com/chynybekuuludastan/adstudio/internal/api/middleware"
	ws "github.com/chynybekuuludastan/adstudio/internal/api/websocket"
	"github.com/chynybekuuludastan/adstudio/internal/config"
	"github.com/chynybekuuludastan/adstudio/internal/repository/cache"
	"github.com/chynybekuuludastan/adstudio/internal/service/backend"
	"github.com/chynybekuuludastan/adstudio/internal/session"
	"github.com/chynybekuuludastan/adstudio/internal/web/content"
	"github.com/chynybekuuludastan/adstudio/internal/web/static"
)

// Deps are the services the routes are built on
type Deps struct {
	Config   *config.Config
	Registry *session.Registry
	Backend  *backend.Client
	Store    cache.SnapshotStore
	Hub      *ws.Hub
	Content  *content.Content
}

// SetupRoutes configures all page and API routes
func SetupRoutes(app *fiber.App, deps Deps) {
	cfg := deps.Config

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(deps.Content, deps.Backend)
	analysisHandler := handlers.NewAnalysisHandler(deps.Backend)
	adCreativesHandler := handlers.NewAdCreativesHandler(deps.Content.AdCreatives, deps.Backend, cfg.AdCreativesDefaultPath)
	themeHandler := handlers.NewThemeHandler(cfg.CookieSecure)
	panelHandler := handlers.NewPanelHandler()
	var store handlers.HealthChecker
	if deps.Store != nil {
		store = deps.Store
	}
	healthHandler := handlers.NewHealthHandler(deps.Backend, store)
	wsHandler := handlers.NewWebSocketHandler(deps.Hub)

	// Static assets and health checks do not open a session
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(static.FS),
		MaxAge: 3600,
	}))
	app.Get("/api/health", healthHandler.Check)

	app.Use(middleware.Session(middleware.SessionConfig{
		Registry: deps.Registry,
		TTL:      cfg.SnapshotTTL,
		Secure:   cfg.CookieSecure,
	}))

	// Pages
	app.Get("/", pageHandler.Home)
	app.Get("/results", pageHandler.Results)
	app.Get("/dashboard", pageHandler.Dashboard)

	app.Get("/upload", analysisHandler.ShowUpload)
	app.Post("/upload", analysisHandler.SubmitUpload)
	app.Post("/upload/retry", analysisHandler.RetryUpload)

	app.Get("/ad-creatives", adCreativesHandler.ShowAdCreatives)
	app.Post("/ad-creatives", adCreativesHandler.SubmitAdCreatives)
	app.Post("/ad-creatives/retry", adCreativesHandler.RetryAdCreatives)

	app.Post("/theme/toggle", themeHandler.Toggle)

	// API group
	api := app.Group("/api")
	api.Post("/theme/toggle", themeHandler.ToggleJSON)

	panel := middleware.PanelParam("panel", session.Panels...)
	api.Get("/panels/:panel", middleware.RequireWorkspace(), panel, panelHandler.GetPanel)
	api.Post("/panels/:panel", middleware.RequireWorkspace(), panel, panelHandler.SubmitPanel)
	api.Post("/panels/:panel/retry", middleware.RequireWorkspace(), panel, panelHandler.RetryPanel)

	// WebSocket endpoint for panel state pushes
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/panels", websocket.New(wsHandler.HandlePanelsWebSocket))
}
