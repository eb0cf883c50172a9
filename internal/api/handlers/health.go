package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
)

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler serves the liveness endpoint
type HealthHandler struct {
	Backend HealthChecker
	Store   HealthChecker
}

// NewHealthHandler creates a new health handler; store may be nil
func NewHealthHandler(backend, store HealthChecker) *HealthHandler {
	return &HealthHandler{Backend: backend, Store: store}
}

// Check reports liveness and whether the backend and snapshot store answer
// @Summary Health check
// @Description Liveness of the web front end and reachability of the processing backend and snapshot store
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Health status"
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	backendStatus := "ok"
	if err := h.Backend.Health(c.UserContext()); err != nil {
		log.Printf("[ERROR] backend health check failed: %v", err)
		backendStatus = "unavailable"
	}

	body := fiber.Map{
		"status":  "ok",
		"backend": backendStatus,
	}

	if h.Store != nil {
		storeStatus := "ok"
		if err := h.Store.Health(c.UserContext()); err != nil {
			log.Printf("[ERROR] snapshot store health check failed: %v", err)
			storeStatus = "unavailable"
		}
		body["store"] = storeStatus
	}

	return c.JSON(body)
}
