package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// PanelParam rejects requests whose route parameter is not one of the allowed panels
func PanelParam(param string, allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params(param)

		for _, p := range allowed {
			if p == name {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Unknown panel: " + name,
		})
	}
}

// RequireWorkspace rejects requests that reached a handler without a session
func RequireWorkspace() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Workspace(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Session is required",
			})
		}
		return c.Next()
	}
}
