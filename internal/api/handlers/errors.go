package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler answers API routes with the JSON error envelope and pages
// with the rendered error page
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}
	if code >= fiber.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	}

	if strings.HasPrefix(c.Path(), "/api") || c.Accepts(fiber.MIMETextHTML) == "" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   message,
		})
	}

	c.Status(code)
	if renderErr := render(c, "error", "Error", fiber.Map{"Status": code, "Message": message}); renderErr != nil {
		log.Printf("[ERROR] render error page: %v", renderErr)
		return c.Status(code).SendString(message)
	}
	return nil
}
