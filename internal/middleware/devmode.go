package middleware

import (
	"propnest-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DevMode marks the request so error responses may echo raw errors.
func DevMode(enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(response.DevModeLocal, enabled)
		return c.Next()
	}
}
