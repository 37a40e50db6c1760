package response

import (
	"github.com/gofiber/fiber/v2"
)

// DevModeLocal is set by the app so error responses can echo raw errors in development.
const DevModeLocal = "dev_mode"

// ErrorBody is the standardized error JSON shape: a generic message, plus the
// raw error string only in development mode.
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Err sends the standard {message} error envelope. cause is echoed under
// "error" only when the app runs in development mode.
func Err(c *fiber.Ctx, statusCode int, message string, cause error) error {
	body := ErrorBody{Message: message}
	if dev, _ := c.Locals(DevModeLocal).(bool); dev && cause != nil {
		body.Error = cause.Error()
	}
	return c.Status(statusCode).JSON(body)
}

// BadRequest sends 400 with the standard envelope.
func BadRequest(c *fiber.Ctx, message string) error {
	return Err(c, fiber.StatusBadRequest, message, nil)
}

// Unauthorized sends 401 with the standard envelope.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Err(c, fiber.StatusUnauthorized, message, nil)
}

// NotFound sends 404 with the standard envelope.
func NotFound(c *fiber.Ctx, message string) error {
	return Err(c, fiber.StatusNotFound, message, nil)
}

// MethodNotAllowed sends the fixed 405 envelope.
func MethodNotAllowed(c *fiber.Ctx) error {
	return Err(c, fiber.StatusMethodNotAllowed, "Method not allowed", nil)
}

// Internal sends 500 with the generic message, echoing cause in development.
func Internal(c *fiber.Ctx, cause error) error {
	return Err(c, fiber.StatusInternalServerError, "Internal Server Error", cause)
}
