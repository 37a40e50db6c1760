package middleware

import (
	"propnest-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const userLocal = "user"

// Identity is the authenticated request identity derived from the session.
type Identity struct {
	UserID   uuid.UUID
	Fullname string
	Email    string
}

// RequireAuth ensures the session carries a user with a user id.
// A missing session or a session without a user id returns 401.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := CurrentIdentity(c); !ok {
			return response.Unauthorized(c, "Unauthorized")
		}
		return c.Next()
	}
}

// CurrentIdentity extracts the session user as a typed identity.
// ok is false when there is no session user or its user_id is absent/invalid.
func CurrentIdentity(c *fiber.Ctx) (Identity, bool) {
	user := c.Locals(userLocal)
	m, ok := user.(map[string]interface{})
	if !ok {
		return Identity{}, false
	}
	idStr, _ := m["user_id"].(string)
	if idStr == "" {
		return Identity{}, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return Identity{}, false
	}
	fullname, _ := m["fullname"].(string)
	email, _ := m["email"].(string)
	return Identity{UserID: id, Fullname: fullname, Email: email}, true
}

// GetUser returns the raw session user from Locals (nil if not logged in).
func GetUser(c *fiber.Ctx) interface{} {
	return c.Locals(userLocal)
}
