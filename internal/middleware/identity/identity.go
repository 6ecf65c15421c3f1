package identity

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	// Header carries the authenticated user id, set by the auth gateway in
	// front of this service.
	Header = "X-User-ID"

	localsKey = "user_id"
)

// Middleware resolves the caller identity for the routes that need one. A
// missing or malformed header is rejected before any handler runs; whether
// the id resolves to a real user is the engine's call.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(Header)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authenticated user identity",
			})
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authenticated user identity",
			})
		}

		c.Locals(localsKey, id)
		return c.Next()
	}
}

// UserID returns the identity stored by Middleware.
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(localsKey).(int64)
	return id
}
