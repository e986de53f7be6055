package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// APIKey guards sensitive endpoints with the shared x-api-key secret. An
// unset server key rejects everything rather than letting everyone in.
func APIKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientKey := c.Get("x-api-key")
		if key == "" || clientKey == "" || clientKey != key {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "unauthorized: invalid API key",
			})
		}
		return c.Next()
	}
}
