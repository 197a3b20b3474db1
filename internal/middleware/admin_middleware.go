package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware rejects requests whose token does not carry the admin
// role. Must run after AuthMiddleware.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := Claims(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "No token, authorization denied",
			})
		}

		if !claims.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Access denied",
			})
		}

		return c.Next()
	}
}
