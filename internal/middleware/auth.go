package middleware

import (
	"go-ehs/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates the x-auth-token header and injects user claims
// into the request context. The header name is the wire contract the
// dashboard client already speaks.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("x-auth-token")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "No token, authorization denied",
			})
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Token is not valid",
			})
		}

		c.Locals(utils.UserClaimsKey, claims)
		return c.Next()
	}
}

// Claims pulls the validated claims the auth middleware stored. nil when
// the route is not behind AuthMiddleware.
func Claims(c *fiber.Ctx) *utils.UserClaims {
	claims, _ := c.Locals(utils.UserClaimsKey).(*utils.UserClaims)
	return claims
}
