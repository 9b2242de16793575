package http

import (
	"context"
	"strings"
	"time"

	"github.com/GantalaAvinash/mobile-store/internal/identity"
	"github.com/gofiber/fiber/v2"
)

// NewAuthMiddleware validates the bearer token against the identity
// provider and stores the resolved user on the request context.
func NewAuthMiddleware(provider identity.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized: missed header"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized: Invalid header format"})
		}
		token := parts[1]

		ctx, cancel := context.WithTimeout(c.UserContext(), 1*time.Second)
		defer cancel()

		user, err := provider.Validate(ctx, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized: Invalid token"})
		}

		c.Locals("user", user)
		return c.Next()
	}
}
