package handler

import (
	"github.com/GantalaAvinash/mobile-store/internal/identity"
	"github.com/gofiber/fiber/v2"
)

func currentUser(c *fiber.Ctx) *identity.User {
	user, _ := c.Locals("user").(*identity.User)
	return user
}
