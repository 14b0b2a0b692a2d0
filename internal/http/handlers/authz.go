package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ecycle/internal/domain"
	applog "ecycle/internal/log"
	"ecycle/internal/services"
)

// RequireUser resolves the Authorization bearer token to a user and stores it
// in Locals("user"). Missing/malformed headers and undecodable tokens are 401;
// a token whose subject no longer exists is 404.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization header required"})
		}
		token := strings.TrimPrefix(header, "Bearer ")

		u, err := auth.UserFromToken(token)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
			}
			applog.Security(c, "auth.token.invalid", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// AdminOnly rejects non-admin users with 403. Register it after RequireUser.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := currentUser(c)
		if u == nil || !u.IsAdmin {
			applog.Security(c, "access.denied.admin", nil)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
		}
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}
