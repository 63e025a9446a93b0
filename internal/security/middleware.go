package security

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// UserGuard authenticates the caller with the shared API key and resolves
// the acting user id from the X-User-ID header into c.Locals("uid").
// Session management proper lives outside this service.
func UserGuard(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("X-API-Key") != apiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}

		uid, err := strconv.ParseInt(c.Get("X-User-ID"), 10, 64)
		if err != nil || uid <= 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}

		c.Locals("uid", uid)
		return c.Next()
	}
}

func AdminGuard(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("X-Admin-Token") != token {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
		}
		c.Locals("uid", int64(0))
		return c.Next()
	}
}

func OwnerGuard(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("X-Owner-Token") != token {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
		}
		c.Locals("uid", int64(0))
		return c.Next()
	}
}

func UID(c *fiber.Ctx) int64 {
	uid, _ := c.Locals("uid").(int64)
	return uid
}
