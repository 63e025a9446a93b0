package withdraw

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"casino-platform/internal/security"
)

func RegisterRoutes(r fiber.Router, service *Service) {

	r.Get("/withdrawals", func(c *fiber.Ctx) error {
		list, err := service.ListPending(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
		}
		return c.JSON(fiber.Map{"withdrawals": list})
	})

	r.Post("/withdrawals/:id/approve", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
		}

		if err := service.Approve(c.Context(), int64(id), security.UID(c)); err != nil {
			return withdrawError(c, err)
		}
		return c.JSON(fiber.Map{"status": "approved"})
	})

	r.Post("/withdrawals/:id/reject", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
		}

		if err := service.Reject(c.Context(), int64(id), security.UID(c)); err != nil {
			return withdrawError(c, err)
		}
		return c.JSON(fiber.Map{"status": "rejected"})
	})
}

func withdrawError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNotPending) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
}
