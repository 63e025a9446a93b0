package games

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"casino-platform/internal/security"
)

var validate = validator.New()

// RegisterUserRoutes exposes the read-only game catalogue.
func RegisterUserRoutes(r fiber.Router, service *Service) {
	r.Get("/games", func(c *fiber.Ctx) error {
		list, err := service.ListActive(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
		}
		return c.JSON(fiber.Map{"games": list})
	})
}

// RegisterAdminRoutes exposes per-game edge tuning.
func RegisterAdminRoutes(r fiber.Router, service *Service) {
	r.Post("/games/:id/edge", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
		}

		type Req struct {
			HouseEdge float64 `json:"houseEdge" validate:"gte=0,lte=100"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
		}
		if err := validate.Struct(body); err != nil {
			return validationError(c, err)
		}

		g, err := service.SetHouseEdge(c.Context(), int64(id), body.HouseEdge, security.UID(c))
		if err != nil {
			return gamesError(c, err)
		}
		return c.JSON(g)
	})
}

// RegisterOwnerRoutes exposes global edge and profit-target tuning.
func RegisterOwnerRoutes(r fiber.Router, service *Service) {
	r.Post("/set-global-house-edge", func(c *fiber.Ctx) error {
		type Req struct {
			HouseEdge float64 `json:"houseEdge" validate:"gte=0,lte=100"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
		}
		if err := validate.Struct(body); err != nil {
			return validationError(c, err)
		}

		updated, err := service.SetGlobalHouseEdge(c.Context(), body.HouseEdge, security.UID(c))
		if err != nil {
			return gamesError(c, err)
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "house edge applied to all active games",
			"games":   updated,
		})
	})

	r.Post("/set-profit-target", func(c *fiber.Ctx) error {
		type Req struct {
			TargetProfitPercent float64 `json:"targetProfitPercent" validate:"gte=0"`
			ApplyToAllGames     bool    `json:"applyToAllGames"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
		}
		if err := validate.Struct(body); err != nil {
			return validationError(c, err)
		}

		edge, updated, err := service.SetProfitTarget(c.Context(), body.TargetProfitPercent, body.ApplyToAllGames, security.UID(c))
		if err != nil {
			return gamesError(c, err)
		}
		return c.JSON(fiber.Map{
			"targetProfitPercent": body.TargetProfitPercent,
			"houseEdge":           edge,
			"applied":             body.ApplyToAllGames,
			"games":               updated,
		})
	})
}

func validationError(c *fiber.Ctx, err error) error {
	var fields []fiber.Map
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields = append(fields, fiber.Map{"field": fe.Field(), "rule": fe.Tag()})
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "validation failed",
		"errors":  fields,
	})
}

func gamesError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, ErrInvalidEdge):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
}
