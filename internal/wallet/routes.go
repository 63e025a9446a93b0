package wallet

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"casino-platform/internal/security"
)

var validate = validator.New()

func RegisterRoutes(r fiber.Router, service *Service) {

	r.Post("/transactions/deposit", func(c *fiber.Ctx) error {
		type Req struct {
			Amount float64 `json:"amount" validate:"required,gt=0"`
			TxHash string  `json:"txHash" validate:"required"`
		}

		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
		}
		if err := validate.Struct(body); err != nil {
			return validationError(c, err)
		}

		t, balance, err := service.Deposit(c.Context(), security.UID(c), body.Amount, body.TxHash)
		if err != nil {
			return walletError(c, err)
		}

		return c.JSON(fiber.Map{"transaction": t, "balance": balance})
	})

	r.Post("/transactions/withdraw", func(c *fiber.Ctx) error {
		type Req struct {
			Amount  float64 `json:"amount" validate:"required,gt=0"`
			Address string  `json:"address" validate:"required"`
		}

		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
		}
		if err := validate.Struct(body); err != nil {
			return validationError(c, err)
		}

		t, balance, err := service.Withdraw(c.Context(), security.UID(c), body.Amount, body.Address)
		if err != nil {
			return walletError(c, err)
		}

		return c.JSON(fiber.Map{"transaction": t, "balance": balance})
	})

	r.Get("/transactions", func(c *fiber.Ctx) error {
		list, err := service.ledger.ListByUser(c.Context(), security.UID(c))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
		}
		return c.JSON(fiber.Map{"transactions": list})
	})

	r.Get("/wallet/balance", func(c *fiber.Ctx) error {
		balance, err := service.Balance(c.Context(), security.UID(c))
		if err != nil {
			return walletError(c, err)
		}
		return c.JSON(fiber.Map{"balance": balance})
	})
}

func walletError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, ErrInsufficientBalance):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
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
