package casino

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"casino-platform/internal/games"
	"casino-platform/internal/rounds"
	"casino-platform/internal/security"
	"casino-platform/internal/wallet"
)

var validate = validator.New()

func RegisterRoutes(r fiber.Router, service *Service, leaderboard *Leaderboard) {

	r.Post("/games/slots/play", func(c *fiber.Ctx) error {
		type Req struct {
			GameID int64   `json:"gameId" validate:"required"`
			Bet    float64 `json:"bet" validate:"required,gt=0"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
		}
		if err := validate.Struct(body); err != nil {
			return validationError(c, err)
		}

		resp, err := service.PlaySlots(c.Context(), security.UID(c), body.GameID, body.Bet)
		if err != nil {
			return casinoError(c, err)
		}
		return c.JSON(resp)
	})

	r.Post("/games/roulette/play", func(c *fiber.Ctx) error {
		type Req struct {
			GameID    int64   `json:"gameId" validate:"required"`
			Bet       float64 `json:"bet" validate:"required,gt=0"`
			BetType   string  `json:"betType" validate:"required"`
			BetNumber *int    `json:"betNumber"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
		}
		if err := validate.Struct(body); err != nil {
			return validationError(c, err)
		}

		resp, err := service.PlayRoulette(c.Context(), security.UID(c), body.GameID, body.Bet, body.BetType, body.BetNumber)
		if err != nil {
			return casinoError(c, err)
		}
		return c.JSON(resp)
	})

	r.Post("/games/blackjack/deal", func(c *fiber.Ctx) error {
		type Req struct {
			GameID int64   `json:"gameId" validate:"required"`
			Bet    float64 `json:"bet" validate:"required,gt=0"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
		}
		if err := validate.Struct(body); err != nil {
			return validationError(c, err)
		}

		resp, err := service.DealBlackjack(c.Context(), security.UID(c), body.GameID, body.Bet)
		if err != nil {
			return casinoError(c, err)
		}
		return c.JSON(resp)
	})

	r.Post("/games/blackjack/action", func(c *fiber.Ctx) error {
		type Req struct {
			GameID  int64  `json:"gameId"`
			RoundID string `json:"roundId" validate:"required"`
			Action  string `json:"action" validate:"required,oneof=hit stand double"`
			// legacy clients still send a gameState blob; the stored
			// server round is authoritative, so it is ignored
			GameState interface{} `json:"gameState"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid body"})
		}
		if err := validate.Struct(body); err != nil {
			return validationError(c, err)
		}

		resp, err := service.ActionBlackjack(c.Context(), security.UID(c), body.GameID, body.RoundID, body.Action)
		if err != nil {
			return casinoError(c, err)
		}
		return c.JSON(resp)
	})

	r.Get("/casino/leaderboard", func(c *fiber.Ctx) error {
		n := c.QueryInt("limit", 10)
		return c.JSON(fiber.Map{"leaderboard": leaderboard.Top(n)})
	})
}

func casinoError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, games.ErrNotFound),
		errors.Is(err, ErrRoundNotFound),
		errors.Is(err, rounds.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})

	case errors.Is(err, ErrInvalidBet),
		errors.Is(err, ErrBetBelowMin),
		errors.Is(err, ErrBetAboveMax),
		errors.Is(err, ErrInactiveGame),
		errors.Is(err, ErrWrongGameType),
		errors.Is(err, ErrInvalidBetType),
		errors.Is(err, ErrInvalidNumber),
		errors.Is(err, ErrInvalidAction),
		errors.Is(err, ErrDoubleNotAllowed),
		errors.Is(err, wallet.ErrInsufficientBalance):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})

	case errors.Is(err, wallet.ErrUserNotFound):
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
