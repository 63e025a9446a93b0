package casino

import (
	"math/rand"

	"casino-platform/internal/wallet"
)

const (
	BetRed    = "red"
	BetBlack  = "black"
	BetEven   = "even"
	BetOdd    = "odd"
	BetHigh   = "high"
	BetLow    = "low"
	BetNumber = "number"
)

// redNumbers is the standard single-zero wheel red set. 0 is neither red
// nor black and never counts as even, high or low.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

func IsRed(n int) bool {
	return redNumbers[n]
}

type RouletteOutcome struct {
	Result        int     `json:"result"`
	IsRed         bool    `json:"isRed"`
	BetType       string  `json:"betType"`
	BetNumber     *int    `json:"betNumber,omitempty"`
	Won           bool    `json:"won"`
	RawMultiplier float64 `json:"rawMultiplier"`
	Multiplier    float64 `json:"multiplier"`
	WinAmount     float64 `json:"winAmount"`
}

// ValidateRouletteBet rejects unknown bet types and, for number bets, a
// missing or out-of-range number.
func ValidateRouletteBet(betType string, number *int) error {
	switch betType {
	case BetRed, BetBlack, BetEven, BetOdd, BetHigh, BetLow:
		return nil
	case BetNumber:
		if number == nil || *number < 0 || *number > 36 {
			return ErrInvalidNumber
		}
		return nil
	default:
		return ErrInvalidBetType
	}
}

// evaluateRoulette decides a bet type against a drawn pocket and returns
// the raw multiplier: 36 for an exact number hit, 2 for the rest, 0 on loss.
func evaluateRoulette(result int, betType string, number *int) (bool, float64) {
	won := false
	raw := 2.0
	switch betType {
	case BetRed:
		won = IsRed(result)
	case BetBlack:
		won = result != 0 && !IsRed(result)
	case BetEven:
		won = result != 0 && result%2 == 0
	case BetOdd:
		won = result%2 == 1
	case BetHigh:
		won = result >= 19 && result <= 36
	case BetLow:
		won = result >= 1 && result <= 18
	case BetNumber:
		won = result == *number
		raw = 36.0
	}
	if !won {
		raw = 0
	}
	return won, raw
}

// SpinRoulette draws a uniform pocket in [0,36] and settles the bet type
// against it. Number bets pay 36x, everything else 2x, before edge scaling.
func SpinRoulette(rng *rand.Rand, bet float64, betType string, number *int, edgePct float64) (RouletteOutcome, error) {
	if err := ValidateRouletteBet(betType, number); err != nil {
		return RouletteOutcome{}, err
	}

	result := rng.Intn(37)
	won, raw := evaluateRoulette(result, betType, number)
	scaled := ScaleMultiplier(raw, edgePct)

	return RouletteOutcome{
		Result:        result,
		IsRed:         IsRed(result),
		BetType:       betType,
		BetNumber:     number,
		Won:           won,
		RawMultiplier: raw,
		Multiplier:    scaled,
		WinAmount:     wallet.Round2(bet * scaled),
	}, nil
}
