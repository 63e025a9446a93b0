package casino

import (
	"math/rand"

	"casino-platform/internal/wallet"
)

// slotSymbols is the 8-symbol reel alphabet; each reel draws uniformly.
var slotSymbols = [8]string{
	"cherry", "lemon", "orange", "plum", "bell", "bar", "seven", "diamond",
}

const (
	slotTopSymbol  = "diamond"
	slotHighSymbol = "seven"
	slotMidSymbol  = "bar"
)

type SlotsOutcome struct {
	Reels         [3]string `json:"reels"`
	RawMultiplier float64   `json:"rawMultiplier"`
	Multiplier    float64   `json:"multiplier"`
	WinAmount     float64   `json:"winAmount"`
}

// SpinSlots draws three reels and computes the payout for the bet with the
// house edge scaled into the multiplier.
func SpinSlots(rng *rand.Rand, bet, edgePct float64) SlotsOutcome {
	var reels [3]string
	for i := range reels {
		reels[i] = slotSymbols[rng.Intn(len(slotSymbols))]
	}

	raw := slotsMultiplier(reels)
	scaled := ScaleMultiplier(raw, edgePct)

	return SlotsOutcome{
		Reels:         reels,
		RawMultiplier: raw,
		Multiplier:    scaled,
		WinAmount:     wallet.Round2(bet * scaled),
	}
}

// slotsMultiplier maps a drawn triple to its raw payout multiplier.
func slotsMultiplier(reels [3]string) float64 {
	if reels[0] == reels[1] && reels[1] == reels[2] {
		switch reels[0] {
		case slotTopSymbol:
			return 100
		case slotHighSymbol:
			return 50
		case slotMidSymbol:
			return 25
		default:
			return 10
		}
	}

	if reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2] {
		return 2
	}

	return 0
}
