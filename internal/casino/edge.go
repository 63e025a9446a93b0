package casino

import "casino-platform/internal/wallet"

// ScaleMultiplier applies the house edge to a raw payout multiplier:
// scaled = raw * (100-edge)/100. Losing outcomes (raw 0) are unaffected.
func ScaleMultiplier(raw, edgePct float64) float64 {
	return raw * (100 - edgePct) / 100
}

// ScaleWin applies the house edge to a positive net amount. Edge scaling
// is applied only where the player comes out ahead, never to losses.
func ScaleWin(amount, edgePct float64) float64 {
	if amount <= 0 {
		return amount
	}
	return wallet.Round2(amount * (100 - edgePct) / 100)
}
