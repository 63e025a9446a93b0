package casino

import "casino-platform/internal/games"

// ValidateBet checks a bet against the game's configured limits.
func ValidateBet(g *games.Game, bet float64) error {
	if !g.IsActive {
		return ErrInactiveGame
	}
	if bet <= 0 {
		return ErrInvalidBet
	}
	if bet < g.MinBet {
		return ErrBetBelowMin
	}
	if bet > g.MaxBet {
		return ErrBetAboveMax
	}
	return nil
}
