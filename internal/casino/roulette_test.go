package casino

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestRedSet(t *testing.T) {
	reds := []int{1, 3, 5, 7, 9, 12, 14, 16, 18, 19, 21, 23, 25, 27, 30, 32, 34, 36}
	assert.Len(t, redNumbers, 18)
	for _, n := range reds {
		assert.True(t, IsRed(n), "%d should be red", n)
	}
	for _, n := range []int{0, 2, 4, 6, 8, 10, 11, 13, 15, 17, 20, 22, 24, 26, 28, 29, 31, 33, 35} {
		assert.False(t, IsRed(n), "%d should not be red", n)
	}
}

func TestZeroSatisfiesNothing(t *testing.T) {
	for _, betType := range []string{BetRed, BetBlack, BetEven, BetOdd, BetHigh, BetLow} {
		won, raw := evaluateRoulette(0, betType, nil)
		assert.False(t, won, "0 must lose %s", betType)
		assert.Zero(t, raw)
	}
}

func TestEvaluateRoulette(t *testing.T) {
	tests := []struct {
		name    string
		result  int
		betType string
		number  *int
		won     bool
		raw     float64
	}{
		{"red hit", 32, BetRed, nil, true, 2},
		{"red miss", 17, BetRed, nil, false, 0},
		{"black hit on 17", 17, BetBlack, nil, true, 2},
		{"black miss on red", 36, BetBlack, nil, false, 0},
		{"even hit", 14, BetEven, nil, true, 2},
		{"odd hit", 17, BetOdd, nil, true, 2},
		{"odd miss", 18, BetOdd, nil, false, 0},
		{"high hit", 19, BetHigh, nil, true, 2},
		{"high miss", 18, BetHigh, nil, false, 0},
		{"low hit", 18, BetLow, nil, true, 2},
		{"low miss", 19, BetLow, nil, false, 0},
		{"number exact", 21, BetNumber, intPtr(21), true, 36},
		{"number miss", 22, BetNumber, intPtr(21), false, 0},
		{"number zero", 0, BetNumber, intPtr(0), true, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			won, raw := evaluateRoulette(tt.result, tt.betType, tt.number)
			assert.Equal(t, tt.won, won)
			assert.Equal(t, tt.raw, raw)
		})
	}
}

func TestValidateRouletteBet(t *testing.T) {
	assert.NoError(t, ValidateRouletteBet(BetRed, nil))
	assert.NoError(t, ValidateRouletteBet(BetNumber, intPtr(0)))
	assert.NoError(t, ValidateRouletteBet(BetNumber, intPtr(36)))

	assert.ErrorIs(t, ValidateRouletteBet(BetNumber, nil), ErrInvalidNumber)
	assert.ErrorIs(t, ValidateRouletteBet(BetNumber, intPtr(-1)), ErrInvalidNumber)
	assert.ErrorIs(t, ValidateRouletteBet(BetNumber, intPtr(37)), ErrInvalidNumber)
	assert.ErrorIs(t, ValidateRouletteBet("corner", nil), ErrInvalidBetType)
}

func TestSpinRouletteProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	for i := 0; i < 500; i++ {
		out, err := SpinRoulette(rng, 20, BetBlack, nil, 10)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, out.Result, 0)
		assert.LessOrEqual(t, out.Result, 36)
		assert.Equal(t, IsRed(out.Result), out.IsRed)

		if out.Won {
			assert.Equal(t, 2.0, out.RawMultiplier)
			assert.InDelta(t, 1.8, out.Multiplier, 1e-9)
			assert.InDelta(t, 36, out.WinAmount, 0.005)
		} else {
			assert.Zero(t, out.WinAmount)
		}
	}
}

func TestSpinRouletteRejectsBadBets(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := SpinRoulette(rng, 10, BetNumber, nil, 5)
	assert.ErrorIs(t, err, ErrInvalidNumber)

	_, err = SpinRoulette(rng, 10, "split", nil, 5)
	assert.ErrorIs(t, err, ErrInvalidBetType)
}
