package casino

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func liveRound(bet float64, player, dealer []Card, deck ...Card) *Round {
	return &Round{
		ID:     "round-1",
		UserID: 1,
		GameID: 3,
		Bet:    bet,
		Deck:   deck,
		Player: player,
		Dealer: dealer,
		Status: StatusInProgress,
	}
}

func TestDealResolvesNaturals(t *testing.T) {
	// deal enough rounds to cover naturals on both sides
	rng := rand.New(rand.NewSource(99))
	seen := make(map[string]int)

	for i := 0; i < 2000; i++ {
		r := Deal(rng, 1, 3, 10)
		seen[r.Status]++

		assert.Len(t, r.Player, 2)
		assert.Len(t, r.Dealer, 2)
		assert.Len(t, r.Deck, 48)

		switch r.Status {
		case StatusPlayerBlackjack:
			assert.Equal(t, 21, HandValue(r.Player))
		case StatusDealerBlackjack:
			assert.Equal(t, 21, HandValue(r.Dealer))
			assert.NotEqual(t, 21, HandValue(r.Player))
		case StatusPush:
			assert.Equal(t, 21, HandValue(r.Player))
			assert.Equal(t, 21, HandValue(r.Dealer))
		case StatusInProgress:
		default:
			t.Fatalf("unexpected deal status %q", r.Status)
		}
	}

	assert.Positive(t, seen[StatusInProgress])
	assert.Positive(t, seen[StatusPlayerBlackjack])
}

func TestHitBustsOver21(t *testing.T) {
	r := liveRound(10,
		[]Card{card("K"), card("Q")},
		[]Card{card("9"), card("5")},
		card("5"),
	)

	require.NoError(t, r.Hit())
	assert.Equal(t, StatusPlayerBust, r.Status)
	assert.True(t, r.Terminal())
	assert.Equal(t, -10.0, r.NetWin(5))
}

func TestHitStaysInProgressUnder21(t *testing.T) {
	r := liveRound(10,
		[]Card{card("5"), card("6")},
		[]Card{card("9"), card("5")},
		card("5"),
	)

	require.NoError(t, r.Hit())
	assert.Equal(t, StatusInProgress, r.Status)
	assert.False(t, r.CanDouble())
}

func TestStandDealerDrawsTo17(t *testing.T) {
	r := liveRound(10,
		[]Card{card("K"), card("9")},
		[]Card{card("9"), card("5")},
		card("2"), card("4"),
	)

	require.NoError(t, r.Stand())
	assert.GreaterOrEqual(t, HandValue(r.Dealer), 17)
	assert.True(t, r.Terminal())
	// dealer 9+5+2=16 draws again to 20, player 19 loses
	assert.Equal(t, StatusDealerWins, r.Status)
	assert.Equal(t, -10.0, r.NetWin(0))
}

func TestStandDealerStandsOnSoft17(t *testing.T) {
	r := liveRound(10,
		[]Card{card("K"), card("9")},
		[]Card{card("A"), card("6")},
		card("K"),
	)

	require.NoError(t, r.Stand())
	// soft 17 stands, no draw happens
	assert.Len(t, r.Dealer, 2)
	assert.Equal(t, StatusPlayerWins, r.Status)
	assert.Equal(t, 10.0, r.NetWin(0))
}

func TestStandDealerBustPaysBet(t *testing.T) {
	r := liveRound(10,
		[]Card{card("K"), card("8")},
		[]Card{card("9"), card("6")},
		card("K"),
	)

	require.NoError(t, r.Stand())
	assert.Equal(t, StatusDealerBust, r.Status)
	assert.Equal(t, 9.0, r.NetWin(10))
}

func TestStandEqualTotalsPush(t *testing.T) {
	r := liveRound(10,
		[]Card{card("K"), card("9")},
		[]Card{card("K"), card("9")},
	)

	require.NoError(t, r.Stand())
	assert.Equal(t, StatusPush, r.Status)
	assert.Zero(t, r.NetWin(50))
}

func TestDoubleDrawsOneCardAndDoublesBet(t *testing.T) {
	r := liveRound(10,
		[]Card{card("5"), card("6")},
		[]Card{card("K"), card("7")},
		card("K"),
	)

	require.NoError(t, r.Double())
	assert.True(t, r.Doubled)
	assert.Equal(t, 20.0, r.Bet)
	assert.Len(t, r.Player, 3)
	assert.True(t, r.Terminal())
	// player 21 beats dealer 17
	assert.Equal(t, StatusPlayerWins, r.Status)
	assert.Equal(t, 20.0, r.NetWin(0))
}

func TestDoubleBust(t *testing.T) {
	r := liveRound(10,
		[]Card{card("K"), card("6")},
		[]Card{card("K"), card("7")},
		card("K"),
	)

	require.NoError(t, r.Double())
	assert.Equal(t, StatusPlayerBust, r.Status)
	assert.Equal(t, -20.0, r.NetWin(0))
}

func TestDoubleOnlyAsFirstAction(t *testing.T) {
	r := liveRound(10,
		[]Card{card("2"), card("3")},
		[]Card{card("K"), card("7")},
		card("2"), card("2"),
	)

	require.NoError(t, r.Hit())
	assert.False(t, r.CanDouble())
	assert.ErrorIs(t, r.Double(), ErrDoubleNotAllowed)
}

func TestActionsRejectedOnTerminalRound(t *testing.T) {
	r := liveRound(10,
		[]Card{card("K"), card("Q")},
		[]Card{card("K"), card("9")},
	)
	require.NoError(t, r.Stand())
	require.True(t, r.Terminal())

	assert.ErrorIs(t, r.Hit(), ErrInvalidAction)
	assert.ErrorIs(t, r.Stand(), ErrInvalidAction)
	assert.ErrorIs(t, r.Double(), ErrDoubleNotAllowed)
}

func TestNetWinScalesOnlyPositiveSettlements(t *testing.T) {
	natural := liveRound(100, nil, nil)
	natural.Status = StatusPlayerBlackjack
	assert.Equal(t, 135.0, natural.NetWin(10)) // 1.5x scaled by 10% edge

	loss := liveRound(100, nil, nil)
	loss.Status = StatusDealerWins
	assert.Equal(t, -100.0, loss.NetWin(10)) // losses never scaled

	win := liveRound(100, nil, nil)
	win.Status = StatusPlayerWins
	assert.Equal(t, 90.0, win.NetWin(10))
}
