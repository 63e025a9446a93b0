package casino

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	ActionHit    = "hit"
	ActionStand  = "stand"
	ActionDouble = "double"
)

const (
	StatusInProgress      = "in_progress"
	StatusPlayerBlackjack = "player_blackjack"
	StatusDealerBlackjack = "dealer_blackjack"
	StatusPlayerBust      = "player_bust"
	StatusDealerBust      = "dealer_bust"
	StatusPlayerWins      = "player_wins"
	StatusDealerWins      = "dealer_wins"
	StatusPush            = "push"
)

// Round is the server-side state of one blackjack hand. It lives in the
// round store between the deal and action requests; the deck here is the
// one actually drawn from, clients only ever learn its size.
type Round struct {
	ID        string  `json:"id"`
	UserID    int64   `json:"userId"`
	GameID    int64   `json:"gameId"`
	Bet       float64 `json:"bet"`
	Deck      []Card  `json:"deck"`
	Player    []Card  `json:"player"`
	Dealer    []Card  `json:"dealer"`
	Doubled   bool    `json:"doubled"`
	Actions   int     `json:"actions"`
	Status    string  `json:"status"`
	CreatedAt int64   `json:"createdAt"`
}

// Deal shuffles a fresh deck, deals two cards each and resolves naturals
// immediately.
func Deal(rng *rand.Rand, uid, gameID int64, bet float64) *Round {
	r := &Round{
		ID:        uuid.New().String(),
		UserID:    uid,
		GameID:    gameID,
		Bet:       bet,
		Deck:      NewDeck(rng),
		Status:    StatusInProgress,
		CreatedAt: time.Now().Unix(),
	}

	r.Player = append(r.Player, r.draw(), r.draw())
	r.Dealer = append(r.Dealer, r.draw(), r.draw())

	switch {
	case isNatural(r.Player) && isNatural(r.Dealer):
		r.Status = StatusPush
	case isNatural(r.Player):
		r.Status = StatusPlayerBlackjack
	case isNatural(r.Dealer):
		r.Status = StatusDealerBlackjack
	}

	return r
}

func (r *Round) draw() Card {
	c := r.Deck[0]
	r.Deck = r.Deck[1:]
	return c
}

func (r *Round) Terminal() bool {
	return r.Status != StatusInProgress
}

// CanDouble reports whether doubling is still permitted: first action,
// exactly two cards. The balance check belongs to the caller.
func (r *Round) CanDouble() bool {
	return !r.Terminal() && r.Actions == 0 && len(r.Player) == 2
}

// Hit draws one player card and busts on 22+.
func (r *Round) Hit() error {
	if r.Terminal() {
		return ErrInvalidAction
	}

	r.Actions++
	r.Player = append(r.Player, r.draw())

	if HandValue(r.Player) > 21 {
		r.Status = StatusPlayerBust
	}
	return nil
}

// Stand hands control to the dealer and resolves the round.
func (r *Round) Stand() error {
	if r.Terminal() {
		return ErrInvalidAction
	}

	r.Actions++
	r.playDealer()
	return nil
}

// Double doubles the stake, draws exactly one card, then runs the dealer
// unless the player busted. The caller must have debited the extra stake.
func (r *Round) Double() error {
	if !r.CanDouble() {
		return ErrDoubleNotAllowed
	}

	r.Actions++
	r.Doubled = true
	r.Bet *= 2
	r.Player = append(r.Player, r.draw())

	if HandValue(r.Player) > 21 {
		r.Status = StatusPlayerBust
		return nil
	}

	r.playDealer()
	return nil
}

// playDealer draws to 17 (stands on any 17, soft or hard) and compares.
func (r *Round) playDealer() {
	for HandValue(r.Dealer) < 17 {
		r.Dealer = append(r.Dealer, r.draw())
	}

	dealer := HandValue(r.Dealer)
	player := HandValue(r.Player)

	switch {
	case dealer > 21:
		r.Status = StatusDealerBust
	case player > dealer:
		r.Status = StatusPlayerWins
	case dealer > player:
		r.Status = StatusDealerWins
	default:
		r.Status = StatusPush
	}
}

// NetWin maps a terminal status to the signed net amount for the final
// stake, with the house edge applied only to positive nets.
func (r *Round) NetWin(edgePct float64) float64 {
	switch r.Status {
	case StatusPlayerBlackjack:
		return ScaleWin(r.Bet*1.5, edgePct)
	case StatusDealerBust, StatusPlayerWins:
		return ScaleWin(r.Bet, edgePct)
	case StatusDealerBlackjack, StatusPlayerBust, StatusDealerWins:
		return -r.Bet
	default:
		// push
		return 0
	}
}
