package games

const (
	TypeSlots     = "slots"
	TypeRoulette  = "roulette"
	TypeBlackjack = "blackjack"
)

// Game is the per-game configuration entity. HouseEdge is a percentage
// in [0,100] applied to positive settlements only.
type Game struct {
	ID        int64   `json:"id"`
	Type      string  `json:"type"`
	MinBet    float64 `json:"minBet"`
	MaxBet    float64 `json:"maxBet"`
	HouseEdge float64 `json:"houseEdge"`
	IsActive  bool    `json:"isActive"`
}
