package casino

type SlotsResponse struct {
	Reels      [3]string `json:"reels"`
	Bet        float64   `json:"bet"`
	Win        float64   `json:"win"`
	Multiplier float64   `json:"multiplier"`
	Balance    float64   `json:"balance"`
}

type RouletteResponse struct {
	Result     int     `json:"result"`
	IsRed      bool    `json:"isRed"`
	Bet        float64 `json:"bet"`
	BetType    string  `json:"betType"`
	BetNumber  *int    `json:"betNumber,omitempty"`
	Win        float64 `json:"win"`
	Multiplier float64 `json:"multiplier"`
	Balance    float64 `json:"balance"`
}

type BlackjackResponse struct {
	RoundID     string  `json:"roundId"`
	GameID      int64   `json:"gameId"`
	PlayerHand  []Card  `json:"playerHand"`
	DealerHand  []Card  `json:"dealerHand"`
	PlayerValue int     `json:"playerValue"`
	DealerValue int     `json:"dealerValue"`
	Bet         float64 `json:"bet"`
	Status      string  `json:"status"`
	Win         float64 `json:"win"`
	CanHit      bool    `json:"canHit"`
	CanStand    bool    `json:"canStand"`
	CanDouble   bool    `json:"canDouble"`
	DeckSize    int     `json:"deckSize"`
	Balance     float64 `json:"balance"`
}

// blackjackView masks the dealer hole card and the deck while the round is
// live; terminal rounds are shown in full.
func blackjackView(r *Round, net, balance float64) *BlackjackResponse {
	resp := &BlackjackResponse{
		RoundID:     r.ID,
		GameID:      r.GameID,
		PlayerHand:  r.Player,
		PlayerValue: HandValue(r.Player),
		Bet:         r.Bet,
		Status:      r.Status,
		Win:         net,
		DeckSize:    len(r.Deck),
		Balance:     balance,
	}

	if r.Terminal() {
		resp.DealerHand = r.Dealer
		resp.DealerValue = HandValue(r.Dealer)
		return resp
	}

	resp.DealerHand = []Card{r.Dealer[0], MaskedCard}
	resp.DealerValue = HandValue(r.Dealer[:1])
	resp.CanHit = true
	resp.CanStand = true
	resp.CanDouble = r.CanDouble()
	return resp
}
