package casino

import "math/rand"

type Card struct {
	Suit  string `json:"suit"`
	Value string `json:"value"`
}

// MaskedCard hides the dealer hole card from responses until the round
// resolves.
var MaskedCard = Card{Suit: "?", Value: "?"}

var (
	cardSuits  = []string{"hearts", "diamonds", "clubs", "spades"}
	cardValues = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
)

// NewDeck returns a freshly shuffled standard 52-card deck.
func NewDeck(rng *rand.Rand) []Card {
	deck := make([]Card, 0, 52)
	for _, s := range cardSuits {
		for _, v := range cardValues {
			deck = append(deck, Card{Suit: s, Value: v})
		}
	}

	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

func cardScore(v string) int {
	switch v {
	case "A":
		return 11
	case "K", "Q", "J", "10":
		return 10
	default:
		// "2".."9"
		return int(v[0] - '0')
	}
}

// HandValue computes the blackjack total with the ace-flex rule: every ace
// starts at 11 and is demoted to 1 (total reduced by 10) one at a time
// while the total exceeds 21 and a demotable ace remains.
func HandValue(cards []Card) int {
	total := 0
	aces := 0
	for _, c := range cards {
		total += cardScore(c.Value)
		if c.Value == "A" {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// isNatural reports a two-card 21 dealt directly.
func isNatural(cards []Card) bool {
	return len(cards) == 2 && HandValue(cards) == 21
}
