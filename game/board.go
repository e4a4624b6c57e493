package game

// BoardSize is the number of slots on the board.
const BoardSize = 16

// Symbols are the sprite names dealt onto the board, two cards each.
var Symbols = [BoardSize / 2]string{
	"8-ball", "potato", "dinosaur", "kronos", "rocket", "unicorn", "guy", "zeppelin",
}

// Intner is the random source used by Shuffle. *rand.Rand satisfies it.
type Intner interface {
	Intn(n int) int
}

// NewDeck creates two face-down cards per symbol, in symbol order.
func NewDeck(symbols []string) []*Card {
	cards := make([]*Card, 0, 2*len(symbols))
	for _, s := range symbols {
		cards = append(cards, NewCard(s), NewCard(s))
	}
	return cards
}

// Shuffle walks every position i and swaps it with a position drawn
// uniformly from the whole slice. The draw range does not shrink, so the
// result is not uniformly distributed over permutations.
func Shuffle(cards []*Card, rng Intner) {
	n := len(cards)
	for i := 0; i < n; i++ {
		r := rng.Intn(n)
		cards[i], cards[r] = cards[r], cards[i]
	}
}
