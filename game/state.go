package game

// CardView is the read-only representation of a slot.
// Symbol is only included when the card is face up or matched.
type CardView struct {
	Position   int    `json:"position"`
	Visibility string `json:"visibility"`
	Symbol     string `json:"symbol,omitempty"`
}

// Snapshot is a copy of the game state that can leave the loop goroutine.
type Snapshot struct {
	ID             string     `json:"id"`
	Status         string     `json:"status"`
	Message        string     `json:"message"`
	PairsRemaining int        `json:"pairsRemaining"`
	RevealedCount  int        `json:"revealedCount"`
	InputLocked    bool       `json:"inputLocked"`
	Cards          []CardView `json:"cards"`
}

// BuildCardViews constructs the player-facing card list.
// Face-down cards do not expose their symbol.
func BuildCardViews(cards []*Card) []CardView {
	views := make([]CardView, len(cards))
	for i, card := range cards {
		cv := CardView{
			Position:   i,
			Visibility: card.Visibility().String(),
		}
		if card.Visibility() != FaceDown {
			cv.Symbol = card.Symbol()
		}
		views[i] = cv
	}
	return views
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		ID:             g.ID,
		Status:         g.status.String(),
		Message:        g.status.Text(),
		PairsRemaining: g.pairsRemaining,
		RevealedCount:  g.revealedCount,
		InputLocked:    g.inputLocked,
		Cards:          BuildCardViews(g.cards),
	}
}

// FaceDownPositions lists the positions of face-down cards in a snapshot.
func (s Snapshot) FaceDownPositions() []int {
	var out []int
	for _, c := range s.Cards {
		if c.Visibility == FaceDown.String() {
			out = append(out, c.Position)
		}
	}
	return out
}

// FaceUpPositions lists the positions of face-up, unmatched cards.
func (s Snapshot) FaceUpPositions() []int {
	var out []int
	for _, c := range s.Cards {
		if c.Visibility == FaceUp.String() {
			out = append(out, c.Position)
		}
	}
	return out
}
