package game

// Visibility represents the lifecycle stage of a card.
type Visibility int

const (
	FaceDown Visibility = iota
	FaceUp
	Matched
)

// String returns the string representation of a Visibility.
func (v Visibility) String() string {
	switch v {
	case FaceDown:
		return "face_down"
	case FaceUp:
		return "face_up"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// BackSprite is the sprite drawn for a face-down card.
const BackSprite = "back"

// Card is a single matchable unit on the board. Two cards are the same
// kind when they carry the same symbol.
type Card struct {
	symbol     string
	visibility Visibility
}

// NewCard returns a face-down card showing symbol when revealed.
func NewCard(symbol string) *Card {
	return &Card{symbol: symbol, visibility: FaceDown}
}

// Flip toggles between FaceDown and FaceUp. Matched cards stay matched.
func (c *Card) Flip() {
	switch c.visibility {
	case FaceDown:
		c.visibility = FaceUp
	case FaceUp:
		c.visibility = FaceDown
	}
}

// MarkFound moves the card to Matched.
func (c *Card) MarkFound() {
	c.visibility = Matched
}

func (c *Card) Visibility() Visibility {
	return c.visibility
}

func (c *Card) Symbol() string {
	return c.symbol
}

// SameKindAs reports whether both cards carry the same symbol.
func (c *Card) SameKindAs(other *Card) bool {
	return c.symbol == other.symbol
}

// Render asks r to draw the card at position: the back face while face
// down, the card's own sprite otherwise.
func (c *Card) Render(r Renderer, position int) {
	if c.visibility == FaceDown {
		r.Draw(BackSprite, position)
		return
	}
	r.Draw(c.symbol, position)
}
