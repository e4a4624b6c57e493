package game

import (
	"log/slog"
	"math/rand"
	"time"

	"memory-pairs/config"
)

// Status is the current state of the game as shown to the player.
type Status int

const (
	StatusReady Status = iota
	StatusPairFound
	StatusTryAgain
	StatusWon
)

// String returns the protocol string for a Status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusPairFound:
		return "pair found"
	case StatusTryAgain:
		return "try again"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Text returns the message drawn for a Status.
func (s Status) Text() string {
	switch s {
	case StatusPairFound:
		return "Pair found!"
	case StatusTryAgain:
		return "Try again"
	case StatusWon:
		return "You won!"
	default:
		return "Find the pairs"
	}
}

// Renderer draws the game. Implementations only receive requests; they
// never change game state.
type Renderer interface {
	DrawMessage(text string)
	Draw(sprite string, position int)
}

// FrameRenderer is a Renderer that wants to know where a full redraw
// starts and ends.
type FrameRenderer interface {
	Renderer
	BeginFrame()
	EndFrame()
}

// Scheduler runs callbacks later on the same single goroutine that calls
// into the Game.
type Scheduler interface {
	ScheduleRepeating(interval time.Duration, fn func())
	ScheduleOnce(delay time.Duration, fn func())
}

// Game is one pairs session. It is not safe for concurrent use: every
// method, including the scheduled callbacks, must run on one goroutine.
type Game struct {
	ID string

	cards          []*Card
	revealedCount  int
	pendingFirst   int
	pendingSecond  int
	pairsRemaining int
	inputLocked    bool
	status         Status

	// deal increments on every InitGame so flip-backs scheduled for an
	// earlier deal are dropped.
	deal      int
	rendering bool

	renderer       Renderer
	scheduler      Scheduler
	rng            *rand.Rand
	revealDelay    time.Duration
	renderInterval time.Duration
}

// NewGame creates a Game that draws through r and schedules timers on s.
// The board is empty until InitGame.
func NewGame(id string, cfg *config.Config, r Renderer, s Scheduler) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		ID:             id,
		pairsRemaining: len(Symbols),
		status:         StatusReady,
		renderer:       r,
		scheduler:      s,
		rng:            rand.New(rand.NewSource(seed)),
		revealDelay:    cfg.RevealDelay(),
		renderInterval: cfg.RenderInterval(),
	}
}

// InitGame deals a fresh shuffled board and starts the render loop the
// first time it is called.
func (g *Game) InitGame() {
	g.cards = NewDeck(Symbols[:])
	Shuffle(g.cards, g.rng)

	g.pairsRemaining = len(Symbols)
	g.revealedCount = 0
	g.pendingFirst = 0
	g.pendingSecond = 0
	g.inputLocked = false
	g.status = StatusReady
	g.deal++

	slog.Debug("dealt board", "tag", "game", "game", g.ID, "deal", g.deal)

	if !g.rendering {
		g.rendering = true
		g.scheduler.ScheduleRepeating(g.renderInterval, g.Draw)
	}
}

// OnActivate handles the player activating the card at position. It
// returns false when the activation was ignored: out of bounds, input
// locked, or the card is already matched.
func (g *Game) OnActivate(position int) bool {
	if position < 0 || position >= len(g.cards) || g.inputLocked {
		return false
	}
	card := g.cards[position]
	if card.Visibility() == Matched {
		return false
	}

	// Counting by toggle lets a player turn a lone card back down.
	card.Flip()
	if card.Visibility() == FaceUp {
		g.revealedCount++
	} else {
		g.revealedCount--
	}

	if g.revealedCount%2 == 0 {
		g.pendingFirst = position
	} else {
		g.pendingSecond = position
	}

	if g.revealedCount == 2 {
		g.resolvePair()
	}

	if g.pairsRemaining == 0 {
		g.status = StatusWon
	}
	return true
}

func (g *Game) resolvePair() {
	first, second := g.cards[g.pendingFirst], g.cards[g.pendingSecond]

	if first.SameKindAs(second) {
		first.MarkFound()
		second.MarkFound()
		g.status = StatusPairFound
		g.pairsRemaining--
		slog.Debug("pair found", "tag", "game", "game", g.ID, "symbol", first.Symbol(), "remaining", g.pairsRemaining)
	} else {
		g.status = StatusTryAgain
		g.inputLocked = true
		a, b, deal := g.pendingFirst, g.pendingSecond, g.deal
		g.scheduler.ScheduleOnce(g.revealDelay, func() {
			g.flipBack(deal, a, b)
		})
	}

	g.revealedCount = 0
}

// flipBack turns a mismatched pair face down again and releases the input lock.
func (g *Game) flipBack(deal, a, b int) {
	if deal != g.deal {
		return
	}
	g.cards[a].Flip()
	g.cards[b].Flip()
	g.inputLocked = false
}

// Draw sends the status message and every card to the renderer.
func (g *Game) Draw() {
	fr, framed := g.renderer.(FrameRenderer)
	if framed {
		fr.BeginFrame()
	}
	g.renderer.DrawMessage(g.status.Text())
	for i, card := range g.cards {
		card.Render(g.renderer, i)
	}
	if framed {
		fr.EndFrame()
	}
}

// CardAt returns a copy of the card at position.
func (g *Game) CardAt(position int) (Card, bool) {
	if position < 0 || position >= len(g.cards) {
		return Card{}, false
	}
	return *g.cards[position], true
}

func (g *Game) PairsRemaining() int { return g.pairsRemaining }

func (g *Game) RevealedCount() int { return g.revealedCount }

func (g *Game) InputLocked() bool { return g.inputLocked }

func (g *Game) Status() Status { return g.status }

// Message is the human-readable status text.
func (g *Game) Message() string { return g.status.Text() }
