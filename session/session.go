package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"memory-pairs/config"
	"memory-pairs/eventloop"
	"memory-pairs/game"
)

// Session owns one Game and feeds it from other goroutines by posting
// onto the event loop. All game access happens inside posted callbacks.
type Session struct {
	ID string

	loop    *eventloop.Loop
	game    *game.Game
	started time.Time
}

// New creates a Session whose game draws through r and schedules its
// timers on loop. Call Start to deal the first board.
func New(cfg *config.Config, loop *eventloop.Loop, r game.Renderer) *Session {
	id := uuid.NewString()
	return &Session{
		ID:   id,
		loop: loop,
		game: game.NewGame(id, cfg, r, loop),
	}
}

// Start deals the first board and starts rendering.
func (s *Session) Start() error {
	return s.loop.Post(func() {
		s.deal()
		slog.Info("session started", "tag", "session", "session", s.ID)
	})
}

// NewGame replaces the board with a fresh deal.
func (s *Session) NewGame() error {
	return s.loop.Post(func() {
		s.deal()
		slog.Info("new deal", "tag", "session", "session", s.ID)
	})
}

// TryNewGame is NewGame for callers that must not block.
func (s *Session) TryNewGame() bool {
	return s.loop.TryPost(s.deal)
}

func (s *Session) deal() {
	s.game.InitGame()
	s.started = time.Now()
}

// Activate queues an activation of the card at position.
func (s *Session) Activate(position int) error {
	return s.loop.Post(func() { s.activate(position) })
}

// TryActivate queues an activation without blocking; it reports false
// if the activation was dropped.
func (s *Session) TryActivate(position int) bool {
	return s.loop.TryPost(func() { s.activate(position) })
}

func (s *Session) activate(position int) {
	wasWon := s.game.Status() == game.StatusWon
	if !s.game.OnActivate(position) {
		slog.Debug("activation ignored", "tag", "session", "session", s.ID, "position", position,
			"locked", s.game.InputLocked())
		return
	}
	if !wasWon && s.game.Status() == game.StatusWon {
		slog.Info("game won", "tag", "session", "session", s.ID,
			"elapsed", time.Since(s.started).Round(time.Millisecond))
	}
}

// Snapshot returns a copy of the game state taken on the loop.
func (s *Session) Snapshot(ctx context.Context) (game.Snapshot, error) {
	var snap game.Snapshot
	err := s.loop.Do(ctx, func() {
		snap = s.game.Snapshot()
	})
	return snap, err
}
