package ai

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"memory-pairs/config"
	"memory-pairs/game"
)

// flipReason describes why the bot chose a slot (for logging).
const (
	flipReasonKnownPair = "known_pair"
	flipReasonUnseen    = "unseen"
	flipReasonRandom    = "random"
)

// Board is the session surface the bot plays through.
type Board interface {
	Snapshot(ctx context.Context) (game.Snapshot, error)
	Activate(position int) error
}

// Player decides which slot to activate next. It only uses what a human
// sees in a snapshot: symbols of face-up and matched cards.
type Player struct {
	params *config.AIParams
	rng    *rand.Rand
	memory map[int]string // position -> symbol seen there
}

// NewPlayer creates a bot with the given profile. A seed of 0 seeds from the clock.
func NewPlayer(params *config.AIParams, seed int64) *Player {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Player{
		params: params,
		rng:    rand.New(rand.NewSource(seed)),
		memory: make(map[int]string),
	}
}

// Observe updates memory from the visible cards, then forgets each
// remembered card with ForgetChance probability.
func (p *Player) Observe(snap game.Snapshot) {
	for _, c := range snap.Cards {
		switch c.Visibility {
		case game.FaceUp.String():
			p.memory[c.Position] = c.Symbol
		case game.Matched.String():
			delete(p.memory, c.Position)
		}
	}

	forgetChance := clampPercent(p.params.ForgetChance)
	if forgetChance > 0 && len(p.memory) > 0 {
		var toForget []int
		for idx := range p.memory {
			if p.rng.Intn(100) < forgetChance {
				toForget = append(toForget, idx)
			}
		}
		for _, idx := range toForget {
			delete(p.memory, idx)
		}
	}
}

// Remembered returns the symbol remembered at position, if any.
func (p *Player) Remembered(position int) (string, bool) {
	s, ok := p.memory[position]
	return s, ok
}

// Next returns the slot to activate and why, or -1 when the board is
// locked, won, or has nothing left to flip.
func (p *Player) Next(snap game.Snapshot) (int, string) {
	if snap.InputLocked || snap.Status == game.StatusWon.String() {
		return -1, ""
	}
	hidden := snap.FaceDownPositions()
	if len(hidden) == 0 {
		return -1, ""
	}
	useKnownPair := p.rng.Intn(100) < clampPercent(p.params.UseKnownPairChance)

	if up := snap.FaceUpPositions(); len(up) == 1 {
		return p.pickSecondCard(hidden, up[0], snap.Cards[up[0]].Symbol, useKnownPair)
	}
	return p.pickFirstCard(hidden, useKnownPair)
}

// pickFirstCard prefers one half of a remembered pair, then a card never
// seen, then any face-down card.
func (p *Player) pickFirstCard(hidden []int, useKnownPair bool) (int, string) {
	if useKnownPair {
		symbolToIndices := make(map[string][]int)
		for _, idx := range hidden {
			if s, ok := p.memory[idx]; ok {
				symbolToIndices[s] = append(symbolToIndices[s], idx)
			}
		}
		for _, idx := range hidden {
			if s, ok := p.memory[idx]; ok && len(symbolToIndices[s]) >= 2 {
				return idx, flipReasonKnownPair
			}
		}
	}

	var unseen []int
	for _, idx := range hidden {
		if _, ok := p.memory[idx]; !ok {
			unseen = append(unseen, idx)
		}
	}
	if len(unseen) > 0 {
		return unseen[p.rng.Intn(len(unseen))], flipReasonUnseen
	}
	return hidden[p.rng.Intn(len(hidden))], flipReasonRandom
}

// pickSecondCard completes the pair if the partner is remembered, else
// guesses among the other face-down cards, unseen ones first.
func (p *Player) pickSecondCard(hidden []int, firstIdx int, symbol string, useKnownPair bool) (int, string) {
	if useKnownPair {
		for _, idx := range hidden {
			if idx != firstIdx && p.memory[idx] == symbol {
				return idx, flipReasonKnownPair
			}
		}
	}

	var unseen, candidates []int
	for _, idx := range hidden {
		if idx == firstIdx {
			continue
		}
		candidates = append(candidates, idx)
		if _, ok := p.memory[idx]; !ok {
			unseen = append(unseen, idx)
		}
	}
	if len(unseen) > 0 {
		return unseen[p.rng.Intn(len(unseen))], flipReasonUnseen
	}
	if len(candidates) == 0 {
		return -1, flipReasonRandom
	}
	return candidates[p.rng.Intn(len(candidates))], flipReasonRandom
}

func (p *Player) delay() time.Duration {
	delayMS := p.params.DelayMinMS
	if p.params.DelayMaxMS > p.params.DelayMinMS {
		delayMS = p.params.DelayMinMS + p.rng.Intn(p.params.DelayMaxMS-p.params.DelayMinMS)
	}
	return time.Duration(delayMS) * time.Millisecond
}

// Run plays b until the game is won or ctx is cancelled, pausing a
// human-like delay before every move.
func Run(ctx context.Context, b Board, p *Player) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.delay()):
		}

		snap, err := b.Snapshot(ctx)
		if err != nil {
			return err
		}
		if snap.Status == game.StatusWon.String() {
			slog.Info("finished board", "tag", "ai", "name", p.params.Name)
			return nil
		}

		p.Observe(snap)
		pos, reason := p.Next(snap)
		if pos < 0 {
			continue
		}
		slog.Debug("flipping tile", "tag", "ai", "name", p.params.Name, "tile", pos, "reason", reason)
		if err := b.Activate(pos); err != nil {
			return err
		}

		// Look right away: a mismatched card flips back after the reveal delay.
		snap, err = b.Snapshot(ctx)
		if err != nil {
			return err
		}
		p.Observe(snap)
	}
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
