package render

import (
	"slices"
	"sync"
)

// Frame is one complete redraw: the status message and the sprite drawn
// in each slot.
type Frame struct {
	Message string
	Sprites []string
}

// Equal reports whether two frames would look the same.
func (f Frame) Equal(o Frame) bool {
	return f.Message == o.Message && slices.Equal(f.Sprites, o.Sprites)
}

// Recorder collects draw requests into frames. The game's goroutine
// writes; any other goroutine may read the last completed frame.
type Recorder struct {
	mu       sync.Mutex
	building Frame
	last     Frame
	frames   int
}

// BeginFrame starts a new frame.
func (r *Recorder) BeginFrame() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.building = Frame{}
}

// DrawMessage records the status text of the frame being built.
func (r *Recorder) DrawMessage(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.building.Message = text
}

// Draw records sprite at position in the frame being built.
func (r *Recorder) Draw(sprite string, position int) {
	if position < 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for len(r.building.Sprites) <= position {
		r.building.Sprites = append(r.building.Sprites, "")
	}
	r.building.Sprites[position] = sprite
}

// EndFrame publishes the frame being built.
func (r *Recorder) EndFrame() {
	r.commit()
}

// commit publishes the frame being built and reports whether it differs
// from the previously published one.
func (r *Recorder) commit() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	changed := r.frames == 0 || !r.building.Equal(r.last)
	r.last = r.building
	r.frames++
	return r.last, changed
}

// Last returns the most recently completed frame.
func (r *Recorder) Last() Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Frame{Message: r.last.Message, Sprites: slices.Clone(r.last.Sprites)}
}

// Frames returns how many frames have been completed.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}
