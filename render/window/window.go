package window

import (
	"context"
	"errors"
	"hash/fnv"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"memory-pairs/render"
)

var (
	backgroundColor = color.RGBA{0x1e, 0x1e, 0x2e, 0xff}
	backColor       = color.RGBA{0x45, 0x47, 0x5a, 0xff}
	faceColors      = []color.RGBA{
		{0xf3, 0x8b, 0xa8, 0xff},
		{0xfa, 0xb3, 0x87, 0xff},
		{0xf9, 0xe2, 0xaf, 0xff},
		{0xa6, 0xe3, 0xa1, 0xff},
		{0x94, 0xe2, 0xd5, 0xff},
		{0x89, 0xb4, 0xfa, 0xff},
		{0xcb, 0xa6, 0xf7, 0xff},
		{0xf5, 0xc2, 0xe7, 0xff},
	}
)

// Window implements ebiten.Game. The game's render loop draws into the
// Recorder returned by Frames; ebiten paints the last completed frame on
// its own thread and turns clicks into activations.
type Window struct {
	frames     render.Recorder
	layout     render.Layout
	back       string
	onActivate func(position int) bool
	onNewGame  func() bool
	done       <-chan struct{}
	touchIDs   []ebiten.TouchID
}

// New returns a Window with square cards of cardSize pixels. back is the
// sprite name of a face-down card.
func New(cardSize int, back string) *Window {
	return &Window{
		layout: render.NewLayout(cardSize),
		back:   back,
	}
}

// Frames is the renderer the game should draw into.
func (w *Window) Frames() *render.Recorder {
	return &w.frames
}

// OnActivate sets the handler called with the slot the player clicked.
func (w *Window) OnActivate(fn func(position int) bool) {
	w.onActivate = fn
}

// OnNewGame sets the handler called when the player presses N.
func (w *Window) OnNewGame(fn func() bool) {
	w.onNewGame = fn
}

// Run opens the window and blocks until it is closed, Escape is pressed,
// or ctx is cancelled. It must be called from the main goroutine.
func (w *Window) Run(ctx context.Context) error {
	w.done = ctx.Done()
	width, height := w.layout.ScreenSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Memory pairs")
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update handles input. It never touches game state directly.
func (w *Window) Update() error {
	select {
	case <-w.done:
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && w.onNewGame != nil {
		w.onNewGame()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.activateAt(ebiten.CursorPosition())
	}
	w.touchIDs = inpututil.AppendJustPressedTouchIDs(w.touchIDs[:0])
	for _, id := range w.touchIDs {
		w.activateAt(ebiten.TouchPosition(id))
	}
	return nil
}

func (w *Window) activateAt(x, y int) {
	pos := w.layout.SlotAt(x, y)
	if pos < 0 || w.onActivate == nil {
		return
	}
	if !w.onActivate(pos) {
		slog.Debug("activation dropped", "tag", "window", "position", pos)
	}
}

// Draw paints the last completed frame.
func (w *Window) Draw(screen *ebiten.Image) {
	frame := w.frames.Last()
	screen.Fill(backgroundColor)

	for i, sprite := range frame.Sprites {
		x, y, size := w.layout.SlotRect(i)
		clr := backColor
		if sprite != w.back && sprite != "" {
			clr = colorFor(sprite)
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size), clr, false)
		if sprite != w.back && sprite != "" {
			ebitenutil.DebugPrintAt(screen, sprite, x+4, y+size/2-8)
		}
	}

	mx, my := w.layout.MessageOrigin()
	ebitenutil.DebugPrintAt(screen, frame.Message, mx, my)
}

// Layout returns the fixed logical screen size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.layout.ScreenSize()
}

// colorFor picks a stable face colour for a sprite name.
func colorFor(sprite string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(sprite))
	return faceColors[h.Sum32()%uint32(len(faceColors))]
}
