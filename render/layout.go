package render

// Layout maps board slots to screen rectangles, row by row.
type Layout struct {
	Cols          int
	Rows          int
	CardSize      int
	Gap           int
	MessageHeight int
}

// NewLayout returns the 4x4 layout used for a 16-slot board.
func NewLayout(cardSize int) Layout {
	return Layout{
		Cols:          4,
		Rows:          4,
		CardSize:      cardSize,
		Gap:           cardSize / 8,
		MessageHeight: 32,
	}
}

// ScreenSize is the total drawing area: the grid plus the message strip.
func (l Layout) ScreenSize() (width, height int) {
	width = l.Cols*l.CardSize + (l.Cols+1)*l.Gap
	height = l.Rows*l.CardSize + (l.Rows+1)*l.Gap + l.MessageHeight
	return width, height
}

// SlotRect returns the top-left corner and side length of slot position.
func (l Layout) SlotRect(position int) (x, y, size int) {
	col := position % l.Cols
	row := position / l.Cols
	x = l.Gap + col*(l.CardSize+l.Gap)
	y = l.Gap + row*(l.CardSize+l.Gap)
	return x, y, l.CardSize
}

// MessageOrigin is where the status text starts.
func (l Layout) MessageOrigin() (x, y int) {
	_, h := l.ScreenSize()
	return l.Gap, h - l.MessageHeight + l.Gap/2
}

// SlotAt returns the slot under the point (x, y), or -1 when the point
// falls in a gap, the message strip, or outside the grid.
func (l Layout) SlotAt(x, y int) int {
	if x < l.Gap || y < l.Gap {
		return -1
	}
	pitch := l.CardSize + l.Gap
	col := (x - l.Gap) / pitch
	row := (y - l.Gap) / pitch
	if col >= l.Cols || row >= l.Rows {
		return -1
	}
	if (x-l.Gap)%pitch >= l.CardSize || (y-l.Gap)%pitch >= l.CardSize {
		return -1
	}
	return row*l.Cols + col
}
