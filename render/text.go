package render

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const textColumns = 4

var (
	messageStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	backStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Foreground(lipgloss.Color("8")).
			Width(10).
			Align(lipgloss.Center)
	faceStyle = backStyle.
			BorderForeground(lipgloss.Color("12")).
			Foreground(lipgloss.Color("15")).
			Bold(true)
)

// Text draws frames to a terminal as a grid of boxed cards. It only
// writes when a frame differs from the previous one, so a 60Hz render
// loop does not flood the output.
type Text struct {
	Recorder
	w    io.Writer
	back string
}

// NewText returns a Text renderer writing to w. back is the sprite name
// that denotes a face-down card.
func NewText(w io.Writer, back string) *Text {
	return &Text{w: w, back: back}
}

// EndFrame publishes the frame and prints it if it changed.
func (t *Text) EndFrame() {
	frame, changed := t.commit()
	if !changed {
		return
	}
	if _, err := io.WriteString(t.w, FormatFrame(frame, t.back)+"\n"); err != nil {
		slog.Warn("writing frame", "tag", "render", "err", err)
	}
}

// FormatFrame lays a frame out as the message followed by a 4-column
// grid. Each card shows its slot number; face-down cards hide the sprite.
func FormatFrame(f Frame, back string) string {
	var rows []string
	var row []string
	for i, sprite := range f.Sprites {
		style, label := faceStyle, sprite
		if sprite == back || sprite == "" {
			style, label = backStyle, "?"
		}
		row = append(row, style.Render(fmt.Sprintf("%d\n%s", i, label)))
		if len(row) == textColumns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	var b strings.Builder
	b.WriteString(messageStyle.Render(f.Message))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return b.String()
}
