package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// ErrQuit is returned by Run when the player asks to leave.
var ErrQuit = errors.New("player quit")

// Controller is the session surface the console drives.
type Controller interface {
	Activate(position int) error
	NewGame() error
}

const helpText = `Commands:
  <slot> [<slot> ...]  activate the card in each slot (0-15)
  new                  deal a new board
  help                 show this help
  quit                 leave the game
`

// Console reads commands line by line and turns them into session calls.
type Console struct {
	in  io.Reader
	out io.Writer
	ctl Controller
}

// New creates a Console reading from in and writing prompts and errors to out.
func New(in io.Reader, out io.Writer, ctl Controller) *Console {
	return &Console{in: in, out: out, ctl: ctl}
}

// Run processes input until EOF, quit, or ctx is cancelled. The reader
// goroutine is left blocked on in if ctx ends first.
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			slog.Warn("reading input", "tag", "console", "err", err)
		}
	}()

	c.write(helpText)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if err := c.handleLine(line); err != nil {
				return err
			}
		}
	}
}

func (c *Console) handleLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch strings.ToLower(fields[0]) {
	case "new", "n":
		return c.ctl.NewGame()
	case "help", "h", "?":
		c.write(helpText)
		return nil
	case "quit", "q", "exit":
		return ErrQuit
	}

	for _, f := range fields {
		pos, err := strconv.Atoi(f)
		if err != nil {
			c.write(fmt.Sprintf("Unknown command: %s (type help)\n", f))
			return nil
		}
		if err := c.ctl.Activate(pos); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) write(s string) {
	if _, err := io.WriteString(c.out, s); err != nil {
		slog.Warn("writing output", "tag", "console", "err", err)
	}
}
