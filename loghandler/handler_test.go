package loghandler

import (
	"bytes"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var stamp = regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} `)

func TestHandleInfoWithTag(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCompactHandler(&buf, slog.LevelInfo))

	logger.Info("game won", "tag", "session", "elapsed", "12s")

	line := buf.String()
	assert.Regexp(t, stamp, line)
	assert.Equal(t, "[session] game won elapsed=12s\n", stamp.ReplaceAllString(line, ""))
}

func TestHandleWritesNonInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCompactHandler(&buf, slog.LevelDebug))

	logger.Warn("bad value", "tag", "config", "key", "REVEAL_DELAY_MS")
	logger.Debug("flip", "tile", 3)

	lines := stamp.ReplaceAllString(buf.String(), "")
	assert.Contains(t, lines, "WARN [config] bad value key=REVEAL_DELAY_MS\n")
	assert.Contains(t, buf.String(), "DEBUG flip tile=3\n")
}

func TestEnabledHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCompactHandler(&buf, slog.LevelWarn))

	logger.Info("hidden")
	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Error("shown")
	assert.Contains(t, buf.String(), "ERROR shown")
}

func TestWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCompactHandler(&buf, slog.LevelInfo)).With("tag", "ai", "name", "Mnemosyne")

	logger.Info("finished board")
	logger.WithGroup("move").Info("flip", "tile", 7)

	out := buf.String()
	assert.Contains(t, out, "[ai] finished board name=Mnemosyne\n")
	assert.Contains(t, out, "[ai] flip name=Mnemosyne move.tile=7\n")
}
