package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Renderer names accepted by Config.Renderer.
const (
	RendererText   = "text"
	RendererWindow = "window"
)

// AIParams holds the parameters for the autoplay bot.
type AIParams struct {
	Name               string `json:"name" env:"AI_NAME"`
	DelayMinMS         int    `json:"delay_min_ms" env:"AI_DELAY_MIN_MS"`
	DelayMaxMS         int    `json:"delay_max_ms" env:"AI_DELAY_MAX_MS"`
	UseKnownPairChance int    `json:"use_known_pair_chance" env:"AI_USE_KNOWN_PAIR_CHANCE"` // 0-100, probability to play a remembered pair
	ForgetChance       int    `json:"forget_chance" env:"AI_FORGET_CHANCE"`                 // 0-100, probability to forget each remembered card per move
}

// Config holds the session and harness parameters. The board itself is fixed.
type Config struct {
	RevealDelayMS    int    `json:"reveal_delay_ms" env:"REVEAL_DELAY_MS"`
	RenderIntervalMS int    `json:"render_interval_ms" env:"RENDER_INTERVAL_MS"`
	Renderer         string `json:"renderer" env:"RENDERER"`
	LogLevel         string `json:"log_level" env:"LOG_LEVEL"`
	// Seed fixes the deal order; 0 seeds from the clock.
	Seed       int64 `json:"seed" env:"SEED"`
	CardSizePX int   `json:"card_size_px" env:"CARD_SIZE_PX"`
	Autoplay   bool  `json:"autoplay" env:"AUTOPLAY"`

	AI AIParams `json:"ai_profile"`
}

// Defaults returns a Config with the default values.
func Defaults() *Config {
	return &Config{
		RevealDelayMS:    1000,
		RenderIntervalMS: 16,
		Renderer:         RendererText,
		LogLevel:         "info",
		Seed:             0,
		CardSizePX:       96,
		Autoplay:         false,
		AI: AIParams{
			Name:               "Mnemosyne",
			DelayMinMS:         400,
			DelayMaxMS:         900,
			UseKnownPairChance: 90,
			ForgetChance:       5,
		},
	}
}

// Load reads configuration from an optional config.json file,
// then applies environment variable overrides. Fields not set
// in either source retain their default values.
func Load() *Config {
	return LoadFile("config.json")
}

// LoadFile is Load with an explicit file path. A missing file is not an error.
func LoadFile(path string) *Config {
	cfg := Defaults()

	if f, err := os.Open(path); err == nil {
		defer f.Close()
		if err := json.NewDecoder(f).Decode(cfg); err != nil {
			slog.Warn("failed to parse config file", "tag", "config", "path", path, "err", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		slog.Warn("invalid environment override", "tag", "config", "err", err)
	}

	return cfg
}

// Validate reports settings the harness cannot run with.
func (c *Config) Validate() error {
	if c.RevealDelayMS <= 0 {
		return fmt.Errorf("reveal_delay_ms must be positive, got %d", c.RevealDelayMS)
	}
	if c.RenderIntervalMS <= 0 {
		return fmt.Errorf("render_interval_ms must be positive, got %d", c.RenderIntervalMS)
	}
	if c.CardSizePX <= 0 {
		return fmt.Errorf("card_size_px must be positive, got %d", c.CardSizePX)
	}
	switch c.Renderer {
	case RendererText, RendererWindow:
	default:
		return fmt.Errorf("unknown renderer %q", c.Renderer)
	}
	if c.AI.DelayMinMS < 0 || c.AI.DelayMaxMS < c.AI.DelayMinMS {
		return fmt.Errorf("invalid ai delay range %d..%d", c.AI.DelayMinMS, c.AI.DelayMaxMS)
	}
	return nil
}

// RevealDelay is how long a mismatched pair stays face up.
func (c *Config) RevealDelay() time.Duration {
	return time.Duration(c.RevealDelayMS) * time.Millisecond
}

// RenderInterval is the redraw cadence.
func (c *Config) RenderInterval() time.Duration {
	return time.Duration(c.RenderIntervalMS) * time.Millisecond
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(c.LogLevel)))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
