// Package config provides YAML-based game configuration loading and
// difficulty presets for termsnake.
package config

import (
	"fmt"

	"github.com/vovakirdan/termsnake/internal/core"
)

// SnakeConfig contains all tunable parameters for the game.
type SnakeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Speed   SpeedConfig   `yaml:"speed"`
	Snake   BodyConfig    `yaml:"snake"`
	Scoring ScoringConfig `yaml:"scoring"`
	Glyphs  GlyphConfig   `yaml:"glyphs"`
	Colors  ColorConfig   `yaml:"colors"`
}

// BoardConfig defines the play area dimensions in cells, walls included.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the movement pacing in milliseconds per move.
// Each food eaten subtracts AccelMS from the current interval, down to MinMS.
type SpeedConfig struct {
	InitialMS int `yaml:"initial_ms"`
	AccelMS   int `yaml:"accel_ms"`
	MinMS     int `yaml:"min_ms"`
}

// BodyConfig defines snake parameters.
type BodyConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// ScoringConfig defines score progression.
type ScoringConfig struct {
	PerFood int `yaml:"per_food"`
}

// GlyphConfig defines the characters drawn for each board element.
// Single-character strings in YAML; use the Rune accessors in code.
type GlyphConfig struct {
	Head  string `yaml:"head"`
	Body  string `yaml:"body"`
	Food  string `yaml:"food"`
	Wall  string `yaml:"wall"`
	Empty string `yaml:"empty"`
}

// ColorConfig defines the colors for each board element, by palette name.
type ColorConfig struct {
	Head string `yaml:"head"`
	Body string `yaml:"body"`
	Food string `yaml:"food"`
	Wall string `yaml:"wall"`
}

// glyphRune returns the first rune of s, or fallback if s is empty.
func glyphRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// HeadRune returns the snake head glyph.
func (g GlyphConfig) HeadRune() rune { return glyphRune(g.Head, 'O') }

// BodyRune returns the snake body glyph.
func (g GlyphConfig) BodyRune() rune { return glyphRune(g.Body, 'o') }

// FoodRune returns the food glyph.
func (g GlyphConfig) FoodRune() rune { return glyphRune(g.Food, '*') }

// WallRune returns the wall glyph.
func (g GlyphConfig) WallRune() rune { return glyphRune(g.Wall, '#') }

// EmptyRune returns the empty-cell glyph.
func (g GlyphConfig) EmptyRune() rune { return glyphRune(g.Empty, ' ') }

// colorNames maps YAML color names to palette colors.
var colorNames = map[string]core.Color{
	"default":        core.ColorDefault,
	"red":            core.ColorRed,
	"green":          core.ColorGreen,
	"yellow":         core.ColorYellow,
	"blue":           core.ColorBlue,
	"magenta":        core.ColorMagenta,
	"cyan":           core.ColorCyan,
	"white":          core.ColorWhite,
	"bright_red":     core.ColorBrightRed,
	"bright_green":   core.ColorBrightGreen,
	"bright_yellow":  core.ColorBrightYellow,
	"bright_blue":    core.ColorBrightBlue,
	"bright_magenta": core.ColorBrightMagenta,
	"bright_cyan":    core.ColorBrightCyan,
	"bright_white":   core.ColorBrightWhite,
	"gray":           core.ColorGray,
}

// ColorByName resolves a palette color by its YAML name.
// Unknown names resolve to the default color.
func ColorByName(name string) core.Color {
	if c, ok := colorNames[name]; ok {
		return c
	}
	return core.ColorDefault
}

// HeadColor returns the snake head color.
func (c ColorConfig) HeadColor() core.Color { return ColorByName(c.Head) }

// BodyColor returns the snake body color.
func (c ColorConfig) BodyColor() core.Color { return ColorByName(c.Body) }

// FoodColor returns the food color.
func (c ColorConfig) FoodColor() core.Color { return ColorByName(c.Food) }

// WallColor returns the wall color.
func (c ColorConfig) WallColor() core.Color { return ColorByName(c.Wall) }

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	if c.Board.Width < 10 || c.Board.Height < 6 {
		return fmt.Errorf("config: board %dx%d is too small (minimum 10x6)", c.Board.Width, c.Board.Height)
	}
	if c.Speed.InitialMS <= 0 {
		return fmt.Errorf("config: initial speed must be positive, got %d", c.Speed.InitialMS)
	}
	if c.Speed.MinMS <= 0 || c.Speed.MinMS > c.Speed.InitialMS {
		return fmt.Errorf("config: min speed %d must be in (0, %d]", c.Speed.MinMS, c.Speed.InitialMS)
	}
	if c.Speed.AccelMS < 0 {
		return fmt.Errorf("config: speed acceleration must be non-negative, got %d", c.Speed.AccelMS)
	}
	if c.Snake.InitialLength < 1 {
		return fmt.Errorf("config: initial length must be at least 1, got %d", c.Snake.InitialLength)
	}
	if c.Snake.InitialLength+2 >= c.Board.Width {
		return fmt.Errorf("config: initial length %d does not fit a %d-wide board", c.Snake.InitialLength, c.Board.Width)
	}
	return nil
}
