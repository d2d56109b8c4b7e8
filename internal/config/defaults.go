package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration:
// an 80x25 board, 200ms per move accelerating by 5ms per food,
// and a 3-segment starting snake.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  80,
			Height: 25,
		},
		Speed: SpeedConfig{
			InitialMS: 200,
			AccelMS:   5,
			MinMS:     50,
		},
		Snake: BodyConfig{
			InitialLength: 3,
		},
		Scoring: ScoringConfig{
			PerFood: 10,
		},
		Glyphs: GlyphConfig{
			Head:  "O",
			Body:  "o",
			Food:  "*",
			Wall:  "#",
			Empty: " ",
		},
		Colors: ColorConfig{
			Head: "bright_green",
			Body: "green",
			Food: "red",
			Wall: "gray",
		},
	}
}
