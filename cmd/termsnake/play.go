package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/platform/ansi"
	"github.com/vovakirdan/termsnake/internal/platform/tui"
	"github.com/vovakirdan/termsnake/internal/registry"
	"github.com/vovakirdan/termsnake/internal/snake"
)

var (
	flagDifficulty string
	flagPlain      bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing the specified variant (default: classic).

Variants:
  classic - Border walls end the game
  wrap    - No walls; the board wraps around

Difficulty options:
  easy   - Slower start, gentler acceleration
  normal - Classic pacing (200ms per move, -5ms per food)
  hard   - Faster start, steeper acceleration
  fixed  - No acceleration

Examples:
  termsnake play
  termsnake play wrap
  termsnake play --difficulty easy
  termsnake play classic --plain
  termsnake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the plain terminal loop instead of the TUI")
}

func runPlay(cmd *cobra.Command, args []string) error {
	variant := "classic"
	if len(args) > 0 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q, run 'termsnake list' to see available variants", variant)
	}

	if !config.ValidPreset(config.DifficultyPreset(flagDifficulty)) {
		return fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", flagDifficulty)
	}

	// Validate the config file up front so a typo fails loudly instead of
	// silently falling back to defaults mid-game.
	if flagConfig != "" {
		if _, err := config.LoadSnake(flagConfig); err != nil {
			return err
		}
	}

	snake.SetConfigPath(flagConfig)
	snake.SetDifficultyPreset(flagDifficulty)

	// Get terminal size
	width, height := 80, 25 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Warn("could not detect terminal size, using defaults", "error", termErr)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(variant)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if flagPlain {
		if err := ansi.Run(context.Background(), game, cfg); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		return nil
	}

	if err := tui.Run(game, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
