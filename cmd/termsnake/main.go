// termsnake is a terminal snake game.
//
// Usage:
//
//	termsnake play [variant]  - Play a game (classic or wrap)
//	termsnake list            - List available variants
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--config <path>   - Path to a custom config YAML
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/termsnake/internal/snake"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "termsnake",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termsnake",
	Short: "Snake in your terminal",
	Long: `termsnake is a terminal snake game.

Steer the snake onto food to grow; each bite speeds the game up.
Hitting a wall or your own body ends the game.

Controls:
  Arrows/WASD - Steer
  Space/P     - Pause
  R           - Restart (after game over)
  Q/Esc       - Quit

Examples:
  termsnake play
  termsnake play wrap
  termsnake play --difficulty hard
  termsnake play --plain
  termsnake list`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}
